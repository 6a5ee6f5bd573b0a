package models

import (
	"time"
)

type EmergencyContact struct {
	Name              string `json:"emergency_contact_name" bson:"emergency_contact_name"`
	Phone             string `json:"emergency_contact_phone" bson:"emergency_contact_phone"`
	Relationship      string `json:"emergency_contact_relationship,omitempty" bson:"emergency_contact_relationship,omitempty"`
	MedicalConditions string `json:"medical_conditions,omitempty" bson:"medical_conditions,omitempty"`
	AdditionalNotes   string `json:"additional_notes,omitempty" bson:"additional_notes,omitempty"`
}

// WaiverGuest carries the incoming signatures as data URLs; once stored,
// the *SignaturePath fields point at the saved images instead.
type WaiverGuest struct {
	ID                       int    `json:"id" bson:"id"`
	Name                     string `json:"name" bson:"name"`
	Date                     string `json:"date" bson:"date"`
	IsMinor                  bool   `json:"isMinor" bson:"is_minor"`
	GuardianName             string `json:"guardianName,omitempty" bson:"guardian_name,omitempty"`
	ParticipantSignature     string `json:"participantSignature,omitempty" bson:"-"`
	GuardianSignature        string `json:"guardianSignature,omitempty" bson:"-"`
	ParticipantSignaturePath string `json:"participant_signature_path,omitempty" bson:"participant_signature_path,omitempty"`
	GuardianSignaturePath    string `json:"guardian_signature_path,omitempty" bson:"guardian_signature_path,omitempty"`
}

type Waiver struct {
	ID               string           `json:"id" bson:"id"`
	CartID           string           `json:"cart_id,omitempty" bson:"cart_id,omitempty"`
	EmergencyContact EmergencyContact `json:"waiver_data" bson:"waiver_data"`
	Guests           []WaiverGuest    `json:"guests" bson:"guests"`
	SignedAt         time.Time        `json:"signed_at" bson:"signed_at"`
	TotalGuests      int              `json:"total_guests" bson:"total_guests"`
	CreatedAt        time.Time        `json:"created_at" bson:"created_at"`
}
