package waiver

import (
	"encoding/base64"
	"testing"

	"gulffloat/models"
)

const fakeSignature = "data:image/png;base64,aGVsbG8="

func validWaiver() models.Waiver {
	return models.Waiver{
		EmergencyContact: models.EmergencyContact{
			Name:  "Jordan Reeves",
			Phone: "850-555-0142",
		},
		Guests: []models.WaiverGuest{
			{ID: 1, Name: "Jordan Reeves", Date: "2026-09-01", ParticipantSignature: fakeSignature},
		},
	}
}

func TestValidateAccepts(t *testing.T) {
	wv := validWaiver()
	if reason := Validate(&wv); reason != "" {
		t.Fatalf("valid waiver rejected: %q", reason)
	}
}

func TestValidateEmergencyContact(t *testing.T) {
	wv := validWaiver()
	wv.EmergencyContact.Name = ""
	if reason := Validate(&wv); reason != "missing_emergency_contact_name" {
		t.Fatalf("reason = %q", reason)
	}

	wv = validWaiver()
	wv.EmergencyContact.Phone = ""
	if reason := Validate(&wv); reason != "missing_emergency_contact_phone" {
		t.Fatalf("reason = %q", reason)
	}
}

func TestValidateGuests(t *testing.T) {
	wv := validWaiver()
	wv.Guests = nil
	if reason := Validate(&wv); reason != "missing_guests" {
		t.Fatalf("reason = %q", reason)
	}

	wv = validWaiver()
	wv.Guests[0].Name = ""
	if reason := Validate(&wv); reason != "missing_guest_name" {
		t.Fatalf("reason = %q", reason)
	}

	wv = validWaiver()
	wv.Guests[0].ParticipantSignature = ""
	if reason := Validate(&wv); reason != "missing_participant_signature" {
		t.Fatalf("reason = %q", reason)
	}
}

func TestValidateMinorNeedsGuardian(t *testing.T) {
	wv := validWaiver()
	wv.Guests = append(wv.Guests, models.WaiverGuest{
		ID:                   2,
		Name:                 "Casey Reeves",
		Date:                 "2026-09-01",
		IsMinor:              true,
		ParticipantSignature: fakeSignature,
	})

	if reason := Validate(&wv); reason != "missing_guardian_name" {
		t.Fatalf("reason = %q, want missing_guardian_name", reason)
	}

	wv.Guests[1].GuardianName = "Jordan Reeves"
	if reason := Validate(&wv); reason != "missing_guardian_signature" {
		t.Fatalf("reason = %q, want missing_guardian_signature", reason)
	}

	wv.Guests[1].GuardianSignature = fakeSignature
	if reason := Validate(&wv); reason != "" {
		t.Fatalf("minor with guardian data rejected: %q", reason)
	}
}

// An adult never needs guardian fields, even if some are present.
func TestValidateAdultIgnoresGuardian(t *testing.T) {
	wv := validWaiver()
	wv.Guests[0].GuardianName = "Someone Else"
	if reason := Validate(&wv); reason != "" {
		t.Fatalf("adult with stray guardian name rejected: %q", reason)
	}
}

func TestDecodeSignatureDataURL(t *testing.T) {
	raw, err := DecodeSignatureDataURL(fakeSignature)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != "hello" {
		t.Fatalf("decoded %q, want hello", raw)
	}
}

func TestDecodeSignatureDataURLRejects(t *testing.T) {
	cases := []string{
		"",
		"hello",
		"data:text/plain;base64,aGVsbG8=",
		"data:image/png,plainbody",
		"data:image/png;base64,%%%not-base64%%%",
	}
	for _, in := range cases {
		if _, err := DecodeSignatureDataURL(in); err == nil {
			t.Fatalf("input %q should be rejected", in)
		}
	}
}

func TestDecodeSignatureDataURLJPEG(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte{0xFF, 0xD8, 0xFF})
	raw, err := DecodeSignatureDataURL("data:image/jpeg;base64," + payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(raw) != 3 || raw[0] != 0xFF {
		t.Fatalf("decoded %v", raw)
	}
}
