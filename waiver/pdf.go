package waiver

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"gulffloat/db"
	"gulffloat/models"
	"gulffloat/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PrintWaiver handles GET /api/waivers/:id/pdf, rendering the signed
// liability waiver with the stored signature images.
func PrintWaiver(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var wv models.Waiver
	err := db.WaiversCollection.FindOne(ctx, bson.M{"id": ps.ByName("id")}).Decode(&wv)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "waiver_not_found")
		return
	}
	if err != nil {
		log.Println("PrintWaiver FindOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal error")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 12, "Exclusive Gulf Float - Liability Waiver", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 7, fmt.Sprintf(
		"Waiver ID: %s\nSigned: %s\nGuests: %d",
		wv.ID, wv.SignedAt.Format("02 Jan 2006 15:04"), wv.TotalGuests), "", "L", false)
	pdf.Ln(3)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Emergency Contact", "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	contact := fmt.Sprintf("%s (%s), %s",
		wv.EmergencyContact.Name, wv.EmergencyContact.Relationship, wv.EmergencyContact.Phone)
	pdf.MultiCell(0, 7, contact, "", "L", false)
	if wv.EmergencyContact.MedicalConditions != "" {
		pdf.MultiCell(0, 7, "Medical: "+wv.EmergencyContact.MedicalConditions, "", "L", false)
	}
	if wv.EmergencyContact.AdditionalNotes != "" {
		pdf.MultiCell(0, 7, "Notes: "+wv.EmergencyContact.AdditionalNotes, "", "L", false)
	}
	pdf.Ln(3)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Guests", "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	for _, g := range wv.Guests {
		line := fmt.Sprintf("%s (%s)", g.Name, g.Date)
		if g.IsMinor {
			line += " - minor, guardian: " + g.GuardianName
		}
		pdf.CellFormat(0, 7, line, "", 1, "L", false, 0, "")

		if g.ParticipantSignaturePath != "" {
			placeSignature(pdf, g.ParticipantSignaturePath, "Participant signature")
		}
		if g.GuardianSignaturePath != "" {
			placeSignature(pdf, g.GuardianSignaturePath, "Guardian signature")
		}
	}

	pdf.SetY(-30)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 10,
		"Signed electronically. Participants release Exclusive Gulf Float from liability per the agreement presented at signing.",
		"T", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Println("PrintWaiver PDF output error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to render waiver")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="waiver-`+wv.ID+`.pdf"`)
	w.Write(buf.Bytes())
}

func placeSignature(pdf *gofpdf.Fpdf, servedPath, label string) {
	// Served paths look like /static/waiverpic/x.png; files live under
	// the working directory.
	diskPath := strings.TrimPrefix(servedPath, "/")
	opts := gofpdf.ImageOptions{ImageType: "png"}
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 5, label+":", "", 1, "L", false, 0, "")
	pdf.ImageOptions(diskPath, pdf.GetX()+5, pdf.GetY(), 40, 0, true, opts, 0, "")
	pdf.Ln(2)
	pdf.SetFont("Arial", "", 11)
}
