package booking

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"gulffloat/db"
	"gulffloat/models"
	"gulffloat/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func hmacSecret() []byte {
	if s := os.Getenv("RECEIPT_HMAC_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("change_me_in_production")
}

// ReceiptQRPayload returns "bookingID|reference|timestamp|signature" so
// staff scanners can verify a receipt offline.
func ReceiptQRPayload(bookingID, reference string, ts int64) string {
	data := fmt.Sprintf("%s|%s|%d", bookingID, reference, ts)
	h := hmac.New(sha256.New, hmacSecret())
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return data + "|" + sig
}

// VerifyReceiptQRPayload checks the signature of a scanned payload.
func VerifyReceiptQRPayload(payload string) bool {
	idx := lastPipe(payload)
	if idx < 0 {
		return false
	}
	data, sig := payload[:idx], payload[idx+1:]
	h := hmac.New(sha256.New, hmacSecret())
	h.Write([]byte(data))
	expected := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(sig), []byte(expected))
}

func lastPipe(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '|' {
			return i
		}
	}
	return -1
}

// PrintReceipt handles GET /api/bookings/:id/receipt, rendering a PDF with
// the booking details and a signed check-in QR code.
func PrintReceipt(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var b models.Booking
	err := db.BookingsCollection.FindOne(ctx, bson.M{"id": ps.ByName("id")}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "booking_not_found")
		return
	}
	if err != nil {
		log.Println("PrintReceipt FindOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal error")
		return
	}

	qrData := ReceiptQRPayload(b.ID, b.BookingReference, time.Now().Unix())
	qrCode, err := qrcode.Encode(qrData, qrcode.Medium, 128)
	if err != nil {
		log.Println("PrintReceipt QR encode error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to render receipt")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 15, "Exclusive Gulf Float - Booking Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 8, fmt.Sprintf(
		"Reference: %s\nName: %s\nEmail: %s\nPayment method: %s\nStatus: %s / %s\nBooked: %s",
		b.BookingReference, b.CustomerName, b.CustomerEmail,
		b.PaymentMethod, b.Status, b.PaymentStatus,
		b.CreatedAt.Format("02 Jan 2006 15:04"),
	), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Services", "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	for _, it := range b.Items {
		pdf.CellFormat(0, 7, fmt.Sprintf("%s  x%d  %s %s  $%.2f",
			it.ServiceName, it.Quantity, it.BookingDate, it.BookingTime, it.Subtotal),
			"", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 7, fmt.Sprintf(
		"Services subtotal: $%.2f\nTrip protection: $%.2f\nTax: $%.2f\nCard fee: $%.2f",
		b.ServicesSubtotal, b.TripProtectionFee, b.TaxAmount, b.CreditCardFee), "", "L", false)
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 10, fmt.Sprintf("Total: $%.2f", b.TotalAmount), "", 1, "L", false, 0, "")

	imgOpts := gofpdf.ImageOptions{ImageType: "png"}
	pdf.RegisterImageOptionsReader("qr", imgOpts, bytes.NewReader(qrCode))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imgOpts, 0, "")

	pdf.SetY(-30)
	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(0, 10, "Show this receipt at check-in.", "T", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Println("PrintReceipt PDF output error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to render receipt")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="receipt-`+b.BookingReference+`.pdf"`)
	w.Write(buf.Bytes())
}
