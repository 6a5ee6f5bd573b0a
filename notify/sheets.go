package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"gulffloat/models"
)

var sheetsClient = &http.Client{Timeout: 10 * time.Second}

// AppendBookingRow logs the booking to the office spreadsheet through its
// webhook endpoint. Strictly best-effort.
func AppendBookingRow(b *models.Booking) error {
	url := os.Getenv("SHEETS_WEBHOOK_URL")
	if url == "" {
		return fmt.Errorf("sheets webhook not configured")
	}

	row := []interface{}{
		b.CreatedAt.Format(time.RFC3339),
		b.BookingReference,
		b.CustomerName,
		b.CustomerEmail,
		b.CustomerPhone,
		b.PaymentMethod,
		b.PaymentStatus,
		b.TotalAmount,
	}

	payload, err := json.Marshal(map[string]interface{}{
		"range":  "Bookings!A:H",
		"values": [][]interface{}{row},
	})
	if err != nil {
		return err
	}

	resp, err := sheetsClient.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("sheets append: status %d", resp.StatusCode)
	}
	return nil
}
