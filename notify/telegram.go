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

var telegramClient = &http.Client{Timeout: 10 * time.Second}

// SendTelegramMessage posts a booking summary to the staff chat.
func SendTelegramMessage(b *models.Booking) error {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	chatID := os.Getenv("TELEGRAM_CHAT_ID")
	if token == "" || chatID == "" {
		return fmt.Errorf("telegram bot not configured")
	}

	text := fmt.Sprintf(
		"NEW PAID BOOKING %s\n\nCustomer: %s\nEmail: %s\nPhone: %s\nMethod: %s\nTotal: $%.2f\nBooking ID: %s",
		b.BookingReference, b.CustomerName, b.CustomerEmail, b.CustomerPhone,
		b.PaymentMethod, b.TotalAmount, b.ID)

	payload, err := json.Marshal(map[string]string{
		"chat_id": chatID,
		"text":    text,
	})
	if err != nil {
		return err
	}

	url := "https://api.telegram.org/bot" + token + "/sendMessage"
	resp, err := telegramClient.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram sendMessage: status %d", resp.StatusCode)
	}
	return nil
}
