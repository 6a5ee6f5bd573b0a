package notify

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"

	"gulffloat/models"
)

// SendConfirmationEmail mails the booking confirmation over SMTP.
func SendConfirmationEmail(b *models.Booking) error {
	host := envOr("SMTP_HOST", "smtp.gmail.com")
	port := envOr("SMTP_PORT", "587")
	from := os.Getenv("SMTP_FROM")
	pass := os.Getenv("SMTP_PASSWORD")
	if from == "" || pass == "" {
		return fmt.Errorf("smtp sender not configured")
	}

	msg := []byte("From: Exclusive Gulf Float <" + from + ">\r\n" +
		"To: " + b.CustomerEmail + "\r\n" +
		"Subject: Booking Confirmed - Exclusive Gulf Float - " + b.BookingReference + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=UTF-8\r\n" +
		"\r\n" +
		confirmationHTML(b))

	auth := smtp.PlainAuth("", from, pass, host)
	return smtp.SendMail(host+":"+port, auth, from, []string{b.CustomerEmail}, msg)
}

func confirmationHTML(b *models.Booking) string {
	var lines strings.Builder
	for _, it := range b.Items {
		fmt.Fprintf(&lines,
			"<p><strong>%s</strong> x%d on %s at %s &mdash; $%.2f</p>",
			it.ServiceName, it.Quantity, it.BookingDate, it.BookingTime, it.Subtotal)
	}

	return fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: #1e7b85; color: white; padding: 30px; text-align: center;">
    <h1 style="margin: 0;">Exclusive Gulf Float</h1>
    <p>Your Premium Gulf Experience Awaits</p>
  </div>
  <div style="padding: 30px; background: #f9f9f9;">
    <h2 style="color: #1e7b85;">Booking Confirmation</h2>
    <p>Dear %s,</p>
    <p>Thank you for choosing Exclusive Gulf Float! Your booking <strong>%s</strong> is confirmed.</p>
    <div style="background: white; padding: 20px; border-radius: 8px;">
      %s
      <p><strong>Total paid:</strong> $%.2f</p>
    </div>
    <p>Arrive 15 minutes early for check-in. Life jackets are provided.</p>
    <p>Best regards,<br><strong>The Exclusive Gulf Float Team</strong></p>
  </div>
</body>
</html>`, b.CustomerName, b.BookingReference, lines.String(), b.TotalAmount)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
