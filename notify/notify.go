// Package notify fans out booking side effects. Events are published to a
// Redis channel after the response-determining write completes; a worker
// goroutine dispatches them. Every dispatch is best-effort: failures are
// logged and never retried, and they can never fail the request that
// queued them.
package notify

import (
	"context"
	"encoding/json"
	"log"

	"gulffloat/models"
	"gulffloat/rdx"
)

const channel = "booking-events"

type EventType string

const (
	BookingCreated EventType = "booking.created"
	BookingPaid    EventType = "booking.paid"
)

type Event struct {
	Type    EventType      `json:"type"`
	Booking models.Booking `json:"booking"`
}

// Publish queues a booking event. Errors are swallowed by design: the
// booking write already succeeded and must not be rolled back.
func Publish(t EventType, booking models.Booking) {
	data, err := json.Marshal(Event{Type: t, Booking: booking})
	if err != nil {
		log.Printf("notify: marshal event failed: %v", err)
		return
	}
	if err := rdx.Conn.Publish(context.Background(), channel, data).Err(); err != nil {
		log.Printf("notify: publish failed: %v", err)
	}
}

// StartWorker consumes booking events until the process exits.
func StartWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, channel)
	ch := sub.Channel()

	log.Println("notify: worker listening for booking events")

	for msg := range ch {
		var event Event
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("notify: bad event payload: %v", err)
			continue
		}
		Dispatch(event)
	}
}

// Dispatch routes one event to its side effects.
func Dispatch(event Event) {
	switch event.Type {
	case BookingCreated:
		if err := AppendBookingRow(&event.Booking); err != nil {
			log.Printf("notify: sheets append failed for booking %s: %v", event.Booking.ID, err)
		}
	case BookingPaid:
		if err := SendConfirmationEmail(&event.Booking); err != nil {
			log.Printf("notify: confirmation email failed for booking %s: %v", event.Booking.ID, err)
		}
		if err := SendTelegramMessage(&event.Booking); err != nil {
			log.Printf("notify: telegram message failed for booking %s: %v", event.Booking.ID, err)
		}
	default:
		log.Printf("notify: unknown event type %q", event.Type)
	}
}
