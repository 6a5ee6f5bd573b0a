package webhook

import "testing"

func TestParseStripeEventCompleted(t *testing.T) {
	body := []byte(`{
		"id": "evt_123",
		"type": "checkout.session.completed",
		"data": {"object": {"id": "cs_test_abc", "payment_status": "paid"}}
	}`)
	ev, err := ParseStripeEvent(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.EventID != "evt_123" || ev.SessionID != "cs_test_abc" {
		t.Fatalf("event = %+v", ev)
	}
	if !ev.Completed {
		t.Fatal("completed session should be marked completed")
	}
}

func TestParseStripeEventUnpaidSession(t *testing.T) {
	body := []byte(`{
		"id": "evt_124",
		"type": "checkout.session.completed",
		"data": {"object": {"id": "cs_test_abc", "payment_status": "unpaid"}}
	}`)
	ev, err := ParseStripeEvent(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Completed {
		t.Fatal("unpaid session must not be completed")
	}
}

func TestParseStripeEventOtherType(t *testing.T) {
	body := []byte(`{
		"id": "evt_125",
		"type": "payment_intent.created",
		"data": {"object": {"id": "cs_test_abc", "payment_status": "paid"}}
	}`)
	ev, err := ParseStripeEvent(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Completed {
		t.Fatal("unrelated event types must be ignored")
	}
}

func TestParseStripeEventMalformed(t *testing.T) {
	cases := [][]byte{
		[]byte(`not json`),
		[]byte(`{}`),
		[]byte(`{"id": "evt_1"}`),
		[]byte(`{"data": {"object": {"id": "cs_1"}}}`),
	}
	for _, body := range cases {
		if _, err := ParseStripeEvent(body); err == nil {
			t.Fatalf("payload %s should be rejected", body)
		}
	}
}

func TestParsePayPalEventCompleted(t *testing.T) {
	body := []byte(`{
		"id": "WH-1",
		"event_type": "PAYMENT.SALE.COMPLETED",
		"resource": {"id": "sale_9", "parent_payment": "PAY-77"}
	}`)
	ev, err := ParsePayPalEvent(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.SessionID != "PAY-77" {
		t.Fatalf("session = %q, want parent payment id", ev.SessionID)
	}
	if !ev.Completed {
		t.Fatal("sale completed event should be marked completed")
	}
}

func TestParsePayPalEventFallsBackToResourceID(t *testing.T) {
	body := []byte(`{
		"id": "WH-2",
		"event_type": "PAYMENT.SALE.COMPLETED",
		"resource": {"id": "PAY-88"}
	}`)
	ev, err := ParsePayPalEvent(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.SessionID != "PAY-88" {
		t.Fatalf("session = %q, want PAY-88", ev.SessionID)
	}
}

func TestParsePayPalEventOtherType(t *testing.T) {
	body := []byte(`{
		"id": "WH-3",
		"event_type": "PAYMENT.SALE.DENIED",
		"resource": {"parent_payment": "PAY-99"}
	}`)
	ev, err := ParsePayPalEvent(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Completed {
		t.Fatal("denied sale must not be completed")
	}
}

func TestParsePayPalEventMalformed(t *testing.T) {
	cases := [][]byte{
		[]byte(`{`),
		[]byte(`{}`),
		[]byte(`{"event_type": "PAYMENT.SALE.COMPLETED"}`),
		[]byte(`{"id": "WH-4", "resource": {}}`),
	}
	for _, body := range cases {
		if _, err := ParsePayPalEvent(body); err == nil {
			t.Fatalf("payload %s should be rejected", body)
		}
	}
}
