package booking

import (
	"strings"
	"testing"
	"time"
)

func TestReceiptQRPayloadRoundTrip(t *testing.T) {
	payload := ReceiptQRPayload("bk-123", "EGF-403921", time.Now().Unix())

	if !strings.HasPrefix(payload, "bk-123|EGF-403921|") {
		t.Fatalf("payload = %q", payload)
	}
	if !VerifyReceiptQRPayload(payload) {
		t.Fatal("freshly signed payload should verify")
	}
}

func TestReceiptQRPayloadTamperDetected(t *testing.T) {
	payload := ReceiptQRPayload("bk-123", "EGF-403921", 1700000000)

	tampered := strings.Replace(payload, "bk-123", "bk-999", 1)
	if VerifyReceiptQRPayload(tampered) {
		t.Fatal("tampered booking id should fail verification")
	}

	tampered = strings.Replace(payload, "EGF-403921", "EGF-000000", 1)
	if VerifyReceiptQRPayload(tampered) {
		t.Fatal("tampered reference should fail verification")
	}
}

func TestVerifyReceiptQRPayloadGarbage(t *testing.T) {
	for _, in := range []string{"", "no-pipes-here", "a|b|c|notasignature"} {
		if VerifyReceiptQRPayload(in) {
			t.Fatalf("input %q should fail verification", in)
		}
	}
}
