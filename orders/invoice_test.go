package orders

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"testing"
)

func TestInvoiceQRPayload(t *testing.T) {
	Init([]byte("invoice_test_secret"))

	payload := invoiceQRPayload(7, "pay_Abc123")

	parts := strings.Split(payload, "|")
	if len(parts) != 3 {
		t.Fatalf("expected orderId|paymentId|signature, got %q", payload)
	}
	if parts[0] != "7" || parts[1] != "pay_Abc123" {
		t.Fatalf("unexpected payload prefix %q", payload)
	}

	mac := hmac.New(sha256.New, []byte("invoice_test_secret"))
	mac.Write([]byte("7|pay_Abc123"))
	want := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	if parts[2] != want {
		t.Fatalf("signature mismatch: got %q want %q", parts[2], want)
	}
}
