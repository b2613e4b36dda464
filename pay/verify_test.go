package pay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func signPayload(secret []byte, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	secret := []byte("test_gateway_secret")
	orderID := "order_MkWq7vR2example"
	paymentID := "pay_MkWqExample123"

	sig := signPayload(secret, orderID, paymentID)

	if !VerifySignature(secret, orderID, paymentID, sig) {
		t.Fatal("expected valid signature to verify")
	}

	// Any single-character mutation must fail.
	for i := 0; i < len(sig); i++ {
		mutated := []byte(sig)
		if mutated[i] == 'a' {
			mutated[i] = 'b'
		} else {
			mutated[i] = 'a'
		}
		if VerifySignature(secret, orderID, paymentID, string(mutated)) {
			t.Fatalf("mutated signature at index %d verified", i)
		}
	}
}

func TestVerifySignatureRejectsWrongInputs(t *testing.T) {
	secret := []byte("test_gateway_secret")
	sig := signPayload(secret, "order_1", "pay_1")

	cases := []struct {
		name      string
		secret    []byte
		orderID   string
		paymentID string
		signature string
	}{
		{"wrong secret", []byte("other_secret"), "order_1", "pay_1", sig},
		{"wrong order id", secret, "order_2", "pay_1", sig},
		{"wrong payment id", secret, "order_1", "pay_2", sig},
		{"empty signature", secret, "order_1", "pay_1", ""},
		{"truncated signature", secret, "order_1", "pay_1", sig[:len(sig)-2]},
	}

	for _, tc := range cases {
		if VerifySignature(tc.secret, tc.orderID, tc.paymentID, tc.signature) {
			t.Errorf("%s: expected verification failure", tc.name)
		}
	}
}

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{0, 0},
		{1, 100},
		{10, 1000},
		{99.99, 9999},
		{0.01, 1},
		{123.45, 12345},
	}
	for _, tc := range cases {
		if got := MinorUnits(tc.amount); got != tc.want {
			t.Errorf("MinorUnits(%v) = %d, want %d", tc.amount, got, tc.want)
		}
	}
}
