package pay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VerifySignature recomputes HMAC-SHA256(secret, orderID|paymentID)
// and compares it against the supplied hex signature. hmac.Equal keeps
// the comparison constant-time, so the check leaks nothing about how
// much of a forged signature matched.
func VerifySignature(secret []byte, orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
