package pay

import (
	"encoding/json"
	"log"
	"net/http"

	"pawmart/models"
	"pawmart/mq"
	"pawmart/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	razorpay "github.com/razorpay/razorpay-go"
)

// PaymentService wraps the Razorpay client and the webhook secret.
type PaymentService struct {
	client *razorpay.Client
	secret []byte
}

func NewPaymentService(key, secret string) *PaymentService {
	return &PaymentService{
		client: razorpay.NewClient(key, secret),
		secret: []byte(secret),
	}
}

// MinorUnits converts a major-unit amount to the gateway's minor-unit
// convention (rupees to paise).
func MinorUnits(amount float64) int64 {
	return int64(amount*100 + 0.5)
}

// CreateOrder asks the gateway for a payment order and relays its
// response to the client untouched.
func (p *PaymentService) CreateOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
		Receipt  string  `json:"receipt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Amount <= 0 || input.Currency == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Receipt == "" {
		input.Receipt = "rcpt_" + uuid.NewString()
	}

	data := map[string]interface{}{
		"amount":   MinorUnits(input.Amount),
		"currency": input.Currency,
		"receipt":  input.Receipt,
	}

	gatewayOrder, err := p.client.Order.Create(data, nil)
	if err != nil {
		log.Println("Error creating gateway order:", err)
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "error": err.Error()})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, gatewayOrder)
}

// VerifyPayment checks the gateway callback signature.
func (p *PaymentService) VerifyPayment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		OrderID   string `json:"razorpay_order_id"`
		PaymentID string `json:"razorpay_payment_id"`
		Signature string `json:"razorpay_signature"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if !VerifySignature(p.secret, input.OrderID, input.PaymentID, input.Signature) {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Invalid signature"})
		return
	}

	mq.Emit("payment-verified", models.Index{EntityType: "payment", EntityId: input.PaymentID})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "message": "Payment verified successfully"})
}
