package models

import "time"

// Payment status values.
const (
	PaymentPending   = "Pending"
	PaymentCompleted = "Completed"
	PaymentFailed    = "Failed"
)

// Order status values.
const (
	OrderPending   = "Pending"
	OrderShipped   = "Shipped"
	OrderDelivered = "Delivered"
	OrderCancelled = "Cancelled"
)

// ValidOrderStatus reports whether s is one of the order status values.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Address is the customer contact block captured with an order.
type Address struct {
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email" bson:"email"`
	Contact string `json:"contact" bson:"contact"`
	Street  string `json:"street" bson:"street"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	Pincode string `json:"pincode" bson:"pincode"`
}

// OrderItem is a line item snapshotted at order time. Prices here are
// frozen copies, deliberately immune to later catalog edits.
type OrderItem struct {
	ProductID string  `json:"id" bson:"id"`
	Name      string  `json:"name" bson:"name"`
	NewPrice  float64 `json:"new_price" bson:"new_price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
}

// PaymentDetails carries the gateway's identifiers for a paid order.
type PaymentDetails struct {
	RazorpayOrderID   string `json:"razorpay_order_id" bson:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id" bson:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature" bson:"razorpay_signature"`
}

// Order is a finalized purchase.
type Order struct {
	OrderID        int64          `json:"orderId" bson:"orderId"`
	Address        Address        `json:"address" bson:"address"`
	Products       []OrderItem    `json:"products" bson:"products"`
	TotalAmount    float64        `json:"totalAmount" bson:"totalAmount"`
	PaymentStatus  string         `json:"paymentStatus" bson:"paymentStatus"`
	OrderStatus    string         `json:"orderStatus" bson:"orderStatus"`
	PaymentDetails PaymentDetails `json:"paymentDetails" bson:"paymentDetails"`
	CreatedAt      time.Time      `json:"createdAt" bson:"createdAt"`
}
