package models

import "testing"

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []string{OrderPending, OrderShipped, OrderDelivered, OrderCancelled} {
		if !ValidOrderStatus(s) {
			t.Errorf("%s should be valid", s)
		}
	}
	for _, s := range []string{"", "pending", "Completed", "Returned"} {
		if ValidOrderStatus(s) {
			t.Errorf("%s should be invalid", s)
		}
	}
}
