package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"purefarm/src/models"
)

func TestCheckoutRejectsInvalidSignature(t *testing.T) {
	payments := NewPaymentService("http://unused", "key", "secret", testLogger())
	orders := &OrderService{Payments: payments, Logger: testLogger()}

	_, err := orders.Checkout("user-1", CheckoutInput{
		GatewayOrderID:   "order_1",
		GatewayPaymentID: "pay_1",
		GatewaySignature: "forged",
		Items:            []models.OrderItem{{ProductID: "p-1", Price: 10, Quantity: 1}},
		TotalAmount:      10,
	})
	require.ErrorIs(t, err, ErrInvalidSignature)
}
