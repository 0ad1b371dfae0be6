package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	s := NewPaymentService("http://unused", "key", "topsecret", testLogger())

	valid := sign("topsecret", "order_1", "pay_1")
	assert.True(t, s.VerifySignature("order_1", "pay_1", valid))

	//any deviation fails, there is no partial match
	assert.False(t, s.VerifySignature("order_1", "pay_1", valid[:len(valid)-1]))
	assert.False(t, s.VerifySignature("order_1", "pay_1", valid[:len(valid)-1]+"0"))
	assert.False(t, s.VerifySignature("order_1", "pay_2", valid))
	assert.False(t, s.VerifySignature("order_2", "pay_1", valid))
	assert.False(t, s.VerifySignature("order_1", "pay_1", ""))

	//signed with the wrong secret
	other := sign("othersecret", "order_1", "pay_1")
	assert.False(t, s.VerifySignature("order_1", "pay_1", other))
}

func TestCreateOrderConvertsToMinorUnits(t *testing.T) {
	var got map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "key_id", user)
		assert.Equal(t, "key_secret", pass)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		json.NewEncoder(w).Encode(GatewayOrder{
			ID:       "order_test",
			Amount:   int64(got["amount"].(float64)),
			Currency: "INR",
			Status:   "created",
		})
	}))
	defer srv.Close()

	s := NewPaymentService(srv.URL, "key_id", "key_secret", testLogger())

	order, err := s.CreateOrder(context.Background(), 499.50)
	require.NoError(t, err)

	assert.Equal(t, "order_test", order.ID)
	assert.Equal(t, int64(49950), order.Amount)
	assert.Equal(t, float64(49950), got["amount"])
	assert.Equal(t, "INR", got["currency"])
	assert.Equal(t, float64(1), got["payment_capture"])

	receipt, _ := got["receipt"].(string)
	assert.True(t, strings.HasPrefix(receipt, "receipt_"))
	assert.Len(t, strings.TrimPrefix(receipt, "receipt_"), 12)
}

func TestCreateOrderGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"bad key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	s := NewPaymentService(srv.URL, "key", "secret", testLogger())

	_, err := s.CreateOrder(context.Background(), 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
