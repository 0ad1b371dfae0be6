package service

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

//PaymentService talks to the payment gateway over its REST API and checks
//the signature the gateway hands back after capture.
type PaymentService struct {
	BaseURL string
	KeyID   string
	Secret  string
	Client  *http.Client
	Logger  *logrus.Logger
}

func NewPaymentService(baseURL, keyID, secret string, logger *logrus.Logger) *PaymentService {
	return &PaymentService{
		BaseURL: baseURL,
		KeyID:   keyID,
		Secret:  secret,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
		Logger: logger,
	}
}

//GatewayOrder is the vendor order object returned on creation.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

//CreateOrder registers a payment order with the gateway. The amount comes
//in rupees and goes out in paise.
func (s *PaymentService) CreateOrder(ctx context.Context, amount float64) (*GatewayOrder, error) {
	payload := map[string]interface{}{
		"amount":          int64(amount * 100),
		"currency":        "INR",
		"receipt":         "receipt_" + receiptID(),
		"payment_capture": 1,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal gateway order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/orders", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(s.KeyID, s.Secret)

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach payment gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("payment gateway returned status %d", resp.StatusCode)
	}

	var order GatewayOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("failed to decode gateway response: %w", err)
	}

	s.Logger.WithFields(logrus.Fields{
		"gateway_order_id": order.ID,
		"amount":           order.Amount,
	}).Info("Created payment order")

	return &order, nil
}

//VerifySignature recomputes the HMAC-SHA256 of "orderID|paymentID" with the
//gateway secret and compares it against the supplied signature. The match
//is exact, a signature off by one byte fails.
func (s *PaymentService) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(s.Secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

//receiptID hashes the current timestamp into a short unique-enough tag.
func receiptID() string {
	sum := md5.Sum([]byte(strconv.FormatInt(time.Now().UnixNano(), 10)))
	return hex.EncodeToString(sum[:])[:12]
}
