package client

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"storefront-checkout-demo/internal/config"
	"time"
)

type RazorpayClient interface {
	// CreateOrder creates a gateway-side order intent. Amount is in minor
	// currency units (paise for INR).
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (string, error)
	// VerifySignature checks the signature the hosted widget hands back on
	// payment success.
	VerifySignature(gatewayOrderID, paymentID, signature string) error
}

type razorpayClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	keyID      string
	keySecret  string
}

type razorpayOrderResult struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

func NewRazorpayClient(razorpayCfg *config.Razorpay) RazorpayClient {
	return &razorpayClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: razorpayCfg.BaseApiURL,
		keyID:      razorpayCfg.KeyID,
		keySecret:  razorpayCfg.KeySecret,
	}
}

func (c *razorpayClientImpl) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (string, error) {
	payload := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal req payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseApiURL+"/v1/orders",
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", fmt.Errorf("http new request: %w", err)
	}

	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("razorpay create order request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("razorpay error %d: %s", resp.StatusCode, string(b))
	}

	var result razorpayOrderResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode razorpay response: %w", err)
	}

	if result.ID == "" {
		return "", fmt.Errorf("razorpay response missing order id")
	}

	return result.ID, nil
}

func (c *razorpayClientImpl) VerifySignature(gatewayOrderID, paymentID, signature string) error {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return fmt.Errorf("payment signature mismatch")
	}
	return nil
}
