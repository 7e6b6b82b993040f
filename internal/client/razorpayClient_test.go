package client

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-checkout-demo/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotPayload map[string]interface{}

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/orders", r.URL.Path)

			user, pass, ok := r.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "rzp_test_key", user)
			assert.Equal(t, "secret", pass)

			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))

			json.NewEncoder(w).Encode(map[string]interface{}{
				"id":     "order_Abc123",
				"status": "created",
			})
		}))
		defer srv.Close()

		c := NewRazorpayClient(&config.Razorpay{
			BaseApiURL: srv.URL,
			KeyID:      "rzp_test_key",
			KeySecret:  "secret",
		})

		orderID, err := c.CreateOrder(context.Background(), 10000, "INR", "receipt_abc1234")

		require.NoError(t, err)
		assert.Equal(t, "order_Abc123", orderID)
		assert.Equal(t, float64(10000), gotPayload["amount"])
		assert.Equal(t, "INR", gotPayload["currency"])
		assert.Equal(t, "receipt_abc1234", gotPayload["receipt"])
	})

	t.Run("gateway rejects", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"description":"bad key"}}`))
		}))
		defer srv.Close()

		c := NewRazorpayClient(&config.Razorpay{BaseApiURL: srv.URL})

		_, err := c.CreateOrder(context.Background(), 10000, "INR", "receipt_abc1234")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})

	t.Run("missing order id", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		c := NewRazorpayClient(&config.Razorpay{BaseApiURL: srv.URL})

		_, err := c.CreateOrder(context.Background(), 10000, "INR", "receipt_abc1234")

		require.Error(t, err)
	})
}

func TestVerifySignature(t *testing.T) {
	c := NewRazorpayClient(&config.Razorpay{KeySecret: "secret"})

	sign := func(orderID, paymentID string) string {
		mac := hmac.New(sha256.New, []byte("secret"))
		mac.Write([]byte(orderID + "|" + paymentID))
		return hex.EncodeToString(mac.Sum(nil))
	}

	t.Run("valid", func(t *testing.T) {
		err := c.VerifySignature("order_1", "pay_1", sign("order_1", "pay_1"))
		assert.NoError(t, err)
	})

	t.Run("tampered payment id", func(t *testing.T) {
		err := c.VerifySignature("order_1", "pay_2", sign("order_1", "pay_1"))
		assert.Error(t, err)
	})

	t.Run("garbage signature", func(t *testing.T) {
		err := c.VerifySignature("order_1", "pay_1", "deadbeef")
		assert.Error(t, err)
	})
}
