package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appgateway "hostelhub/internal/application/payment/gateway"
	"hostelhub/internal/shared/config"
	"hostelhub/internal/shared/logger"
)

func newTestGateway(t *testing.T, handler http.Handler) (*PaystackGateway, *httptest.Server) {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	g := NewPaystackGateway(&config.PaystackConfig{
		SecretKey: "sk_test_secret",
		BaseURL:   server.URL,
	}, logger.NewLogger())
	return g, server
}

func TestPaystackInitializeTransaction(t *testing.T) {
	var captured map[string]interface{}

	g, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction/initialize", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_secret", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":true,"message":"Authorization URL created","data":{"authorization_url":"https://checkout.paystack.com/abc","access_code":"abc","reference":"hh_ref1"}}`))
	}))

	result, err := g.InitializeTransaction(context.Background(), appgateway.InitializeRequest{
		Reference:   "hh_ref1",
		Email:       "resident@example.com",
		Amount:      decimal.RequireFromString("1500.50"),
		CallbackURL: "https://app.test/callback",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://checkout.paystack.com/abc", result.AuthorizationURL)
	assert.Equal(t, "hh_ref1", result.Reference)

	// Amounts cross the wire in kobo.
	assert.Equal(t, float64(150050), captured["amount"])
	assert.Equal(t, "resident@example.com", captured["email"])
}

func TestPaystackInitializeRoundsFractionalKoboUp(t *testing.T) {
	var captured map[string]interface{}

	g, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{"status":true,"message":"Authorization URL created","data":{"authorization_url":"https://checkout.paystack.com/abc","access_code":"abc","reference":"hh_ref2"}}`))
	}))

	_, err := g.InitializeTransaction(context.Background(), appgateway.InitializeRequest{
		Reference: "hh_ref2",
		Email:     "resident@example.com",
		Amount:    decimal.RequireFromString("100.005"),
	})
	require.NoError(t, err)

	// A fractional kobo rounds up, never down.
	assert.Equal(t, float64(10001), captured["amount"])
}

func TestPaystackVerifyTransaction(t *testing.T) {
	t.Run("successful transaction", func(t *testing.T) {
		g, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/transaction/verify/hh_ref1", r.URL.Path)
			w.Write([]byte(`{"status":true,"message":"Verification successful","data":{"reference":"hh_ref1","status":"success","amount":150050,"channel":"bank_transfer","id":4099260516,"paid_at":"2026-01-15T10:00:00Z","customer":{"email":"resident@example.com"}}}`))
		}))

		result, err := g.VerifyTransaction(context.Background(), "hh_ref1")
		require.NoError(t, err)

		assert.True(t, result.Succeeded())
		assert.True(t, result.Amount.Equal(decimal.RequireFromString("1500.50")))
		assert.Equal(t, "bank_transfer", result.Channel)
		assert.Equal(t, "4099260516", result.TransactionID)
		assert.Equal(t, "resident@example.com", result.CustomerEmail)
	})

	t.Run("gateway error surfaces message", func(t *testing.T) {
		g, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"status":false,"message":"Transaction reference not found"}`))
		}))

		_, err := g.VerifyTransaction(context.Background(), "missing")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Transaction reference not found")
	})
}

func TestPaystackVerifyWebhookSignature(t *testing.T) {
	g := NewPaystackGateway(&config.PaystackConfig{SecretKey: "sk_test_secret"}, logger.NewLogger())
	payload := []byte(`{"event":"charge.success","data":{"reference":"hh_ref1"}}`)

	mac := hmac.New(sha512.New, []byte("sk_test_secret"))
	mac.Write(payload)
	valid := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, g.VerifyWebhookSignature(payload, valid))
	assert.False(t, g.VerifyWebhookSignature(payload, "deadbeef"))
	assert.False(t, g.VerifyWebhookSignature(payload, ""))
	assert.False(t, g.VerifyWebhookSignature([]byte(`tampered`), valid))
}
