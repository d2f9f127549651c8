// Package gateway implements the Paystack payment provider client.
package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	appgateway "hostelhub/internal/application/payment/gateway"
	"hostelhub/internal/shared/config"
	"hostelhub/internal/shared/logger"
)

var subunitFactor = decimal.NewFromInt(100)

// PaystackGateway talks to the Paystack REST API. Amounts are converted to
// kobo (the currency subunit) on the wire and back to major units on the
// way out.
type PaystackGateway struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
	logger     logger.Interface
}

func NewPaystackGateway(cfg *config.PaystackConfig, log logger.Interface) *PaystackGateway {
	return &PaystackGateway{
		secretKey: cfg.SecretKey,
		baseURL:   cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: log,
	}
}

type paystackEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type initializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type verifyData struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
	Channel   string `json:"channel"`
	ID        int64  `json:"id"`
	PaidAt    string `json:"paid_at"`
	Customer  struct {
		Email string `json:"email"`
	} `json:"customer"`
}

func (g *PaystackGateway) InitializeTransaction(ctx context.Context, req appgateway.InitializeRequest) (*appgateway.InitializeResult, error) {
	// Fractional kobo round up so the charge never undercuts the amount.
	payload := map[string]interface{}{
		"email":        req.Email,
		"amount":       req.Amount.Mul(subunitFactor).Ceil().IntPart(),
		"reference":    req.Reference,
		"callback_url": req.CallbackURL,
	}
	if len(req.Metadata) > 0 {
		payload["metadata"] = req.Metadata
	}

	var data initializeData
	if err := g.post(ctx, "/transaction/initialize", payload, &data); err != nil {
		return nil, err
	}

	return &appgateway.InitializeResult{
		AuthorizationURL: data.AuthorizationURL,
		AccessCode:       data.AccessCode,
		Reference:        data.Reference,
	}, nil
}

func (g *PaystackGateway) VerifyTransaction(ctx context.Context, reference string) (*appgateway.VerifyResult, error) {
	var data verifyData
	if err := g.get(ctx, "/transaction/verify/"+reference, &data); err != nil {
		return nil, err
	}

	paidAt := time.Time{}
	if data.PaidAt != "" {
		if t, err := time.Parse(time.RFC3339, data.PaidAt); err == nil {
			paidAt = t.UTC()
		}
	}
	if paidAt.IsZero() {
		paidAt = time.Now().UTC()
	}

	return &appgateway.VerifyResult{
		Reference:     data.Reference,
		Status:        data.Status,
		Amount:        decimal.NewFromInt(data.Amount).Div(subunitFactor),
		Channel:       data.Channel,
		CustomerEmail: data.Customer.Email,
		TransactionID: fmt.Sprintf("%d", data.ID),
		PaidAt:        paidAt,
	}, nil
}

// VerifyWebhookSignature checks the x-paystack-signature header: an
// HMAC-SHA512 of the raw request body keyed with the secret key.
func (g *PaystackGateway) VerifyWebhookSignature(payload []byte, signature string) bool {
	if signature == "" {
		return false
	}

	mac := hmac.New(sha512.New, []byte(g.secretKey))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

func (g *PaystackGateway) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return g.do(req, out)
}

func (g *PaystackGateway) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	return g.do(req, out)
}

func (g *PaystackGateway) do(req *http.Request, out interface{}) error {
	req.Header.Set("Authorization", "Bearer "+g.secretKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("paystack request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read paystack response: %w", err)
	}

	var envelope paystackEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("failed to decode paystack response: %w", err)
	}

	if resp.StatusCode >= 400 || !envelope.Status {
		g.logger.Warnw("paystack call failed",
			"path", req.URL.Path,
			"status_code", resp.StatusCode,
			"message", envelope.Message,
		)
		return fmt.Errorf("paystack error: %s", envelope.Message)
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("failed to decode paystack data: %w", err)
		}
	}
	return nil
}
