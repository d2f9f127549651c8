package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MockGateway is a configurable in-memory Gateway for tests.
type MockGateway struct {
	InitializeFunc func(ctx context.Context, req InitializeRequest) (*InitializeResult, error)
	VerifyFunc     func(ctx context.Context, reference string) (*VerifyResult, error)
	SignatureValid bool

	InitializeCalls []InitializeRequest
	VerifyCalls     []string
}

func NewMockGateway() *MockGateway {
	return &MockGateway{SignatureValid: true}
}

func (m *MockGateway) InitializeTransaction(ctx context.Context, req InitializeRequest) (*InitializeResult, error) {
	m.InitializeCalls = append(m.InitializeCalls, req)
	if m.InitializeFunc != nil {
		return m.InitializeFunc(ctx, req)
	}
	return &InitializeResult{
		AuthorizationURL: fmt.Sprintf("https://checkout.test/%s", req.Reference),
		AccessCode:       "mock_access",
		Reference:        req.Reference,
	}, nil
}

func (m *MockGateway) VerifyTransaction(ctx context.Context, reference string) (*VerifyResult, error) {
	m.VerifyCalls = append(m.VerifyCalls, reference)
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, reference)
	}
	return &VerifyResult{
		Reference:     reference,
		Status:        "success",
		Amount:        decimal.NewFromInt(150000),
		Channel:       "card",
		CustomerEmail: "resident@example.com",
		TransactionID: "txn_mock",
		PaidAt:        time.Now().UTC(),
	}, nil
}

func (m *MockGateway) VerifyWebhookSignature(payload []byte, signature string) bool {
	return m.SignatureValid
}
