// Package gateway defines the payment gateway abstraction used by the
// payment use cases. The production implementation talks to Paystack.
package gateway

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// InitializeRequest starts a hosted checkout session.
type InitializeRequest struct {
	Reference   string
	Email       string
	Amount      decimal.Decimal
	CallbackURL string
	Metadata    map[string]interface{}
}

// InitializeResult carries the hosted checkout handle back to the caller.
type InitializeResult struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

// VerifyResult is the gateway's view of a transaction after verification.
type VerifyResult struct {
	Reference     string
	Status        string
	Amount        decimal.Decimal
	Channel       string
	CustomerEmail string
	TransactionID string
	PaidAt        time.Time
}

// Succeeded reports whether the gateway settled the transaction.
func (r *VerifyResult) Succeeded() bool {
	return r.Status == "success"
}

// Gateway is the payment provider contract. Amounts cross the boundary in
// major currency units; implementations convert to the provider's subunit.
type Gateway interface {
	// InitializeTransaction creates a checkout session and returns the URL
	// the payer is redirected to.
	InitializeTransaction(ctx context.Context, req InitializeRequest) (*InitializeResult, error)

	// VerifyTransaction fetches the authoritative transaction state by
	// reference. Local state is never trusted over this.
	VerifyTransaction(ctx context.Context, reference string) (*VerifyResult, error)

	// VerifyWebhookSignature checks the provider signature over the raw
	// webhook body.
	VerifyWebhookSignature(payload []byte, signature string) bool
}
