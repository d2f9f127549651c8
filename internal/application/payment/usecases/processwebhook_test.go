package usecases

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelhub/internal/application/payment/gateway"
	"hostelhub/internal/domain/payment"
	apperrors "hostelhub/internal/shared/errors"
)

func newWebhookUseCase(env *testEnv, mock *gateway.MockGateway) *ProcessWebhookUseCase {
	confirmUC, _ := newConfirmUseCase(env, mock)
	return NewProcessWebhookUseCase(mock, env.webhookRepo, confirmUC, testLogger())
}

func TestProcessWebhookRejectsBadSignature(t *testing.T) {
	env := newTestEnv(t)

	mock := gateway.NewMockGateway()
	mock.SignatureValid = false

	uc := newWebhookUseCase(env, mock)
	_, err := uc.Execute(context.Background(), ProcessWebhookCommand{
		Payload:   []byte(`{"event":"charge.success","data":{"reference":"ref_x"}}`),
		Signature: "bad",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorizedError(err))

	// Unverified deliveries never reach the audit table.
	events, total, listErr := env.webhookRepo.List(context.Background(), 0, 10)
	require.NoError(t, listErr)
	assert.Empty(t, events)
	assert.Zero(t, total)
}

func TestProcessWebhookConfirmsChargeSuccess(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	hs := env.createHostel(t)
	rm := env.createRoom(t, hs.ID(), "1000")
	year := env.createActiveYear(t)
	profile := env.createProfile(t, 1, "ada@example.com")

	p, err := payment.NewPayment("ref_hook", decimal.RequireFromString("700"), "booking", rm.ID(), hs.ID(), year.ID())
	require.NoError(t, err)
	require.NoError(t, p.LinkResidentProfile(profile.ID()))
	require.NoError(t, env.paymentRepo.Create(ctx, p))

	mock := gateway.NewMockGateway()
	mock.VerifyFunc = func(ctx context.Context, reference string) (*gateway.VerifyResult, error) {
		return successVerification(reference, "700"), nil
	}

	uc := newWebhookUseCase(env, mock)
	result, err := uc.Execute(ctx, ProcessWebhookCommand{
		Payload:   []byte(`{"event":"charge.success","data":{"reference":"ref_hook"}}`),
		Signature: "valid",
	})
	require.NoError(t, err)

	assert.Equal(t, "charge.success", result.EventType)
	assert.Equal(t, "ref_hook", result.Reference)
	assert.True(t, result.Processed)

	confirmed, err := env.paymentRepo.GetByReference(ctx, "ref_hook")
	require.NoError(t, err)
	assert.True(t, confirmed.Status().IsConfirmed())

	events, total, err := env.webhookRepo.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, int64(1), total)
	assert.True(t, events[0].Processed)
}

func TestProcessWebhookIgnoresOtherEvents(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	mock := gateway.NewMockGateway()
	uc := newWebhookUseCase(env, mock)

	result, err := uc.Execute(ctx, ProcessWebhookCommand{
		Payload:   []byte(`{"event":"transfer.success","data":{"reference":"ref_transfer"}}`),
		Signature: "valid",
	})
	require.NoError(t, err)

	assert.Equal(t, "transfer.success", result.EventType)
	assert.False(t, result.Processed)
	assert.Empty(t, mock.VerifyCalls)

	// Ignored events are still audited.
	events, _, err := env.webhookRepo.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.False(t, events[0].Processed)
}

func TestProcessWebhookAcknowledgesUnknownReference(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	mock := gateway.NewMockGateway()
	mock.VerifyFunc = func(ctx context.Context, reference string) (*gateway.VerifyResult, error) {
		return successVerification(reference, "700"), nil
	}

	uc := newWebhookUseCase(env, mock)
	result, err := uc.Execute(ctx, ProcessWebhookCommand{
		Payload:   []byte(`{"event":"charge.success","data":{"reference":"ref_unknown"}}`),
		Signature: "valid",
	})
	require.NoError(t, err)
	assert.False(t, result.Processed)

	events, _, err := env.webhookRepo.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
}

func TestProcessWebhookRejectsMalformedPayload(t *testing.T) {
	env := newTestEnv(t)

	mock := gateway.NewMockGateway()
	uc := newWebhookUseCase(env, mock)

	_, err := uc.Execute(context.Background(), ProcessWebhookCommand{
		Payload:   []byte(`not json`),
		Signature: "valid",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}
