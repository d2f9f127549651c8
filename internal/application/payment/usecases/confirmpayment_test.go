package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelhub/internal/application/payment/gateway"
	"hostelhub/internal/domain/payment"
	apperrors "hostelhub/internal/shared/errors"
	"hostelhub/internal/shared/id"
)

func newConfirmUseCase(env *testEnv, gw gateway.Gateway) (*ConfirmPaymentUseCase, *recordingNotifier) {
	notifier := &recordingNotifier{}
	uc := NewConfirmPaymentUseCase(
		env.txManager, env.paymentRepo, env.residentRepo, env.roomRepo,
		env.hostelRepo, env.yearRepo, gw, notifier, testLogger(),
	)
	return uc, notifier
}

func successVerification(reference, amount string) *gateway.VerifyResult {
	return &gateway.VerifyResult{
		Reference:     reference,
		Status:        "success",
		Amount:        decimal.RequireFromString(amount),
		Channel:       "card",
		CustomerEmail: "ada@example.com",
		TransactionID: "txn_" + reference,
		PaidAt:        time.Now().UTC(),
	}
}

func TestConfirmPaymentAssignsRoomAtThreshold(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	hs := env.createHostel(t)
	rm := env.createRoom(t, hs.ID(), "1000")
	year := env.createActiveYear(t)
	profile := env.createProfile(t, 1, "ada@example.com")

	p, err := payment.NewPayment("ref_threshold", decimal.RequireFromString("700"), "booking", rm.ID(), hs.ID(), year.ID())
	require.NoError(t, err)
	require.NoError(t, p.LinkResidentProfile(profile.ID()))
	require.NoError(t, env.paymentRepo.Create(ctx, p))

	mock := gateway.NewMockGateway()
	mock.VerifyFunc = func(ctx context.Context, reference string) (*gateway.VerifyResult, error) {
		return successVerification(reference, "700"), nil
	}

	uc, _ := newConfirmUseCase(env, mock)
	result, err := uc.Execute(ctx, ConfirmPaymentCommand{Reference: "ref_threshold"})
	require.NoError(t, err)

	assert.False(t, result.AlreadyConfirmed)
	assert.True(t, result.RoomAssigned)
	assert.Len(t, result.AccessCode, id.AccessCodeLength)
	assert.True(t, result.TotalPaid.Equal(decimal.RequireFromString("700")), "total paid: %s", result.TotalPaid)
	assert.True(t, result.BalanceOwed.Equal(decimal.RequireFromString("300")), "balance owed: %s", result.BalanceOwed)

	reloaded, err := env.residentRepo.GetByID(ctx, profile.ID())
	require.NoError(t, err)
	require.NotNil(t, reloaded.RoomID())
	assert.Equal(t, rm.ID(), *reloaded.RoomID())
	require.NotNil(t, reloaded.AccessCode())

	updatedRoom, err := env.roomRepo.GetByID(ctx, rm.ID())
	require.NoError(t, err)
	assert.Equal(t, 1, updatedRoom.ResidentCount())

	// The confirmed row carries the cumulative totals.
	paid, err := env.paymentRepo.GetByReference(ctx, "ref_threshold")
	require.NoError(t, err)
	assert.True(t, paid.AmountPaid().Equal(decimal.RequireFromString("700")), "amount paid: %s", paid.AmountPaid())
	assert.True(t, paid.BalanceOwed().Equal(decimal.RequireFromString("300")), "balance owed: %s", paid.BalanceOwed())
}

func TestConfirmPaymentIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	hs := env.createHostel(t)
	rm := env.createRoom(t, hs.ID(), "1000")
	year := env.createActiveYear(t)
	profile := env.createProfile(t, 1, "ada@example.com")

	p, err := payment.NewPayment("ref_idem", decimal.RequireFromString("1000"), "booking", rm.ID(), hs.ID(), year.ID())
	require.NoError(t, err)
	require.NoError(t, p.LinkResidentProfile(profile.ID()))
	require.NoError(t, env.paymentRepo.Create(ctx, p))

	mock := gateway.NewMockGateway()
	mock.VerifyFunc = func(ctx context.Context, reference string) (*gateway.VerifyResult, error) {
		return successVerification(reference, "1000"), nil
	}

	uc, _ := newConfirmUseCase(env, mock)

	first, err := uc.Execute(ctx, ConfirmPaymentCommand{Reference: "ref_idem"})
	require.NoError(t, err)
	assert.False(t, first.AlreadyConfirmed)
	assert.True(t, first.RoomAssigned)

	second, err := uc.Execute(ctx, ConfirmPaymentCommand{Reference: "ref_idem"})
	require.NoError(t, err)
	assert.True(t, second.AlreadyConfirmed)
	assert.False(t, second.RoomAssigned)

	// The duplicate delivery must not inflate occupancy.
	updatedRoom, err := env.roomRepo.GetByID(ctx, rm.ID())
	require.NoError(t, err)
	assert.Equal(t, 1, updatedRoom.ResidentCount())
}

func TestConfirmPaymentBelowThresholdKeepsRoomUnassigned(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	hs := env.createHostel(t)
	rm := env.createRoom(t, hs.ID(), "1000")
	year := env.createActiveYear(t)
	profile := env.createProfile(t, 1, "ada@example.com")

	p, err := payment.NewPayment("ref_partial", decimal.RequireFromString("600"), "booking", rm.ID(), hs.ID(), year.ID())
	require.NoError(t, err)
	require.NoError(t, p.LinkResidentProfile(profile.ID()))
	require.NoError(t, env.paymentRepo.Create(ctx, p))

	mock := gateway.NewMockGateway()
	mock.VerifyFunc = func(ctx context.Context, reference string) (*gateway.VerifyResult, error) {
		return successVerification(reference, "600"), nil
	}

	uc, _ := newConfirmUseCase(env, mock)
	result, err := uc.Execute(ctx, ConfirmPaymentCommand{Reference: "ref_partial"})
	require.NoError(t, err)

	assert.False(t, result.RoomAssigned)
	assert.Empty(t, result.AccessCode)
	// Below the threshold the outstanding balance stays undisclosed.
	assert.True(t, result.BalanceOwed.IsZero(), "balance owed: %s", result.BalanceOwed)

	reloaded, err := env.residentRepo.GetByID(ctx, profile.ID())
	require.NoError(t, err)
	assert.Nil(t, reloaded.RoomID())

	// The stored totals stay undisclosed too.
	paid, err := env.paymentRepo.GetByReference(ctx, "ref_partial")
	require.NoError(t, err)
	assert.True(t, paid.AmountPaid().Equal(decimal.RequireFromString("600")), "amount paid: %s", paid.AmountPaid())
	assert.True(t, paid.BalanceOwed().IsZero(), "balance owed: %s", paid.BalanceOwed())
}

func TestConfirmPaymentFailedSettlementLeavesPaymentPending(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	hs := env.createHostel(t)
	year := env.createActiveYear(t)
	profile := env.createProfile(t, 1, "ada@example.com")

	// The payment points at a room that does not exist, so settlement
	// cannot complete.
	p, err := payment.NewPayment("ref_rollback", decimal.RequireFromString("700"), "booking", 999, hs.ID(), year.ID())
	require.NoError(t, err)
	require.NoError(t, p.LinkResidentProfile(profile.ID()))
	require.NoError(t, env.paymentRepo.Create(ctx, p))

	mock := gateway.NewMockGateway()
	mock.VerifyFunc = func(ctx context.Context, reference string) (*gateway.VerifyResult, error) {
		return successVerification(reference, "700"), nil
	}

	uc, _ := newConfirmUseCase(env, mock)
	_, err = uc.Execute(ctx, ConfirmPaymentCommand{Reference: "ref_rollback"})
	require.Error(t, err)

	// The confirmation claim rolls back with the rest of the transaction.
	reloaded, err := env.paymentRepo.GetByReference(ctx, "ref_rollback")
	require.NoError(t, err)
	assert.True(t, reloaded.Status().IsPending())

	// A retry is a fresh attempt, not a duplicate delivery.
	result, err := uc.Execute(ctx, ConfirmPaymentCommand{Reference: "ref_rollback"})
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestConfirmPaymentRejectsUnlinkedPayment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	hs := env.createHostel(t)
	rm := env.createRoom(t, hs.ID(), "1000")
	year := env.createActiveYear(t)

	p, err := payment.NewPayment("ref_unlinked", decimal.RequireFromString("700"), "booking", rm.ID(), hs.ID(), year.ID())
	require.NoError(t, err)
	require.NoError(t, env.paymentRepo.Create(ctx, p))

	mock := gateway.NewMockGateway()
	mock.VerifyFunc = func(ctx context.Context, reference string) (*gateway.VerifyResult, error) {
		return successVerification(reference, "700"), nil
	}

	uc, _ := newConfirmUseCase(env, mock)
	_, err = uc.Execute(ctx, ConfirmPaymentCommand{Reference: "ref_unlinked"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))

	// Nothing changed; reconciliation has to attach an owner first.
	reloaded, err := env.paymentRepo.GetByReference(ctx, "ref_unlinked")
	require.NoError(t, err)
	assert.True(t, reloaded.Status().IsPending())
}

func TestConfirmPaymentRejectsAmountMismatch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	hs := env.createHostel(t)
	rm := env.createRoom(t, hs.ID(), "1000")
	year := env.createActiveYear(t)
	profile := env.createProfile(t, 1, "ada@example.com")

	p, err := payment.NewPayment("ref_mismatch", decimal.RequireFromString("700"), "booking", rm.ID(), hs.ID(), year.ID())
	require.NoError(t, err)
	require.NoError(t, p.LinkResidentProfile(profile.ID()))
	require.NoError(t, env.paymentRepo.Create(ctx, p))

	mock := gateway.NewMockGateway()
	mock.VerifyFunc = func(ctx context.Context, reference string) (*gateway.VerifyResult, error) {
		return successVerification(reference, "500"), nil
	}

	uc, _ := newConfirmUseCase(env, mock)
	_, err = uc.Execute(ctx, ConfirmPaymentCommand{Reference: "ref_mismatch"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))

	// The payment must remain pending for a later correct verification.
	reloaded, err := env.paymentRepo.GetByReference(ctx, "ref_mismatch")
	require.NoError(t, err)
	assert.True(t, reloaded.Status().IsPending())
}

func TestConfirmPaymentRejectsUnsuccessfulGatewayStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	hs := env.createHostel(t)
	rm := env.createRoom(t, hs.ID(), "1000")
	year := env.createActiveYear(t)
	profile := env.createProfile(t, 1, "ada@example.com")

	p, err := payment.NewPayment("ref_failed", decimal.RequireFromString("700"), "booking", rm.ID(), hs.ID(), year.ID())
	require.NoError(t, err)
	require.NoError(t, p.LinkResidentProfile(profile.ID()))
	require.NoError(t, env.paymentRepo.Create(ctx, p))

	mock := gateway.NewMockGateway()
	mock.VerifyFunc = func(ctx context.Context, reference string) (*gateway.VerifyResult, error) {
		v := successVerification(reference, "700")
		v.Status = "failed"
		return v, nil
	}

	uc, _ := newConfirmUseCase(env, mock)
	_, err = uc.Execute(ctx, ConfirmPaymentCommand{Reference: "ref_failed"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}
