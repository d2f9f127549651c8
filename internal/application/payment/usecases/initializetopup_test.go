package usecases

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelhub/internal/application/payment/gateway"
	"hostelhub/internal/infrastructure/persistence/models"
	apperrors "hostelhub/internal/shared/errors"
	"hostelhub/internal/shared/id"
)

// topUpFixture books a resident into a room priced 1000 with the given
// amount already confirmed.
func topUpFixture(t *testing.T, env *testEnv, alreadyPaid string) uint {
	t.Helper()
	ctx := context.Background()

	hs := env.createHostel(t)
	rm := env.createRoom(t, hs.ID(), "1000")
	year := env.createActiveYear(t)
	profile := env.createProfile(t, 1, "ada@example.com")

	code := id.MustNewAccessCode()
	require.NoError(t, profile.AssignRoom(rm.ID(), hs.ID(), year.ID(), code, year.EndDate()))
	require.NoError(t, env.residentRepo.Update(ctx, profile))

	if alreadyPaid != "" {
		profileID := profile.ID()
		env.createConfirmedPayment(t, "ref_initial", alreadyPaid, rm.ID(), hs.ID(), year.ID(), &profileID)
	}

	return profile.UserID()
}

func newTopUpUseCase(env *testEnv, mock *gateway.MockGateway) *InitializeTopUpUseCase {
	return NewInitializeTopUpUseCase(
		env.paymentRepo, env.residentRepo, env.roomRepo, env.hostelRepo,
		mock, "https://hostelhub.test/payments/callback", testLogger(),
	)
}

func TestInitializeTopUpCreatesPendingPayment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID := topUpFixture(t, env, "700")

	mock := gateway.NewMockGateway()
	uc := newTopUpUseCase(env, mock)

	result, err := uc.Execute(ctx, InitializeTopUpCommand{
		UserID: userID,
		Amount: decimal.RequireFromString("200"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Reference)
	assert.NotEmpty(t, result.AuthorizationURL)
	assert.True(t, result.OutstandingDebt.Equal(decimal.RequireFromString("100")), "outstanding: %s", result.OutstandingDebt)

	created, err := env.paymentRepo.GetByReference(ctx, result.Reference)
	require.NoError(t, err)
	assert.True(t, created.Status().IsPending())
	assert.Equal(t, "topup", created.Purpose().String())
	require.NotNil(t, created.ResidentProfileID())

	require.Len(t, mock.InitializeCalls, 1)
	assert.Equal(t, "ada@example.com", mock.InitializeCalls[0].Email)
}

func TestInitializeTopUpRejectsAmountOverDebt(t *testing.T) {
	env := newTestEnv(t)
	userID := topUpFixture(t, env, "700")

	uc := newTopUpUseCase(env, gateway.NewMockGateway())

	_, err := uc.Execute(context.Background(), InitializeTopUpCommand{
		UserID: userID,
		Amount: decimal.RequireFromString("301"),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestInitializeTopUpRejectsSettledBooking(t *testing.T) {
	env := newTestEnv(t)
	userID := topUpFixture(t, env, "1000")

	uc := newTopUpUseCase(env, gateway.NewMockGateway())

	_, err := uc.Execute(context.Background(), InitializeTopUpCommand{
		UserID: userID,
		Amount: decimal.RequireFromString("50"),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestInitializeTopUpRequiresRoomAssignment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	profile := env.createProfile(t, 9, "noroom@example.com")

	uc := newTopUpUseCase(env, gateway.NewMockGateway())

	_, err := uc.Execute(ctx, InitializeTopUpCommand{
		UserID: profile.UserID(),
		Amount: decimal.RequireFromString("100"),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestInitializeTopUpCancelsPaymentOnGatewayFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID := topUpFixture(t, env, "700")

	mock := gateway.NewMockGateway()
	mock.InitializeFunc = func(ctx context.Context, req gateway.InitializeRequest) (*gateway.InitializeResult, error) {
		return nil, assert.AnError
	}

	uc := newTopUpUseCase(env, mock)

	_, err := uc.Execute(ctx, InitializeTopUpCommand{
		UserID: userID,
		Amount: decimal.RequireFromString("100"),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsGatewayError(err))

	// The pending row must not linger as payable.
	var pending int64
	require.NoError(t, env.db.Model(&models.PaymentModel{}).
		Where("status = ?", "pending").
		Count(&pending).Error)
	assert.Zero(t, pending)
}
