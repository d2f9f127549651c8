package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelhub/internal/application/payment/gateway"
	apperrors "hostelhub/internal/shared/errors"
)

func newInitializeUseCase(env *testEnv, gw gateway.Gateway) *InitializePaymentUseCase {
	return NewInitializePaymentUseCase(
		env.paymentRepo, env.roomRepo, env.hostelRepo, env.yearRepo,
		env.residentRepo, gw, "https://app.test/callback", testLogger(),
	)
}

func TestInitializePaymentAcceptsAnyPartialAmount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	hs := env.createHostel(t)
	require.NoError(t, hs.EnablePartialPayment(nil))
	require.NoError(t, env.hostelRepo.Update(ctx, hs))
	rm := env.createRoom(t, hs.ID(), "1000")
	env.createActiveYear(t)
	env.createProfile(t, 1, "ada@example.com")

	mock := gateway.NewMockGateway()
	uc := newInitializeUseCase(env, mock)

	// Well below the hostel threshold; the booking still starts, the room
	// is just withheld until later top-ups cross it.
	result, err := uc.Execute(ctx, InitializePaymentCommand{
		UserID: 1,
		RoomID: rm.ID(),
		Amount: decimal.RequireFromString("100"),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.Reference, "hh_"))
	assert.True(t, result.Amount.Equal(decimal.RequireFromString("100")))

	p, err := env.paymentRepo.GetByReference(ctx, result.Reference)
	require.NoError(t, err)
	assert.True(t, p.Status().IsPending())
	assert.True(t, p.Amount().Equal(decimal.RequireFromString("100")))
}

func TestInitializePaymentChargesStoredAmount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	hs := env.createHostel(t)
	require.NoError(t, hs.EnablePartialPayment(nil))
	require.NoError(t, env.hostelRepo.Update(ctx, hs))
	rm := env.createRoom(t, hs.ID(), "1000")
	env.createActiveYear(t)
	env.createProfile(t, 1, "ada@example.com")

	mock := gateway.NewMockGateway()
	uc := newInitializeUseCase(env, mock)

	// Sub-cent input rounds on creation; the gateway must be asked for the
	// rounded figure or verification would reject the charge forever.
	result, err := uc.Execute(ctx, InitializePaymentCommand{
		UserID: 1,
		RoomID: rm.ID(),
		Amount: decimal.RequireFromString("100.005"),
	})
	require.NoError(t, err)

	rounded := decimal.RequireFromString("100.01")
	require.Len(t, mock.InitializeCalls, 1)
	assert.True(t, mock.InitializeCalls[0].Amount.Equal(rounded), "charged: %s", mock.InitializeCalls[0].Amount)
	assert.True(t, result.Amount.Equal(rounded), "result: %s", result.Amount)

	p, err := env.paymentRepo.GetByReference(ctx, result.Reference)
	require.NoError(t, err)
	assert.True(t, p.Amount().Equal(rounded))
}

func TestInitializePaymentRequiresFullPaymentWhenPartialDisabled(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	hs := env.createHostel(t)
	rm := env.createRoom(t, hs.ID(), "1000")
	env.createActiveYear(t)
	env.createProfile(t, 1, "ada@example.com")

	uc := newInitializeUseCase(env, gateway.NewMockGateway())

	_, err := uc.Execute(ctx, InitializePaymentCommand{
		UserID: 1,
		RoomID: rm.ID(),
		Amount: decimal.RequireFromString("500"),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestInitializePaymentRejectsAmountAboveRoomPrice(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	hs := env.createHostel(t)
	rm := env.createRoom(t, hs.ID(), "1000")
	env.createActiveYear(t)
	env.createProfile(t, 1, "ada@example.com")

	uc := newInitializeUseCase(env, gateway.NewMockGateway())

	_, err := uc.Execute(ctx, InitializePaymentCommand{
		UserID: 1,
		RoomID: rm.ID(),
		Amount: decimal.RequireFromString("1100"),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}
