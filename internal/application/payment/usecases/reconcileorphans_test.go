package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelhub/internal/domain/payment"
	vo "hostelhub/internal/domain/payment/valueobjects"
	"hostelhub/internal/domain/resident"
	"hostelhub/internal/domain/room"
	"hostelhub/internal/infrastructure/persistence/models"
	"hostelhub/internal/shared/id"
)

func newReconcileUseCase(env *testEnv) *ReconcileOrphanedPaymentsUseCase {
	return NewReconcileOrphanedPaymentsUseCase(
		env.txManager, env.paymentRepo, env.residentRepo, env.historicalRepo, testLogger(),
	)
}

// createOrphan persists a confirmed payment with no resident link and the
// given metadata email (empty for none).
func (e *testEnv) createOrphan(t *testing.T, reference, amount string, roomID, hostelID, yearID uint, email string) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(reference, decimal.RequireFromString(amount), "booking", roomID, hostelID, yearID)
	require.NoError(t, err)
	if email != "" {
		p.SetMetadata("customer_email", email)
	}
	require.NoError(t, e.paymentRepo.Create(context.Background(), p))
	require.NoError(t, p.MarkAsConfirmed("card", "txn_"+reference, time.Now().UTC()))
	require.NoError(t, e.paymentRepo.Update(context.Background(), p))
	return p
}

func TestReconcileLinksByEmailToActiveResident(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	hs := env.createHostel(t)
	rm := env.createRoom(t, hs.ID(), "1000")
	year := env.createActiveYear(t)

	// The payer lives in another room, so only the email rule can match.
	profile := env.createProfile(t, 1, "ada@example.com")
	other, err := room.NewRoom(hs.ID(), "B-202", decimal.RequireFromString("1000"), 4)
	require.NoError(t, err)
	require.NoError(t, env.roomRepo.Create(ctx, other))
	require.NoError(t, profile.AssignRoom(other.ID(), hs.ID(), year.ID(), id.MustNewAccessCode(), year.EndDate()))
	require.NoError(t, env.residentRepo.Update(ctx, profile))

	env.createOrphan(t, "ref_email", "700", rm.ID(), hs.ID(), year.ID(), "ada@example.com")

	result, err := newReconcileUseCase(env).Execute(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Scanned)
	assert.Equal(t, 1, result.LinkedToResident)
	assert.Equal(t, 0, result.Failed)

	reloaded, err := env.paymentRepo.GetByReference(ctx, "ref_email")
	require.NoError(t, err)
	require.NotNil(t, reloaded.ResidentProfileID())
	assert.Equal(t, profile.ID(), *reloaded.ResidentProfileID())
	require.NotNil(t, reloaded.ReconciliationLabel())
	assert.Equal(t, vo.ReconciliationLinkedToResident, *reloaded.ReconciliationLabel())
}

func TestReconcileLinksBySoleRoomOccupant(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	hs := env.createHostel(t)
	rm := env.createRoom(t, hs.ID(), "1000")
	year := env.createActiveYear(t)

	occupant := env.createProfile(t, 1, "occupant@example.com")
	code := id.MustNewAccessCode()
	require.NoError(t, occupant.AssignRoom(rm.ID(), hs.ID(), year.ID(), code, year.EndDate()))
	require.NoError(t, env.residentRepo.Update(ctx, occupant))

	// Payer email does not match anyone, but the room has exactly one
	// active occupant for the year.
	env.createOrphan(t, "ref_occupant", "700", rm.ID(), hs.ID(), year.ID(), "typo@example.com")

	result, err := newReconcileUseCase(env).Execute(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, result.LinkedToResident)

	reloaded, err := env.paymentRepo.GetByReference(ctx, "ref_occupant")
	require.NoError(t, err)
	require.NotNil(t, reloaded.ResidentProfileID())
	assert.Equal(t, occupant.ID(), *reloaded.ResidentProfileID())
}

func TestReconcileLinksToHistoricalResident(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	hs := env.createHostel(t)
	rm := env.createRoom(t, hs.ID(), "1000")
	year := env.createActiveYear(t)

	now := time.Now().UTC()
	historical := &resident.HistoricalResident{
		ProfileID:      42,
		UserID:         7,
		FullName:       "Chidi Okeke",
		Email:          "chidi@example.com",
		Phone:          "08031111111",
		RoomID:         rm.ID(),
		HostelID:       hs.ID(),
		CalendarYearID: year.ID(),
		CheckedOutAt:   now.AddDate(0, -2, 0),
		ArchivedAt:     now.AddDate(0, -2, 0),
	}
	require.NoError(t, env.historicalRepo.Create(ctx, historical))

	env.createOrphan(t, "ref_hist", "700", rm.ID(), hs.ID(), year.ID(), "chidi@example.com")

	result, err := newReconcileUseCase(env).Execute(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, result.LinkedToHistorical)

	reloaded, err := env.paymentRepo.GetByReference(ctx, "ref_hist")
	require.NoError(t, err)
	require.NotNil(t, reloaded.HistoricalResidentID())
	assert.Equal(t, historical.ID, *reloaded.HistoricalResidentID())
	require.NotNil(t, reloaded.ReconciliationLabel())
	assert.Equal(t, vo.ReconciliationLinkedToHistorical, *reloaded.ReconciliationLabel())
}

func TestReconcileCancelsDuplicateCharge(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	hs := env.createHostel(t)
	rm := env.createRoom(t, hs.ID(), "1000")
	year := env.createActiveYear(t)
	profile := env.createProfile(t, 1, "owner@example.com")

	// The legitimate charge is linked; the orphan is its double.
	ownerID := profile.ID()
	env.createConfirmedPayment(t, "ref_original", "700", rm.ID(), hs.ID(), year.ID(), &ownerID)
	env.createOrphan(t, "ref_double", "700", rm.ID(), hs.ID(), year.ID(), "")

	result, err := newReconcileUseCase(env).Execute(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, result.DuplicatesRemoved)

	reloaded, err := env.paymentRepo.GetByReference(ctx, "ref_double")
	require.NoError(t, err)
	assert.Equal(t, vo.PaymentStatusCancelled, reloaded.Status())
	require.NotNil(t, reloaded.ReconciliationLabel())
	assert.Equal(t, vo.ReconciliationDeleted, *reloaded.ReconciliationLabel())

	original, err := env.paymentRepo.GetByReference(ctx, "ref_original")
	require.NoError(t, err)
	assert.Equal(t, vo.PaymentStatusConfirmed, original.Status())
}

func TestReconcileMarksStaleOrphanInvalid(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	hs := env.createHostel(t)
	rm := env.createRoom(t, hs.ID(), "1000")
	year := env.createActiveYear(t)

	env.createOrphan(t, "ref_stale", "700", rm.ID(), hs.ID(), year.ID(), "")

	// Backdate past the stale cutoff.
	old := time.Now().UTC().AddDate(0, -7, 0)
	err := env.db.Model(&models.PaymentModel{}).
		Where("reference = ?", "ref_stale").
		Update("created_at", old).Error
	require.NoError(t, err)

	result, err := newReconcileUseCase(env).Execute(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, result.MarkedInvalid)

	reloaded, err := env.paymentRepo.GetByReference(ctx, "ref_stale")
	require.NoError(t, err)
	assert.Equal(t, vo.PaymentStatusCancelled, reloaded.Status())
	require.NotNil(t, reloaded.ReconciliationLabel())
	assert.Equal(t, vo.ReconciliationMarkedInvalid, *reloaded.ReconciliationLabel())
}

func TestReconcileCancelsStalePendingPayment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	hs := env.createHostel(t)
	rm := env.createRoom(t, hs.ID(), "1000")
	year := env.createActiveYear(t)

	stale, err := payment.NewPayment("ref_abandoned", decimal.RequireFromString("700"), "booking", rm.ID(), hs.ID(), year.ID())
	require.NoError(t, err)
	require.NoError(t, env.paymentRepo.Create(ctx, stale))

	fresh, err := payment.NewPayment("ref_in_flight", decimal.RequireFromString("700"), "booking", rm.ID(), hs.ID(), year.ID())
	require.NoError(t, err)
	require.NoError(t, env.paymentRepo.Create(ctx, fresh))

	// Backdate past the stale cutoff.
	old := time.Now().UTC().AddDate(0, -7, 0)
	err = env.db.Model(&models.PaymentModel{}).
		Where("reference = ?", "ref_abandoned").
		Update("created_at", old).Error
	require.NoError(t, err)

	result, err := newReconcileUseCase(env).Execute(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, result.StalePending)
	assert.Equal(t, 0, result.Failed)

	reloaded, err := env.paymentRepo.GetByReference(ctx, "ref_abandoned")
	require.NoError(t, err)
	assert.Equal(t, vo.PaymentStatusCancelled, reloaded.Status())
	require.NotNil(t, reloaded.ReconciliationLabel())
	assert.Equal(t, vo.ReconciliationMarkedInvalid, *reloaded.ReconciliationLabel())
	require.NotNil(t, reloaded.CancelReason())

	// A pending payment inside the window can still be confirmed.
	inFlight, err := env.paymentRepo.GetByReference(ctx, "ref_in_flight")
	require.NoError(t, err)
	assert.True(t, inFlight.Status().IsPending())
}

func TestReconcileCancelsUnmatchedOrphan(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	hs := env.createHostel(t)
	rm := env.createRoom(t, hs.ID(), "1000")
	year := env.createActiveYear(t)

	env.createOrphan(t, "ref_nomatch", "700", rm.ID(), hs.ID(), year.ID(), "stranger@example.com")

	result, err := newReconcileUseCase(env).Execute(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Scanned)
	assert.Equal(t, 1, result.Cancelled)
	assert.Equal(t, 0, result.LinkedToResident)

	reloaded, err := env.paymentRepo.GetByReference(ctx, "ref_nomatch")
	require.NoError(t, err)
	assert.Equal(t, vo.PaymentStatusCancelled, reloaded.Status())
	require.NotNil(t, reloaded.ReconciliationLabel())
	assert.Equal(t, vo.ReconciliationCancelled, *reloaded.ReconciliationLabel())
	require.NotNil(t, reloaded.CancelReason())
}

func TestReconcileRulesRunInOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	hs := env.createHostel(t)
	rm := env.createRoom(t, hs.ID(), "1000")
	year := env.createActiveYear(t)

	// Email matches an active profile in another room AND the paid-for room
	// has a sole occupant; the email rule must win.
	emailMatch := env.createProfile(t, 1, "ada@example.com")
	other, err := room.NewRoom(hs.ID(), "B-202", decimal.RequireFromString("1000"), 4)
	require.NoError(t, err)
	require.NoError(t, env.roomRepo.Create(ctx, other))
	require.NoError(t, emailMatch.AssignRoom(other.ID(), hs.ID(), year.ID(), id.MustNewAccessCode(), year.EndDate()))
	require.NoError(t, env.residentRepo.Update(ctx, emailMatch))

	occupant := env.createProfile(t, 2, "occupant@example.com")
	code := id.MustNewAccessCode()
	require.NoError(t, occupant.AssignRoom(rm.ID(), hs.ID(), year.ID(), code, year.EndDate()))
	require.NoError(t, env.residentRepo.Update(ctx, occupant))

	env.createOrphan(t, "ref_order", "700", rm.ID(), hs.ID(), year.ID(), "ada@example.com")

	_, err = newReconcileUseCase(env).Execute(ctx)
	require.NoError(t, err)

	reloaded, err := env.paymentRepo.GetByReference(ctx, "ref_order")
	require.NoError(t, err)
	require.NotNil(t, reloaded.ResidentProfileID())
	assert.Equal(t, emailMatch.ID(), *reloaded.ResidentProfileID())
}
