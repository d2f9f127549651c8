package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"hostelhub/internal/domain/payment"
	"hostelhub/internal/infrastructure/persistence/models"
)

func setupPaymentTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.PaymentModel{}, &models.WebhookEventModel{}))
	return db
}

func createPendingPayment(t *testing.T, repo payment.PaymentRepository, reference, amount string) *payment.Payment {
	t.Helper()

	p, err := payment.NewPayment(reference, decimal.RequireFromString(amount), "booking", 1, 1, 1)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestPaymentRepository_ClaimForConfirmation(t *testing.T) {
	db := setupPaymentTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	createPendingPayment(t, repo, "ref_claim", "700")

	claimed, err := repo.ClaimForConfirmation(ctx, "ref_claim")
	require.NoError(t, err)
	assert.True(t, claimed)

	// The second claim loses the compare-and-set.
	claimed, err = repo.ClaimForConfirmation(ctx, "ref_claim")
	require.NoError(t, err)
	assert.False(t, claimed)

	reloaded, err := repo.GetByReference(ctx, "ref_claim")
	require.NoError(t, err)
	assert.True(t, reloaded.Status().IsConfirmed())
}

func TestPaymentRepository_ClaimForConfirmationUnknownReference(t *testing.T) {
	db := setupPaymentTestDB(t)
	repo := NewPaymentRepository(db)

	claimed, err := repo.ClaimForConfirmation(context.Background(), "ref_missing")
	require.NoError(t, err)
	assert.False(t, claimed)
}

func TestPaymentRepository_GetStalePending(t *testing.T) {
	db := setupPaymentTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	createPendingPayment(t, repo, "ref_old_pending", "700")
	createPendingPayment(t, repo, "ref_new_pending", "700")

	// Confirmed rows never count, however old.
	confirmed := createPendingPayment(t, repo, "ref_old_confirmed", "700")
	require.NoError(t, confirmed.MarkAsConfirmed("card", "txn_1", time.Now().UTC()))
	require.NoError(t, repo.Update(ctx, confirmed))

	old := time.Now().UTC().AddDate(0, -7, 0)
	for _, ref := range []string{"ref_old_pending", "ref_old_confirmed"} {
		err := db.Model(&models.PaymentModel{}).
			Where("reference = ?", ref).
			Update("created_at", old).Error
		require.NoError(t, err)
	}

	stale, err := repo.GetStalePending(ctx, time.Now().UTC().AddDate(0, -6, 0))
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, "ref_old_pending", stale[0].Reference())
}

func TestPaymentRepository_GetOrphaned(t *testing.T) {
	db := setupPaymentTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	// Confirmed with no resident link: an orphan.
	orphan := createPendingPayment(t, repo, "ref_orphan", "700")
	require.NoError(t, orphan.MarkAsConfirmed("card", "txn_1", time.Now().UTC()))
	require.NoError(t, repo.Update(ctx, orphan))

	// Confirmed and linked: not an orphan.
	linked := createPendingPayment(t, repo, "ref_linked", "700")
	require.NoError(t, linked.LinkResidentProfile(5))
	require.NoError(t, linked.MarkAsConfirmed("card", "txn_2", time.Now().UTC()))
	require.NoError(t, repo.Update(ctx, linked))

	// Still pending: not an orphan.
	createPendingPayment(t, repo, "ref_pending", "700")

	orphans, err := repo.GetOrphaned(ctx)
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	assert.Equal(t, "ref_orphan", orphans[0].Reference())
}

func TestPaymentRepository_SumConfirmedByResidentAndYear(t *testing.T) {
	db := setupPaymentTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	profileID := uint(9)

	confirm := func(reference, amount string, yearID uint) {
		p, err := payment.NewPayment(reference, decimal.RequireFromString(amount), "booking", 1, 1, yearID)
		require.NoError(t, err)
		require.NoError(t, p.LinkResidentProfile(profileID))
		require.NoError(t, repo.Create(ctx, p))
		require.NoError(t, p.MarkAsConfirmed("card", "txn_"+reference, time.Now().UTC()))
		require.NoError(t, repo.Update(ctx, p))
	}

	confirm("ref_a", "400", 1)
	confirm("ref_b", "250.50", 1)
	confirm("ref_other_year", "999", 2)

	// Pending rows never count toward the total.
	pending, err := payment.NewPayment("ref_pending", decimal.RequireFromString("100"), "topup", 1, 1, 1)
	require.NoError(t, err)
	require.NoError(t, pending.LinkResidentProfile(profileID))
	require.NoError(t, repo.Create(ctx, pending))

	total, err := repo.SumConfirmedByResidentAndYear(ctx, profileID, 1)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("650.50")), "total: %s", total)
}

func TestPaymentRepository_SumConfirmedReturnsZeroWithoutRows(t *testing.T) {
	db := setupPaymentTestDB(t)
	repo := NewPaymentRepository(db)

	total, err := repo.SumConfirmedByResidentAndYear(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestPaymentRepository_FindDuplicateConfirmed(t *testing.T) {
	db := setupPaymentTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	original := createPendingPayment(t, repo, "ref_original", "700")
	require.NoError(t, original.MarkAsConfirmed("card", "txn_o", time.Now().UTC()))
	require.NoError(t, repo.Update(ctx, original))

	double := createPendingPayment(t, repo, "ref_double", "700")
	require.NoError(t, double.MarkAsConfirmed("card", "txn_d", time.Now().UTC()))
	require.NoError(t, repo.Update(ctx, double))

	match, err := repo.FindDuplicateConfirmed(ctx, double, 5*time.Minute)
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "ref_original", match.Reference())

	// A different amount is not a duplicate.
	other := createPendingPayment(t, repo, "ref_other", "300")
	require.NoError(t, other.MarkAsConfirmed("card", "txn_x", time.Now().UTC()))
	require.NoError(t, repo.Update(ctx, other))

	match, err = repo.FindDuplicateConfirmed(ctx, other, 5*time.Minute)
	require.NoError(t, err)
	assert.Nil(t, match)
}

func TestPaymentRepository_UpdatePersistsClearedLinks(t *testing.T) {
	db := setupPaymentTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	p := createPendingPayment(t, repo, "ref_links", "700")
	require.NoError(t, p.LinkResidentProfile(3))
	require.NoError(t, repo.Update(ctx, p))

	// Relinking to a historical resident clears the profile link; the
	// cleared column must round-trip as NULL.
	require.NoError(t, p.LinkHistoricalResident(8))
	require.NoError(t, repo.Update(ctx, p))

	reloaded, err := repo.GetByReference(ctx, "ref_links")
	require.NoError(t, err)
	assert.Nil(t, reloaded.ResidentProfileID())
	require.NotNil(t, reloaded.HistoricalResidentID())
	assert.Equal(t, uint(8), *reloaded.HistoricalResidentID())
}

func TestWebhookEventRepository_CreateAndList(t *testing.T) {
	db := setupPaymentTestDB(t)
	repo := NewWebhookEventRepository(db)
	ctx := context.Background()

	event := payment.NewWebhookEvent("charge.success", "ref_hook", []byte(`{"event":"charge.success"}`))
	event.MarkProcessed()
	require.NoError(t, repo.Create(ctx, event))
	assert.NotZero(t, event.ID)

	events, total, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, events, 1)
	assert.Equal(t, "charge.success", events[0].EventType)
	assert.Equal(t, "ref_hook", events[0].Reference)
	assert.True(t, events[0].Processed)
}
