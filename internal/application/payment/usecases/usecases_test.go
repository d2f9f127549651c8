package usecases

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	appPayment "hostelhub/internal/application/payment"
	"hostelhub/internal/domain/calendaryear"
	"hostelhub/internal/domain/hostel"
	"hostelhub/internal/domain/payment"
	"hostelhub/internal/domain/resident"
	"hostelhub/internal/domain/room"
	"hostelhub/internal/infrastructure/persistence/models"
	"hostelhub/internal/infrastructure/repository"
	shareddb "hostelhub/internal/shared/db"
	"hostelhub/internal/shared/logger"
)

type testEnv struct {
	db             *gorm.DB
	txManager      *shareddb.TransactionManager
	paymentRepo    payment.PaymentRepository
	webhookRepo    payment.WebhookEventRepository
	residentRepo   resident.ResidentProfileRepository
	historicalRepo resident.HistoricalResidentRepository
	roomRepo       room.RoomRepository
	hostelRepo     hostel.HostelRepository
	yearRepo       calendaryear.CalendarYearRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = gdb.AutoMigrate(
		&models.UserModel{},
		&models.HostelModel{},
		&models.CalendarYearModel{},
		&models.RoomModel{},
		&models.ResidentProfileModel{},
		&models.HistoricalResidentModel{},
		&models.PaymentModel{},
		&models.WebhookEventModel{},
	)
	require.NoError(t, err)

	return &testEnv{
		db:             gdb,
		txManager:      shareddb.NewTransactionManager(gdb),
		paymentRepo:    repository.NewPaymentRepository(gdb),
		webhookRepo:    repository.NewWebhookEventRepository(gdb),
		residentRepo:   repository.NewResidentProfileRepository(gdb),
		historicalRepo: repository.NewHistoricalResidentRepository(gdb),
		roomRepo:       repository.NewRoomRepository(gdb),
		hostelRepo:     repository.NewHostelRepository(gdb),
		yearRepo:       repository.NewCalendarYearRepository(gdb),
	}
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}

func (e *testEnv) createHostel(t *testing.T) *hostel.Hostel {
	t.Helper()
	hs, err := hostel.NewHostel("Unity Hall", "1 Campus Road", hostel.GenderMixed)
	require.NoError(t, err)
	require.NoError(t, e.hostelRepo.Create(context.Background(), hs))
	return hs
}

func (e *testEnv) createRoom(t *testing.T, hostelID uint, price string) *room.Room {
	t.Helper()
	rm, err := room.NewRoom(hostelID, "A-101", decimal.RequireFromString(price), 4)
	require.NoError(t, err)
	require.NoError(t, e.roomRepo.Create(context.Background(), rm))
	return rm
}

func (e *testEnv) createActiveYear(t *testing.T) *calendaryear.CalendarYear {
	t.Helper()
	start := time.Now().UTC().AddDate(0, -1, 0)
	year, err := calendaryear.NewCalendarYear("2026/2027", start, start.AddDate(1, 0, 0))
	require.NoError(t, err)
	year.Activate()
	require.NoError(t, e.yearRepo.Create(context.Background(), year))
	return year
}

func (e *testEnv) createProfile(t *testing.T, userID uint, email string) *resident.ResidentProfile {
	t.Helper()
	profile, err := resident.NewResidentProfile(userID, "Ada Obi", email, "08030000000", "female")
	require.NoError(t, err)
	require.NoError(t, e.residentRepo.Create(context.Background(), profile))
	return profile
}

// createConfirmedPayment persists a confirmed payment, optionally linked to
// a resident profile. Unlinked ones are exactly what the orphan sweep scans.
func (e *testEnv) createConfirmedPayment(t *testing.T, reference, amount string, roomID, hostelID, yearID uint, profileID *uint) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(reference, decimal.RequireFromString(amount), "booking", roomID, hostelID, yearID)
	require.NoError(t, err)
	if profileID != nil {
		require.NoError(t, p.LinkResidentProfile(*profileID))
	}
	require.NoError(t, e.paymentRepo.Create(context.Background(), p))
	require.NoError(t, p.MarkAsConfirmed("card", "txn_"+reference, time.Now().UTC()))
	require.NoError(t, e.paymentRepo.Update(context.Background(), p))
	return p
}

// recordingNotifier captures notifications without sending anything. Safe
// for the fire-and-forget goroutines the confirm flow uses.
type recordingNotifier struct {
	mu       sync.Mutex
	bookings []appPayment.BookingNotification
	codes    []string
	receipts []appPayment.TopUpNotification
}

func (n *recordingNotifier) SendBookingConfirmation(_ context.Context, b appPayment.BookingNotification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.bookings = append(n.bookings, b)
	return nil
}

func (n *recordingNotifier) SendAccessCode(_ context.Context, _, _, code string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.codes = append(n.codes, code)
	return nil
}

func (n *recordingNotifier) SendTopUpReceipt(_ context.Context, r appPayment.TopUpNotification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.receipts = append(n.receipts, r)
	return nil
}
