// Package scheduler runs background jobs with gocron v2.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	paymentUsecases "hostelhub/internal/application/payment/usecases"
	"hostelhub/internal/shared/biztime"
	"hostelhub/internal/shared/config"
	"hostelhub/internal/shared/logger"
)

// SchedulerManager owns the single gocron scheduler instance and all
// registered jobs.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterReconcileJob schedules the orphaned payment sweep. Singleton mode
// guarantees two sweeps never overlap even when one run overshoots the
// interval.
func (m *SchedulerManager) RegisterReconcileJob(
	reconcile *paymentUsecases.ReconcileOrphanedPaymentsUseCase,
	cfg *config.SchedulerConfig,
) error {
	interval := time.Duration(cfg.ReconcileIntervalHours) * time.Hour
	if interval <= 0 {
		interval = 6 * time.Hour
	}

	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()
			m.runReconcile(ctx, reconcile)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("payment", "reconcile"),
		gocron.WithName("orphaned-payment-reconciler"),
	)
	if err != nil {
		return fmt.Errorf("failed to register reconcile job: %w", err)
	}

	m.logger.Infow("registered orphaned payment reconcile job", "interval", interval)
	return nil
}

func (m *SchedulerManager) runReconcile(ctx context.Context, reconcile *paymentUsecases.ReconcileOrphanedPaymentsUseCase) {
	startTime := biztime.NowUTC()

	result, err := reconcile.Execute(ctx)
	if err != nil {
		m.logger.Errorw("orphaned payment sweep failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if result.Scanned == 0 {
		m.logger.Debugw("no orphaned payments to reconcile",
			"duration", time.Since(startTime),
		)
		return
	}

	m.logger.Infow("orphaned payment sweep completed",
		"scanned", result.Scanned,
		"linked_to_resident", result.LinkedToResident,
		"linked_to_historical", result.LinkedToHistorical,
		"duplicates_removed", result.DuplicatesRemoved,
		"marked_invalid", result.MarkedInvalid,
		"cancelled", result.Cancelled,
		"failed", result.Failed,
		"duration", time.Since(startTime),
	)
}

// Start begins executing registered jobs. Safe to call once.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		m.logger.Warnw("scheduler already started")
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Info("scheduler started")
}

// Stop shuts the scheduler down and waits for running jobs to finish.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	if err := m.scheduler.Shutdown(); err != nil {
		return fmt.Errorf("failed to shut down scheduler: %w", err)
	}

	m.started = false
	m.logger.Info("scheduler stopped")
	return nil
}
