package usecases

import (
	"context"
	"time"

	"hostelhub/internal/domain/payment"
	vo "hostelhub/internal/domain/payment/valueobjects"
	"hostelhub/internal/domain/resident"
	"hostelhub/internal/shared/db"
	apperrors "hostelhub/internal/shared/errors"
	"hostelhub/internal/shared/logger"
)

const (
	// duplicateWindow bounds how far apart two confirmed payments with the
	// same amount, room and year can be and still count as one double charge.
	duplicateWindow = 5 * time.Minute

	// staleOrphanAge is how old an unmatched or still-pending payment must
	// be before the sweep gives up and marks it invalid.
	staleOrphanAge = 6 * 30 * 24 * time.Hour
)

// ReconcileOrphanedPaymentsUseCase links confirmed payments that lost their
// resident association. Rules run in order, first match wins, and each
// payment is fixed in its own transaction so one bad row cannot poison the
// whole sweep.
type ReconcileOrphanedPaymentsUseCase struct {
	txManager      *db.TransactionManager
	paymentRepo    payment.PaymentRepository
	residentRepo   resident.ResidentProfileRepository
	historicalRepo resident.HistoricalResidentRepository
	logger         logger.Interface
}

func NewReconcileOrphanedPaymentsUseCase(
	txManager *db.TransactionManager,
	paymentRepo payment.PaymentRepository,
	residentRepo resident.ResidentProfileRepository,
	historicalRepo resident.HistoricalResidentRepository,
	logger logger.Interface,
) *ReconcileOrphanedPaymentsUseCase {
	return &ReconcileOrphanedPaymentsUseCase{
		txManager:      txManager,
		paymentRepo:    paymentRepo,
		residentRepo:   residentRepo,
		historicalRepo: historicalRepo,
		logger:         logger,
	}
}

type ReconcileResult struct {
	Scanned            int `json:"scanned"`
	LinkedToResident   int `json:"linked_to_resident"`
	LinkedToHistorical int `json:"linked_to_historical"`
	DuplicatesRemoved  int `json:"duplicates_removed"`
	MarkedInvalid      int `json:"marked_invalid"`
	Cancelled          int `json:"cancelled"`
	StalePending       int `json:"stale_pending"`
	Failed             int `json:"failed"`
}

func (uc *ReconcileOrphanedPaymentsUseCase) Execute(ctx context.Context) (*ReconcileResult, error) {
	orphans, err := uc.paymentRepo.GetOrphaned(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load orphaned payments", err.Error())
	}

	result := &ReconcileResult{Scanned: len(orphans)}
	now := time.Now().UTC()

	for _, p := range orphans {
		p := p
		err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
			return uc.reconcileOne(txCtx, p, now, result)
		})
		if err != nil {
			result.Failed++
			uc.logger.Errorw("failed to reconcile payment",
				"reference", p.Reference(),
				"error", err,
			)
		}
	}

	uc.cancelStalePending(ctx, now, result)

	uc.logger.Infow("orphan payment sweep finished",
		"scanned", result.Scanned,
		"linked_to_resident", result.LinkedToResident,
		"linked_to_historical", result.LinkedToHistorical,
		"duplicates_removed", result.DuplicatesRemoved,
		"marked_invalid", result.MarkedInvalid,
		"cancelled", result.Cancelled,
		"stale_pending", result.StalePending,
		"failed", result.Failed,
	)

	return result, nil
}

// cancelStalePending closes out pending payments abandoned at the gateway.
// The confirmation flow only confirms pending rows, so anything this old
// can no longer complete.
func (uc *ReconcileOrphanedPaymentsUseCase) cancelStalePending(ctx context.Context, now time.Time, result *ReconcileResult) {
	stale, err := uc.paymentRepo.GetStalePending(ctx, now.Add(-staleOrphanAge))
	if err != nil {
		result.Failed++
		uc.logger.Errorw("failed to load stale pending payments", "error", err)
		return
	}

	result.Scanned += len(stale)
	for _, p := range stale {
		p := p
		err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
			if err := p.MarkAsCancelled("abandoned before gateway confirmation"); err != nil {
				return err
			}
			p.SetReconciliationLabel(vo.ReconciliationMarkedInvalid)
			return uc.paymentRepo.Update(txCtx, p)
		})
		if err != nil {
			result.Failed++
			uc.logger.Errorw("failed to cancel stale pending payment",
				"reference", p.Reference(),
				"error", err,
			)
			continue
		}
		result.StalePending++
	}
}

func (uc *ReconcileOrphanedPaymentsUseCase) reconcileOne(ctx context.Context, p *payment.Payment, now time.Time, result *ReconcileResult) error {
	email := customerEmail(p)

	// Rule 1: the payer's email matches an active resident profile.
	if email != "" {
		if profile, err := uc.residentRepo.GetByEmail(ctx, email); err == nil && profile.Status().IsActive() {
			if err := p.LinkResidentProfile(profile.ID()); err != nil {
				return err
			}
			p.SetReconciliationLabel(vo.ReconciliationLinkedToResident)
			result.LinkedToResident++
			return uc.paymentRepo.Update(ctx, p)
		}
	}

	// Rule 2: exactly one active resident occupies the paid-for room in the
	// same calendar year.
	occupants, err := uc.residentRepo.GetActiveByRoomAndYear(ctx, p.RoomID(), p.CalendarYearID())
	if err == nil && len(occupants) == 1 {
		if err := p.LinkResidentProfile(occupants[0].ID()); err != nil {
			return err
		}
		p.SetReconciliationLabel(vo.ReconciliationLinkedToResident)
		result.LinkedToResident++
		return uc.paymentRepo.Update(ctx, p)
	}

	// Rule 3: the payer's email matches a checked-out resident.
	if email != "" {
		if historical, err := uc.historicalRepo.GetByEmail(ctx, email); err == nil {
			if err := p.LinkHistoricalResident(historical.ID); err != nil {
				return err
			}
			p.SetReconciliationLabel(vo.ReconciliationLinkedToHistorical)
			result.LinkedToHistorical++
			return uc.paymentRepo.Update(ctx, p)
		}
	}

	// Rule 4: another confirmed payment with the same amount, room and year
	// landed within the duplicate window. This one is a double charge.
	if dup, err := uc.paymentRepo.FindDuplicateConfirmed(ctx, p, duplicateWindow); err == nil && dup != nil {
		if err := p.MarkAsCancelled("duplicate of " + dup.Reference()); err != nil {
			return err
		}
		p.SetReconciliationLabel(vo.ReconciliationDeleted)
		result.DuplicatesRemoved++
		return uc.paymentRepo.Update(ctx, p)
	}

	// Rule 5: old enough that nobody is coming back for it.
	if now.Sub(p.CreatedAt()) > staleOrphanAge {
		if err := p.MarkAsCancelled("unmatched for over six months"); err != nil {
			return err
		}
		p.SetReconciliationLabel(vo.ReconciliationMarkedInvalid)
		result.MarkedInvalid++
		return uc.paymentRepo.Update(ctx, p)
	}

	// Nothing matched. Cancel so the row stops surfacing as an orphan; the
	// audit trail keeps the original gateway data for manual review.
	if err := p.MarkAsCancelled("no matching resident found"); err != nil {
		return err
	}
	p.SetReconciliationLabel(vo.ReconciliationCancelled)
	result.Cancelled++
	return uc.paymentRepo.Update(ctx, p)
}

func customerEmail(p *payment.Payment) string {
	if p.Metadata() == nil {
		return ""
	}
	if v, ok := p.Metadata()["customer_email"].(string); ok {
		return v
	}
	return ""
}
