package mappers

import (
	"encoding/json"
	"fmt"

	"hostelhub/internal/domain/payment"
	vo "hostelhub/internal/domain/payment/valueobjects"
	"hostelhub/internal/infrastructure/persistence/models"
)

func PaymentToModel(p *payment.Payment) (*models.PaymentModel, error) {
	model := &models.PaymentModel{
		ID:                   p.ID(),
		Reference:            p.Reference(),
		Amount:               p.Amount(),
		AmountPaid:           p.AmountPaid(),
		BalanceOwed:          p.BalanceOwed(),
		Purpose:              p.Purpose().String(),
		Method:               p.PaymentMethod().String(),
		Status:               p.Status().String(),
		RoomID:               p.RoomID(),
		HostelID:             p.HostelID(),
		CalendarYearID:       p.CalendarYearID(),
		ResidentProfileID:    p.ResidentProfileID(),
		HistoricalResidentID: p.HistoricalResidentID(),
		GatewayTransactionID: p.GatewayTransactionID(),
		Channel:              p.Channel(),
		PaidAt:               p.PaidAt(),
		CancelReason:         p.CancelReason(),
		CreatedAt:            p.CreatedAt(),
		UpdatedAt:            p.UpdatedAt(),
	}

	if label := p.ReconciliationLabel(); label != nil {
		s := label.String()
		model.ReconciliationLabel = &s
	}

	if len(p.Metadata()) > 0 {
		raw, err := json.Marshal(p.Metadata())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payment metadata: %w", err)
		}
		model.Metadata = raw
	}

	return model, nil
}

func PaymentToDomain(model *models.PaymentModel) (*payment.Payment, error) {
	status := vo.PaymentStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid payment status: %s", model.Status)
	}

	purpose := vo.PaymentPurpose(model.Purpose)
	if !purpose.IsValid() {
		return nil, fmt.Errorf("invalid payment purpose: %s", model.Purpose)
	}

	method := vo.PaymentMethod(model.Method)
	if !method.IsValid() {
		return nil, fmt.Errorf("invalid payment method: %s", model.Method)
	}

	var metadata map[string]interface{}
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal payment metadata: %w", err)
		}
	}
	if metadata == nil {
		metadata = make(map[string]interface{})
	}

	var label *vo.ReconciliationLabel
	if model.ReconciliationLabel != nil {
		l := vo.ReconciliationLabel(*model.ReconciliationLabel)
		label = &l
	}

	return payment.ReconstructPayment(
		model.ID,
		model.Reference,
		model.Amount, model.AmountPaid, model.BalanceOwed,
		purpose,
		method,
		status,
		model.RoomID, model.HostelID, model.CalendarYearID,
		model.ResidentProfileID, model.HistoricalResidentID,
		model.GatewayTransactionID, model.Channel,
		model.PaidAt,
		label,
		model.CancelReason,
		metadata,
		model.CreatedAt, model.UpdatedAt,
	), nil
}

func WebhookEventToModel(e *payment.WebhookEvent) *models.WebhookEventModel {
	return &models.WebhookEventModel{
		ID:        e.ID,
		EventType: e.EventType,
		Reference: e.Reference,
		Payload:   e.Payload,
		Processed: e.Processed,
		CreatedAt: e.CreatedAt,
	}
}

func WebhookEventToDomain(model *models.WebhookEventModel) *payment.WebhookEvent {
	return &payment.WebhookEvent{
		ID:        model.ID,
		EventType: model.EventType,
		Reference: model.Reference,
		Payload:   model.Payload,
		Processed: model.Processed,
		CreatedAt: model.CreatedAt,
	}
}
