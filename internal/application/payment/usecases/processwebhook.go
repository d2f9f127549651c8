package usecases

import (
	"context"
	"encoding/json"

	"hostelhub/internal/application/payment/gateway"
	"hostelhub/internal/domain/payment"
	apperrors "hostelhub/internal/shared/errors"
	"hostelhub/internal/shared/logger"
)

const webhookEventChargeSuccess = "charge.success"

// ProcessWebhookUseCase handles gateway webhook deliveries. The signature
// is checked over the raw body before anything is parsed; every verified
// delivery is written to the audit table, known or not.
type ProcessWebhookUseCase struct {
	gateway     gateway.Gateway
	webhookRepo payment.WebhookEventRepository
	confirmUC   *ConfirmPaymentUseCase
	logger      logger.Interface
}

func NewProcessWebhookUseCase(
	gw gateway.Gateway,
	webhookRepo payment.WebhookEventRepository,
	confirmUC *ConfirmPaymentUseCase,
	logger logger.Interface,
) *ProcessWebhookUseCase {
	return &ProcessWebhookUseCase{
		gateway:     gw,
		webhookRepo: webhookRepo,
		confirmUC:   confirmUC,
		logger:      logger,
	}
}

type ProcessWebhookCommand struct {
	Payload   []byte
	Signature string
}

type ProcessWebhookResult struct {
	EventType string `json:"event_type"`
	Reference string `json:"reference,omitempty"`
	Processed bool   `json:"processed"`
}

type webhookEnvelope struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
	} `json:"data"`
}

func (uc *ProcessWebhookUseCase) Execute(ctx context.Context, cmd ProcessWebhookCommand) (*ProcessWebhookResult, error) {
	if !uc.gateway.VerifyWebhookSignature(cmd.Payload, cmd.Signature) {
		uc.logger.Warnw("webhook signature verification failed")
		return nil, apperrors.NewUnauthorizedError("invalid webhook signature")
	}

	var envelope webhookEnvelope
	if err := json.Unmarshal(cmd.Payload, &envelope); err != nil {
		return nil, apperrors.NewValidationError("malformed webhook payload", err.Error())
	}

	event := payment.NewWebhookEvent(envelope.Event, envelope.Data.Reference, cmd.Payload)
	result := &ProcessWebhookResult{
		EventType: envelope.Event,
		Reference: envelope.Data.Reference,
	}

	if envelope.Event != webhookEventChargeSuccess {
		uc.logger.Infow("ignoring webhook event", "event", envelope.Event)
		uc.persistEvent(ctx, event)
		return result, nil
	}

	_, err := uc.confirmUC.Execute(ctx, ConfirmPaymentCommand{Reference: envelope.Data.Reference})
	switch {
	case err == nil:
		event.MarkProcessed()
		result.Processed = true
	case apperrors.IsNotFoundError(err):
		// Payment rows can lag behind the gateway; acknowledge and let the
		// reconciliation sweep pick it up later.
		uc.logger.Warnw("webhook for unknown payment reference", "reference", envelope.Data.Reference)
	case apperrors.IsValidationError(err):
		uc.logger.Warnw("webhook payment failed validation", "reference", envelope.Data.Reference, "error", err)
	default:
		uc.persistEvent(ctx, event)
		return nil, err
	}

	uc.persistEvent(ctx, event)
	return result, nil
}

func (uc *ProcessWebhookUseCase) persistEvent(ctx context.Context, event *payment.WebhookEvent) {
	if err := uc.webhookRepo.Create(ctx, event); err != nil {
		uc.logger.Errorw("failed to store webhook event", "event", event.EventType, "error", err)
	}
}
