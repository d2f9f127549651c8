package payment

import (
	"time"

	"hostelhub/internal/shared/biztime"
)

// WebhookEvent is an audit record of a raw gateway webhook delivery.
// Every delivery that passes signature verification is stored, including
// events for unknown references, so support can replay disputes.
type WebhookEvent struct {
	ID        uint
	EventType string
	Reference string
	Payload   []byte
	Processed bool
	CreatedAt time.Time
}

func NewWebhookEvent(eventType, reference string, payload []byte) *WebhookEvent {
	return &WebhookEvent{
		EventType: eventType,
		Reference: reference,
		Payload:   payload,
		CreatedAt: biztime.NowUTC(),
	}
}

func (e *WebhookEvent) MarkProcessed() {
	e.Processed = true
}
