package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WebhookEvent stores one inbound payment-provider notification with the
// full raw payload as the audit record. Append-only apart from the
// processed flag, so there is no updated_at column.
type WebhookEvent struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Source               string     `gorm:"type:varchar(50);not null;index:ix_webhook_events_source_event,priority:1" json:"source" validate:"required,max=50"`
	EventType            string     `gorm:"type:varchar(100);not null;index:ix_webhook_events_source_event,priority:2" json:"event_type" validate:"required,max=100"`
	RawPayloadJSON       string     `gorm:"type:jsonb;not null" json:"raw_payload_json" validate:"required"`
	XenditSubscriptionID string     `gorm:"type:varchar(255);index" json:"xendit_subscription_id"`
	XenditInvoiceID      string     `gorm:"type:varchar(255);index" json:"xendit_invoice_id"`
	Processed            bool       `gorm:"not null;default:false;index" json:"processed"`
	ProcessedAt          *time.Time `json:"processed_at,omitempty"`
	CreatedAt            time.Time  `gorm:"not null;default:now();autoCreateTime:false" json:"created_at"`
}

func (w *WebhookEvent) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

func (w *WebhookEvent) Validate() error {
	v := validator.New()

	return v.Struct(w)
}

// MarkProcessed flags the event as handled and stamps processed_at with
// the given time, or the current time when nil. Calling it again
// overwrites processed_at with the later value; deduplication is the
// caller's job.
func (w *WebhookEvent) MarkProcessed(at *time.Time) {
	w.Processed = true
	if at != nil {
		w.ProcessedAt = at
		return
	}
	now := time.Now().UTC()
	w.ProcessedAt = &now
}
