package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmailDirection distinguishes mail the platform sent from mail it
// received.
type EmailDirection string

const (
	EmailDirectionOutbound EmailDirection = "OUTBOUND"
	EmailDirectionInbound  EmailDirection = "INBOUND"
)

func (d EmailDirection) Valid() bool {
	return d == EmailDirectionOutbound || d == EmailDirectionInbound
}

// EmailRelatedType names the kind of entity an email log is about. The
// related id is interpreted per kind by application code; there is no
// foreign key behind it.
type EmailRelatedType string

const (
	EmailRelatedQuotation      EmailRelatedType = "QUOTATION"
	EmailRelatedInvoiceRequest EmailRelatedType = "INVOICE_REQUEST"
	EmailRelatedClientMail     EmailRelatedType = "CLIENT_MAIL"
	EmailRelatedReminder       EmailRelatedType = "REMINDER"
	EmailRelatedPaymentStatus  EmailRelatedType = "PAYMENT_STATUS"
	EmailRelatedOther          EmailRelatedType = "OTHER"
)

func (t EmailRelatedType) Valid() bool {
	switch t {
	case EmailRelatedQuotation, EmailRelatedInvoiceRequest, EmailRelatedClientMail,
		EmailRelatedReminder, EmailRelatedPaymentStatus, EmailRelatedOther:
		return true
	}
	return false
}

// EmailStatus is the delivery/ingestion state of a tracked email.
type EmailStatus string

const (
	EmailStatusDraft    EmailStatus = "DRAFT"
	EmailStatusSent     EmailStatus = "SENT"
	EmailStatusFailed   EmailStatus = "FAILED"
	EmailStatusReceived EmailStatus = "RECEIVED"
	EmailStatusParsed   EmailStatus = "PARSED"
)

func (s EmailStatus) Valid() bool {
	switch s {
	case EmailStatusDraft, EmailStatusSent, EmailStatusFailed, EmailStatusReceived, EmailStatusParsed:
		return true
	}
	return false
}

// EmailRelatedRef is the tagged union (kind, id) an email log points at.
type EmailRelatedRef struct {
	Type EmailRelatedType
	ID   uuid.UUID
}

// EmailLog tracks one email, outbound or inbound, together with the AI
// drafting trail (model, prompt, generated draft, final body). QuotationID
// is the one declared foreign key; other targets are reached through the
// related_type/related_id pair.
type EmailLog struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Direction       EmailDirection   `gorm:"type:varchar(10);not null" json:"direction" validate:"oneof=OUTBOUND INBOUND"`
	RelatedType     EmailRelatedType `gorm:"type:varchar(20);not null;index:ix_email_logs_related,priority:1" json:"related_type" validate:"oneof=QUOTATION INVOICE_REQUEST CLIENT_MAIL REMINDER PAYMENT_STATUS OTHER"`
	RelatedID       *uuid.UUID       `gorm:"type:uuid;index:ix_email_logs_related,priority:2" json:"related_id,omitempty"`
	QuotationID     *uuid.UUID       `gorm:"type:uuid;index" json:"quotation_id,omitempty"`
	UserID          *uuid.UUID       `gorm:"type:uuid;index" json:"user_id,omitempty"`
	FromEmail       string           `gorm:"type:varchar(320);not null" json:"from_email" validate:"required,max=320"`
	ToEmail         string           `gorm:"type:varchar(320);not null" json:"to_email" validate:"required,max=320"`
	Subject         string           `gorm:"type:varchar(500)" json:"subject" validate:"max=500"`
	AIModel         string           `gorm:"type:varchar(100)" json:"ai_model" validate:"max=100"`
	AIPrompt        string           `gorm:"type:text" json:"ai_prompt"`
	AIGeneratedBody string           `gorm:"type:text" json:"ai_generated_body"`
	FinalBody       string           `gorm:"type:text" json:"final_body"`
	Status          EmailStatus      `gorm:"type:varchar(20);not null;default:'DRAFT'" json:"status" validate:"oneof=DRAFT SENT FAILED RECEIVED PARSED"`
	GmailMessageID  string           `gorm:"type:varchar(255);index" json:"gmail_message_id"`
	HasAttachments  bool             `gorm:"not null;default:false" json:"has_attachments"`
	AttachmentsMeta string           `gorm:"type:jsonb;column:attachments_meta_json" json:"attachments_meta_json,omitempty"`
	SentAt          *time.Time       `json:"sent_at,omitempty"`
	CreatedAt       time.Time        `gorm:"not null;default:now();autoCreateTime:false" json:"created_at"`
	UpdatedAt       time.Time        `gorm:"not null;default:now();autoUpdateTime:false" json:"updated_at"`

	Quotation *Quotation `gorm:"foreignKey:QuotationID" json:"quotation,omitempty"`
	User      *User      `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"user,omitempty"`
}

func (e *EmailLog) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (e *EmailLog) Validate() error {
	v := validator.New()

	return v.Struct(e)
}

// Related returns the tagged target reference, or false when the log has
// no related id.
func (e *EmailLog) Related() (EmailRelatedRef, bool) {
	if e.RelatedID == nil {
		return EmailRelatedRef{}, false
	}
	return EmailRelatedRef{Type: e.RelatedType, ID: *e.RelatedID}, true
}

// MarkSent stamps the delivery result of an outbound email.
func (e *EmailLog) MarkSent(messageID string, at time.Time) {
	e.Status = EmailStatusSent
	e.GmailMessageID = messageID
	e.SentAt = &at
}
