package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentStatus is the result state of one payment attempt.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusSuccess  PaymentStatus = "SUCCESS"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusSuccess, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// PaymentMethod is the concrete channel one payment came through.
type PaymentMethod string

const (
	PaymentMethodXenditEwallet PaymentMethod = "XENDIT_EWALLET"
	PaymentMethodXenditCC      PaymentMethod = "XENDIT_CC"
	PaymentMethodXenditVA      PaymentMethod = "XENDIT_VA"
	PaymentMethodManual        PaymentMethod = "MANUAL"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodXenditEwallet, PaymentMethodXenditCC, PaymentMethodXenditVA, PaymentMethodManual:
		return true
	}
	return false
}

// Payment records one payment attempt or result. The client reference is
// restricted on delete (financial history), the subscription and billing
// cycle references are nulled when their rows go away.
type Payment struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	ClientID             uuid.UUID       `gorm:"type:uuid;not null;index" json:"client_id" validate:"required"`
	SubscriptionID       *uuid.UUID      `gorm:"type:uuid;index" json:"subscription_id,omitempty"`
	BillingCycleID       *uuid.UUID      `gorm:"type:uuid;index" json:"billing_cycle_id,omitempty"`
	Amount               decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"amount"`
	Currency             string          `gorm:"type:varchar(10);not null" json:"currency" validate:"required,max=10"`
	Status               PaymentStatus   `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status" validate:"oneof=PENDING SUCCESS FAILED REFUNDED"`
	Method               PaymentMethod   `gorm:"type:varchar(20);not null" json:"method" validate:"oneof=XENDIT_EWALLET XENDIT_CC XENDIT_VA MANUAL"`
	XenditPaymentID      *string         `gorm:"type:varchar(255);uniqueIndex" json:"xendit_payment_id,omitempty"`
	XenditSubscriptionID string          `gorm:"type:varchar(255);index" json:"xendit_subscription_id"`
	PaidAt               *time.Time      `json:"paid_at,omitempty"`
	FailureReason        string          `gorm:"type:varchar(500)" json:"failure_reason" validate:"max=500"`
	CreatedAt            time.Time       `gorm:"not null;default:now();autoCreateTime:false" json:"created_at"`
	UpdatedAt            time.Time       `gorm:"not null;default:now();autoUpdateTime:false" json:"updated_at"`

	Client       *Client       `gorm:"foreignKey:ClientID;constraint:OnDelete:RESTRICT" json:"client,omitempty"`
	Subscription *Subscription `gorm:"foreignKey:SubscriptionID" json:"subscription,omitempty"`
	BillingCycle *BillingCycle `gorm:"foreignKey:BillingCycleID" json:"billing_cycle,omitempty"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (p *Payment) Validate() error {
	v := validator.New()

	return v.Struct(p)
}

// MarkPaid transitions the payment to SUCCESS and stamps the settlement
// time.
func (p *Payment) MarkPaid(at time.Time) {
	p.Status = PaymentStatusSuccess
	p.PaidAt = &at
	p.FailureReason = ""
}

// MarkFailed transitions the payment to FAILED and records the provider's
// reason.
func (p *Payment) MarkFailed(reason string) {
	p.Status = PaymentStatusFailed
	p.FailureReason = reason
}
