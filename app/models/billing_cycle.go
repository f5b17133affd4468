package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BillingCycleStatus tracks a cycle from pending through invoicing to
// settlement.
type BillingCycleStatus string

const (
	BillingCycleStatusPending          BillingCycleStatus = "PENDING"
	BillingCycleStatusInvoiceRequested BillingCycleStatus = "INVOICE_REQUESTED"
	BillingCycleStatusInvoiced         BillingCycleStatus = "INVOICED"
	BillingCycleStatusPaid             BillingCycleStatus = "PAID"
	BillingCycleStatusFailed           BillingCycleStatus = "FAILED"
	BillingCycleStatusCancelled        BillingCycleStatus = "CANCELLED"
)

func (s BillingCycleStatus) Valid() bool {
	switch s {
	case BillingCycleStatusPending, BillingCycleStatusInvoiceRequested, BillingCycleStatusInvoiced,
		BillingCycleStatusPaid, BillingCycleStatusFailed, BillingCycleStatusCancelled:
		return true
	}
	return false
}

// BillingCycle is one invoicing period of a subscription. QuotedAmount
// holds the pre-finalization figure from the quotation; Amount is the
// final invoiced value. Email logs for a cycle are reached through the
// EmailLog related_type/related_id pair, not a foreign key.
type BillingCycle struct {
	ID                    uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	SubscriptionID        uuid.UUID           `gorm:"type:uuid;not null;index" json:"subscription_id" validate:"required"`
	PeriodStart           time.Time           `gorm:"type:date;not null" json:"period_start" validate:"required"`
	PeriodEnd             time.Time           `gorm:"type:date;not null" json:"period_end" validate:"required"`
	DueDate               time.Time           `gorm:"type:date;not null" json:"due_date" validate:"required"`
	Amount                decimal.Decimal     `gorm:"type:numeric(18,2);not null" json:"amount"`
	Currency              string              `gorm:"type:varchar(10);not null;default:'IDR'" json:"currency" validate:"required,max=10"`
	Status                BillingCycleStatus  `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status" validate:"oneof=PENDING INVOICE_REQUESTED INVOICED PAID FAILED CANCELLED"`
	IsInitialCycle        bool                `gorm:"not null;default:false" json:"is_initial_cycle"`
	QuotedAmount          decimal.NullDecimal `gorm:"type:numeric(18,2)" json:"quoted_amount,omitempty"`
	InvoiceNumberExternal string              `gorm:"type:varchar(100)" json:"invoice_number_external" validate:"max=100"`
	InvoiceFileURL        string              `gorm:"type:varchar(2048)" json:"invoice_file_url"`
	TaxInvoiceFileURL     string              `gorm:"type:varchar(2048)" json:"tax_invoice_file_url"`
	XenditInvoiceID       string              `gorm:"type:varchar(255);index" json:"xendit_invoice_id"`
	LastReminderSentAt    *time.Time          `json:"last_reminder_sent_at,omitempty"`
	CreatedAt             time.Time           `gorm:"not null;default:now();autoCreateTime:false" json:"created_at"`
	UpdatedAt             time.Time           `gorm:"not null;default:now();autoUpdateTime:false" json:"updated_at"`

	Subscription *Subscription `gorm:"foreignKey:SubscriptionID" json:"subscription,omitempty"`
	Payments     []Payment     `gorm:"foreignKey:BillingCycleID;constraint:OnDelete:SET NULL" json:"payments,omitempty"`
}

func (bc *BillingCycle) BeforeCreate(tx *gorm.DB) error {
	if bc.ID == uuid.Nil {
		bc.ID = uuid.New()
	}
	return nil
}

func (bc *BillingCycle) Validate() error {
	v := validator.New()

	return v.Struct(bc)
}

// IsSettled reports whether the cycle reached a terminal state.
func (bc *BillingCycle) IsSettled() bool {
	return bc.Status == BillingCycleStatusPaid || bc.Status == BillingCycleStatusCancelled
}

// IsOverdue reports whether an unsettled cycle is past its due date.
func (bc *BillingCycle) IsOverdue(now time.Time) bool {
	return !bc.IsSettled() && now.After(bc.DueDate)
}
