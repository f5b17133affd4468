package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// QuotationStatus is the negotiation state of a price proposal.
type QuotationStatus string

const (
	QuotationStatusDraft    QuotationStatus = "DRAFT"
	QuotationStatusSent     QuotationStatus = "SENT"
	QuotationStatusAccepted QuotationStatus = "ACCEPTED"
	QuotationStatusRejected QuotationStatus = "REJECTED"
	QuotationStatusExpired  QuotationStatus = "EXPIRED"
)

func (s QuotationStatus) Valid() bool {
	switch s {
	case QuotationStatusDraft, QuotationStatusSent, QuotationStatusAccepted,
		QuotationStatusRejected, QuotationStatusExpired:
		return true
	}
	return false
}

// Quotation is a price proposal composed by a sales user for a client.
// Totals are kept both in the internal currency and in the client's
// currency using the exchange rate entered at creation time.
type Quotation struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	ClientID              uuid.UUID       `gorm:"type:uuid;not null;index" json:"client_id" validate:"required"`
	SalesUserID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"sales_user_id" validate:"required"`
	Number                string          `gorm:"type:varchar(100);not null;uniqueIndex" json:"number" validate:"required,max=100"`
	Status                QuotationStatus `gorm:"type:varchar(20);not null;default:'DRAFT';index" json:"status" validate:"oneof=DRAFT SENT ACCEPTED REJECTED EXPIRED"`
	TotalAmount           decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0" json:"total_amount"`
	Currency              string          `gorm:"type:varchar(10);not null;default:'USD'" json:"currency" validate:"required,max=10"`
	ClientCurrency        string          `gorm:"type:varchar(10);not null;default:'IDR'" json:"client_currency" validate:"required,max=10"`
	ExchangeRate          decimal.Decimal `gorm:"type:numeric(18,6);not null;default:1" json:"exchange_rate"`
	TotalAmountClient     decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0" json:"total_amount_client"`
	ValidUntil            *time.Time      `json:"valid_until,omitempty"`
	RelatedSubscriptionID *uuid.UUID      `gorm:"type:uuid" json:"related_subscription_id,omitempty"`
	CosmicID              *string         `gorm:"type:varchar(255);uniqueIndex" json:"cosmic_id,omitempty"`
	PDFURL                string          `gorm:"type:varchar(1024)" json:"pdf_url"`
	GmailThreadID         string          `gorm:"type:varchar(255);index" json:"gmail_thread_id"`
	CreatedAt             time.Time       `gorm:"not null;default:now();autoCreateTime:false" json:"created_at"`
	UpdatedAt             time.Time       `gorm:"not null;default:now();autoUpdateTime:false" json:"updated_at"`

	Client       *Client         `gorm:"foreignKey:ClientID;constraint:OnDelete:RESTRICT" json:"client,omitempty"`
	SalesUser    *User           `gorm:"foreignKey:SalesUserID;constraint:OnDelete:RESTRICT" json:"sales_user,omitempty"`
	Subscription *Subscription   `gorm:"foreignKey:RelatedSubscriptionID;constraint:OnDelete:SET NULL" json:"subscription,omitempty"`
	Items        []QuotationItem `gorm:"foreignKey:QuotationID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	EmailLogs    []EmailLog      `gorm:"foreignKey:QuotationID;constraint:OnDelete:CASCADE" json:"email_logs,omitempty"`
}

func (q *Quotation) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

func (q *Quotation) Validate() error {
	v := validator.New()

	return v.Struct(q)
}

// SumItems recomputes both quotation totals from the line items. The
// schema does not enforce this; callers persisting items are expected to
// keep the totals in sync.
func (q *Quotation) SumItems() {
	total := decimal.Zero
	totalClient := decimal.Zero
	for _, it := range q.Items {
		total = total.Add(it.SubtotalAmount)
		totalClient = totalClient.Add(it.SubtotalAmountClient)
	}
	q.TotalAmount = total
	q.TotalAmountClient = totalClient
}

// IsOpen reports whether the quotation can still be accepted.
func (q *Quotation) IsOpen() bool {
	return q.Status == QuotationStatusDraft || q.Status == QuotationStatusSent
}

// QuotationItem is one priced line on a quotation, e.g. a seat count of a
// Workspace SKU or a custom service fee. ProductID is nil for free-text
// items.
type QuotationItem struct {
	ID                   uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	QuotationID          uuid.UUID           `gorm:"type:uuid;not null;index" json:"quotation_id" validate:"required"`
	ProductID            *uuid.UUID          `gorm:"type:uuid;index" json:"product_id,omitempty"`
	Description          string              `gorm:"type:text" json:"description"`
	Quantity             int                 `gorm:"not null;default:1" json:"quantity" validate:"gte=1"`
	UnitPrice            decimal.Decimal     `gorm:"type:numeric(18,2);not null;default:0" json:"unit_price"`
	UnitPriceClient      decimal.Decimal     `gorm:"type:numeric(18,2);not null;default:0" json:"unit_price_client"`
	DiscountPercent      decimal.NullDecimal `gorm:"type:numeric(5,2)" json:"discount_percent,omitempty"`
	SubtotalAmount       decimal.Decimal     `gorm:"type:numeric(18,2);not null;default:0" json:"subtotal_amount"`
	SubtotalAmountClient decimal.Decimal     `gorm:"type:numeric(18,2);not null;default:0" json:"subtotal_amount_client"`
	CreatedAt            time.Time           `gorm:"not null;default:now();autoCreateTime:false" json:"created_at"`
	UpdatedAt            time.Time           `gorm:"not null;default:now();autoUpdateTime:false" json:"updated_at"`

	Quotation *Quotation `gorm:"foreignKey:QuotationID" json:"quotation,omitempty"`
	Product   *Product   `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL" json:"product,omitempty"`
}

func (qi *QuotationItem) BeforeCreate(tx *gorm.DB) error {
	if qi.ID == uuid.Nil {
		qi.ID = uuid.New()
	}
	return nil
}

func (qi *QuotationItem) Validate() error {
	v := validator.New()

	return v.Struct(qi)
}

// ComputeSubtotals applies quantity and discount to both unit prices:
// subtotal = quantity * unit_price * (1 - discount/100), rounded to two
// fractional digits per currency.
func (qi *QuotationItem) ComputeSubtotals() {
	qty := decimal.NewFromInt(int64(qi.Quantity))
	factor := decimal.NewFromInt(1)
	if qi.DiscountPercent.Valid {
		factor = factor.Sub(qi.DiscountPercent.Decimal.Div(decimal.NewFromInt(100)))
	}
	qi.SubtotalAmount = qi.UnitPrice.Mul(qty).Mul(factor).Round(2)
	qi.SubtotalAmountClient = qi.UnitPriceClient.Mul(qty).Mul(factor).Round(2)
}
