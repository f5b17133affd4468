package models

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrNonPositiveAmount rejects wallet transactions whose magnitude is zero
// or negative; the sign lives in the direction column.
var ErrNonPositiveAmount = errors.New("wallet transaction amount must be positive")

// WalletTransactionType classifies why a wallet balance changed.
type WalletTransactionType string

const (
	WalletTransactionTopup      WalletTransactionType = "TOPUP"
	WalletTransactionCharge     WalletTransactionType = "CHARGE"
	WalletTransactionRefund     WalletTransactionType = "REFUND"
	WalletTransactionAdjustment WalletTransactionType = "ADJUSTMENT"
)

func (t WalletTransactionType) Valid() bool {
	switch t {
	case WalletTransactionTopup, WalletTransactionCharge, WalletTransactionRefund, WalletTransactionAdjustment:
		return true
	}
	return false
}

// WalletDirection is the sign of a wallet mutation. Amounts are stored as
// unsigned magnitudes; the direction carries the sign.
type WalletDirection string

const (
	WalletDirectionIn  WalletDirection = "IN"
	WalletDirectionOut WalletDirection = "OUT"
)

func (d WalletDirection) Valid() bool {
	return d == WalletDirectionIn || d == WalletDirectionOut
}

// WalletRelatedType names the entity a wallet transaction was caused by.
type WalletRelatedType string

const (
	WalletRelatedPayment      WalletRelatedType = "PAYMENT"
	WalletRelatedSubscription WalletRelatedType = "SUBSCRIPTION"
	WalletRelatedManual       WalletRelatedType = "MANUAL"
)

func (t WalletRelatedType) Valid() bool {
	switch t {
	case WalletRelatedPayment, WalletRelatedSubscription, WalletRelatedManual:
		return true
	}
	return false
}

// WalletAccount is the prepaid balance of a client. Exactly one per
// client, enforced by a unique index on client_id.
type WalletAccount struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	ClientID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"client_id" validate:"required"`
	Balance   decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0" json:"balance"`
	Currency  string          `gorm:"type:varchar(10);not null" json:"currency" validate:"required,max=10"`
	CreatedAt time.Time       `gorm:"not null;default:now();autoCreateTime:false" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null;default:now();autoUpdateTime:false" json:"updated_at"`

	Client       *Client             `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"client,omitempty"`
	Transactions []WalletTransaction `gorm:"foreignKey:WalletAccountID;constraint:OnDelete:CASCADE" json:"transactions,omitempty"`
}

func (wa *WalletAccount) BeforeCreate(tx *gorm.DB) error {
	if wa.ID == uuid.Nil {
		wa.ID = uuid.New()
	}
	return nil
}

func (wa *WalletAccount) Validate() error {
	v := validator.New()

	return v.Struct(wa)
}

// Apply adjusts the balance by the transaction's magnitude in its
// direction. It does not persist anything; repositories apply balance and
// transaction inside one database transaction.
func (wa *WalletAccount) Apply(tx *WalletTransaction) {
	if tx.Direction == WalletDirectionOut {
		wa.Balance = wa.Balance.Sub(tx.Amount)
		return
	}
	wa.Balance = wa.Balance.Add(tx.Amount)
}

// WalletTransaction is one balance mutation. Amount must be a positive
// magnitude; append-only, so there is no updated_at column.
type WalletTransaction struct {
	ID              uuid.UUID             `gorm:"type:uuid;primaryKey" json:"id"`
	WalletAccountID uuid.UUID             `gorm:"type:uuid;not null;index" json:"wallet_account_id" validate:"required"`
	Type            WalletTransactionType `gorm:"type:varchar(20);not null" json:"type" validate:"oneof=TOPUP CHARGE REFUND ADJUSTMENT"`
	Direction       WalletDirection       `gorm:"type:varchar(5);not null" json:"direction" validate:"oneof=IN OUT"`
	Amount          decimal.Decimal       `gorm:"type:numeric(18,2);not null" json:"amount"`
	RelatedType     *WalletRelatedType    `gorm:"type:varchar(20)" json:"related_type,omitempty" validate:"omitempty,oneof=PAYMENT SUBSCRIPTION MANUAL"`
	RelatedID       *uuid.UUID            `gorm:"type:uuid;index" json:"related_id,omitempty"`
	CreatedAt       time.Time             `gorm:"not null;default:now();autoCreateTime:false" json:"created_at"`

	WalletAccount *WalletAccount `gorm:"foreignKey:WalletAccountID" json:"wallet_account,omitempty"`
}

func (wt *WalletTransaction) BeforeCreate(tx *gorm.DB) error {
	if wt.ID == uuid.Nil {
		wt.ID = uuid.New()
	}
	return nil
}

func (wt *WalletTransaction) Validate() error {
	if !wt.Amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	v := validator.New()

	return v.Struct(wt)
}
