package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SubscriptionStatus is the contract state of a recurring subscription.
type SubscriptionStatus string

const (
	SubscriptionStatusPendingActivation SubscriptionStatus = "PENDING_ACTIVATION"
	SubscriptionStatusActive            SubscriptionStatus = "ACTIVE"
	SubscriptionStatusSuspended         SubscriptionStatus = "SUSPENDED"
	SubscriptionStatusCancelled         SubscriptionStatus = "CANCELLED"
	SubscriptionStatusExpired           SubscriptionStatus = "EXPIRED"
)

func (s SubscriptionStatus) Valid() bool {
	switch s {
	case SubscriptionStatusPendingActivation, SubscriptionStatusActive,
		SubscriptionStatusSuspended, SubscriptionStatusCancelled, SubscriptionStatusExpired:
		return true
	}
	return false
}

// PaymentMethodType is how recurring charges for a subscription are collected.
type PaymentMethodType string

const (
	PaymentMethodTypeXenditSubscription PaymentMethodType = "XENDIT_SUBSCRIPTION"
	PaymentMethodTypeManual             PaymentMethodType = "MANUAL"
	PaymentMethodTypeWallet             PaymentMethodType = "WALLET"
)

func (t PaymentMethodType) Valid() bool {
	switch t {
	case PaymentMethodTypeXenditSubscription, PaymentMethodTypeManual, PaymentMethodTypeWallet:
		return true
	}
	return false
}

// ProvisioningState is the provisioning lifecycle of a subscription item in
// the external system (Workspace seats active, suspended, ...).
type ProvisioningState string

const (
	ProvisioningStatePending    ProvisioningState = "PENDING"
	ProvisioningStateActive     ProvisioningState = "ACTIVE"
	ProvisioningStateSuspended  ProvisioningState = "SUSPENDED"
	ProvisioningStateTerminated ProvisioningState = "TERMINATED"
)

func (s ProvisioningState) Valid() bool {
	switch s {
	case ProvisioningStatePending, ProvisioningStateActive, ProvisioningStateSuspended, ProvisioningStateTerminated:
		return true
	}
	return false
}

// Subscription is a pending or running recurring contract between a client
// and the platform. Deleting one cascades to its items; payments keep their
// rows with the back-reference nulled.
type Subscription struct {
	ID                   uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	ClientID             uuid.UUID          `gorm:"type:uuid;not null;index" json:"client_id" validate:"required"`
	CreatedByUserID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"created_by_user_id" validate:"required"`
	Status               SubscriptionStatus `gorm:"type:varchar(30);not null;default:'PENDING_ACTIVATION';index" json:"status" validate:"oneof=PENDING_ACTIVATION ACTIVE SUSPENDED CANCELLED EXPIRED"`
	BillingPeriod        BillingPeriod      `gorm:"type:varchar(20);not null" json:"billing_period" validate:"oneof=MONTHLY YEARLY"`
	StartDate            *time.Time         `gorm:"type:date" json:"start_date,omitempty"`
	EndDate              *time.Time         `gorm:"type:date" json:"end_date,omitempty"`
	NextBillingDate      *time.Time         `gorm:"type:date" json:"next_billing_date,omitempty"`
	PaymentMethodType    PaymentMethodType  `gorm:"type:varchar(30);not null" json:"payment_method_type" validate:"oneof=XENDIT_SUBSCRIPTION MANUAL WALLET"`
	IsManual             bool               `gorm:"not null;default:false" json:"is_manual"`
	XenditSubscriptionID string             `gorm:"type:varchar(255);index" json:"xendit_subscription_id"`
	Currency             string             `gorm:"type:varchar(10);not null" json:"currency" validate:"required,max=10"`
	Notes                string             `gorm:"type:text" json:"notes"`
	CreatedAt            time.Time          `gorm:"not null;default:now();autoCreateTime:false" json:"created_at"`
	UpdatedAt            time.Time          `gorm:"not null;default:now();autoUpdateTime:false" json:"updated_at"`

	Client        *Client            `gorm:"foreignKey:ClientID;constraint:OnDelete:RESTRICT" json:"client,omitempty"`
	CreatedByUser *User              `gorm:"foreignKey:CreatedByUserID;constraint:OnDelete:RESTRICT" json:"created_by_user,omitempty"`
	Items         []SubscriptionItem `gorm:"foreignKey:SubscriptionID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	BillingCycles []BillingCycle     `gorm:"foreignKey:SubscriptionID;constraint:OnDelete:CASCADE" json:"billing_cycles,omitempty"`
	Payments      []Payment          `gorm:"foreignKey:SubscriptionID;constraint:OnDelete:SET NULL" json:"payments,omitempty"`
}

func (s *Subscription) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (s *Subscription) Validate() error {
	v := validator.New()

	return v.Struct(s)
}

// IsBillable reports whether new billing cycles may still be opened.
func (s *Subscription) IsBillable() bool {
	return s.Status == SubscriptionStatusActive || s.Status == SubscriptionStatusPendingActivation
}

// SubscriptionItem is one provisioned line within a subscription. Product
// is required here, unlike quotation items.
type SubscriptionItem struct {
	ID                          uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	SubscriptionID              uuid.UUID         `gorm:"type:uuid;not null;index" json:"subscription_id" validate:"required"`
	ProductID                   uuid.UUID         `gorm:"type:uuid;not null;index" json:"product_id" validate:"required"`
	Description                 string            `gorm:"type:varchar(255)" json:"description" validate:"max=255"`
	Quantity                    int               `gorm:"not null" json:"quantity" validate:"gte=1"`
	UnitPrice                   decimal.Decimal   `gorm:"type:numeric(18,2);not null" json:"unit_price"`
	Amount                      decimal.Decimal   `gorm:"type:numeric(18,2);not null" json:"amount"`
	ProvisioningStatus          ProvisioningState `gorm:"type:varchar(20);not null;default:'PENDING'" json:"provisioning_status" validate:"oneof=PENDING ACTIVE SUSPENDED TERMINATED"`
	GoogleWorkspaceSubscription string            `gorm:"type:varchar(255);column:google_workspace_subscription_id" json:"google_workspace_subscription_id"`
	GCPResourceID               string            `gorm:"type:varchar(255)" json:"gcp_resource_id"`
	ConfigJSON                  string            `gorm:"type:jsonb" json:"config_json,omitempty"`
	CreatedAt                   time.Time         `gorm:"not null;default:now();autoCreateTime:false" json:"created_at"`
	UpdatedAt                   time.Time         `gorm:"not null;default:now();autoUpdateTime:false" json:"updated_at"`

	Subscription      *Subscription      `gorm:"foreignKey:SubscriptionID" json:"subscription,omitempty"`
	Product           *Product           `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT" json:"product,omitempty"`
	ProvisioningTasks []ProvisioningTask `gorm:"foreignKey:SubscriptionItemID;constraint:OnDelete:CASCADE" json:"provisioning_tasks,omitempty"`
}

func (si *SubscriptionItem) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}

func (si *SubscriptionItem) Validate() error {
	v := validator.New()

	return v.Struct(si)
}

// ComputeAmount sets amount = quantity * unit_price rounded to two
// fractional digits.
func (si *SubscriptionItem) ComputeAmount() {
	si.Amount = si.UnitPrice.Mul(decimal.NewFromInt(int64(si.Quantity))).Round(2)
}
