package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductType is the catalog category of a sellable item.
type ProductType string

const (
	ProductTypeGWorkspace ProductType = "GWORKSPACE"
	ProductTypeGCP        ProductType = "GCP"
	ProductTypeDomain     ProductType = "DOMAIN"
	ProductTypeAddon      ProductType = "ADDON"
	ProductTypeService    ProductType = "SERVICE"
)

func (t ProductType) Valid() bool {
	switch t {
	case ProductTypeGWorkspace, ProductTypeGCP, ProductTypeDomain, ProductTypeAddon, ProductTypeService:
		return true
	}
	return false
}

// BillingPeriod is the recurrence of a subscription or product default.
type BillingPeriod string

const (
	BillingPeriodMonthly BillingPeriod = "MONTHLY"
	BillingPeriodYearly  BillingPeriod = "YEARLY"
)

func (p BillingPeriod) Valid() bool {
	return p == BillingPeriodMonthly || p == BillingPeriodYearly
}

// Product is a sellable catalog item: Workspace seats, GCP resources,
// domains, addons and service fees.
type Product struct {
	ID                   uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Code                 string        `gorm:"type:varchar(100);not null;uniqueIndex" json:"code" validate:"required,max=100"`
	Name                 string        `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
	Type                 ProductType   `gorm:"type:varchar(50);not null" json:"type" validate:"oneof=GWORKSPACE GCP DOMAIN ADDON SERVICE"`
	Description          string        `gorm:"type:text" json:"description"`
	DefaultBillingPeriod BillingPeriod `gorm:"type:varchar(20)" json:"default_billing_period" validate:"omitempty,oneof=MONTHLY YEARLY"`
	IsActive             bool          `gorm:"not null;default:true" json:"is_active"`
	GoogleSKU            string        `gorm:"type:varchar(255)" json:"google_sku" validate:"max=255"`
	MetadataJSON         string        `gorm:"type:jsonb" json:"metadata_json,omitempty"`
	CreatedAt            time.Time     `gorm:"not null;default:now();autoCreateTime:false" json:"created_at"`
	UpdatedAt            time.Time     `gorm:"not null;default:now();autoUpdateTime:false" json:"updated_at"`

	QuotationItems    []QuotationItem    `gorm:"foreignKey:ProductID" json:"quotation_items,omitempty"`
	SubscriptionItems []SubscriptionItem `gorm:"foreignKey:ProductID" json:"subscription_items,omitempty"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (p *Product) Validate() error {
	v := validator.New()

	return v.Struct(p)
}
