package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientStatus is the lifecycle state of a client company.
type ClientStatus string

const (
	ClientStatusLead      ClientStatus = "LEAD"
	ClientStatusActive    ClientStatus = "ACTIVE"
	ClientStatusSuspended ClientStatus = "SUSPENDED"
	ClientStatusChurned   ClientStatus = "CHURNED"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s ClientStatus) Valid() bool {
	switch s {
	case ClientStatusLead, ClientStatusActive, ClientStatusSuspended, ClientStatusChurned:
		return true
	}
	return false
}

// Client is the root entity for a customer company, including prospects
// that have not converted yet (status LEAD). It owns the client's users,
// quotations, subscriptions, payments and at most one wallet account.
type Client struct {
	ID               uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Name             string       `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
	LegalName        string       `gorm:"type:varchar(255)" json:"legal_name" validate:"max=255"`
	BillingEmail     string       `gorm:"type:varchar(255);not null;index" json:"billing_email" validate:"required,email,max=255"`
	ContactEmail     string       `gorm:"type:varchar(255)" json:"contact_email" validate:"omitempty,email,max=255"`
	Phone            string       `gorm:"type:varchar(50)" json:"phone" validate:"max=50"`
	BillingAddress   string       `gorm:"type:text" json:"billing_address"`
	TaxNumber        string       `gorm:"type:varchar(64)" json:"tax_number" validate:"max=64"`
	TaxCardFileURL   string       `gorm:"type:text" json:"tax_card_file_url"`
	Status           ClientStatus `gorm:"type:varchar(20);not null;default:'LEAD';index" json:"status" validate:"oneof=LEAD ACTIVE SUSPENDED CHURNED"`
	WorkspaceDomain  string       `gorm:"type:varchar(255)" json:"workspace_domain" validate:"max=255"`
	HasPortalAccount bool         `gorm:"not null;default:false" json:"has_portal_account"`
	GoogleCustomerID string       `gorm:"type:varchar(255)" json:"google_customer_id" validate:"max=255"`
	CreatedAt        time.Time    `gorm:"not null;default:now();autoCreateTime:false" json:"created_at"`
	UpdatedAt        time.Time    `gorm:"not null;default:now();autoUpdateTime:false" json:"updated_at"`

	Users         []User         `gorm:"foreignKey:ClientID" json:"users,omitempty"`
	Quotations    []Quotation    `gorm:"foreignKey:ClientID" json:"quotations,omitempty"`
	Subscriptions []Subscription `gorm:"foreignKey:ClientID" json:"subscriptions,omitempty"`
	Payments      []Payment      `gorm:"foreignKey:ClientID" json:"payments,omitempty"`
	WalletAccount *WalletAccount `gorm:"foreignKey:ClientID" json:"wallet_account,omitempty"`
}

// BeforeCreate assigns the primary key so the identifier is known before
// the row is first persisted.
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (c *Client) Validate() error {
	v := validator.New()

	return v.Struct(c)
}

// IsLead reports whether the client is still a prospect without billing history.
func (c *Client) IsLead() bool {
	return c.Status == ClientStatusLead
}
