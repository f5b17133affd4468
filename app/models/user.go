package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserRole determines what a login principal is allowed to do.
type UserRole string

const (
	RoleClient  UserRole = "CLIENT"
	RoleSales   UserRole = "SALES"
	RoleAdmin   UserRole = "ADMIN"
	RoleFinance UserRole = "FINANCE"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleClient, RoleSales, RoleAdmin, RoleFinance:
		return true
	}
	return false
}

// User is a login principal. ClientID is only set for role CLIENT; sales
// users own the quotations they create.
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex" json:"email" validate:"required,email,max=255"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	FullName     string     `gorm:"type:varchar(255);not null" json:"full_name" validate:"required,max=255"`
	Role         UserRole   `gorm:"type:varchar(20);not null" json:"role" validate:"oneof=CLIENT SALES ADMIN FINANCE"`
	ClientID     *uuid.UUID `gorm:"type:uuid;index" json:"client_id,omitempty"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time  `gorm:"not null;default:now();autoCreateTime:false" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null;default:now();autoUpdateTime:false" json:"updated_at"`

	Client          *Client     `gorm:"foreignKey:ClientID;constraint:OnDelete:SET NULL" json:"client,omitempty"`
	SalesQuotations []Quotation `gorm:"foreignKey:SalesUserID" json:"sales_quotations,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *User) Validate() error {
	v := validator.New()

	return v.Struct(u)
}

// CreateUser builds a user with a freshly hashed password, validated and
// ready to persist.
func CreateUser(email, password, fullName string, role UserRole) (*User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		Role:         role,
		IsActive:     true,
	}

	if err := u.Validate(); err != nil {
		return nil, err
	}

	return u, nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(bytes), err
}

// CheckPasswordHash compares the given password with the stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// CheckPassword verifies if the provided password matches the user's stored password
func (u *User) CheckPassword(password string) bool {
	return CheckPasswordHash(password, u.PasswordHash)
}

// SetPassword hashes and sets a new password for the user
func (u *User) SetPassword(password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

// IsClientUser reports whether the user belongs to a client portal account.
func (u *User) IsClientUser() bool {
	return u.Role == RoleClient && u.ClientID != nil
}
