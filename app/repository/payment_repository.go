package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cloudsaleshq/cloudsales/app/models"
	"github.com/cloudsaleshq/cloudsales/internal/pkg/dberr"
)

// paymentRepository implements the PaymentRepository interface
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository instance
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// Create inserts a payment. A repeated xendit_payment_id surfaces as
// dberr.ErrDuplicateKey, which is how duplicate provider callbacks are
// caught.
func (r *paymentRepository) Create(payment *models.Payment) error {
	return dberr.Map(r.db.Create(payment).Error)
}

// GetByID retrieves a payment by its ID
func (r *paymentRepository) GetByID(id uuid.UUID) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.First(&payment, "id = ?", id).Error; err != nil {
		return nil, dberr.Map(err)
	}
	return &payment, nil
}

// GetByXenditPaymentID resolves a provider payment id to the stored attempt
func (r *paymentRepository) GetByXenditPaymentID(xenditPaymentID string) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.Where("xendit_payment_id = ?", xenditPaymentID).First(&payment).Error; err != nil {
		return nil, dberr.Map(err)
	}
	return &payment, nil
}

// GetByClientID returns payments of one client, newest first
func (r *paymentRepository) GetByClientID(clientID uuid.UUID, offset, limit int) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("client_id = ?", clientID).
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, dberr.Map(err)
	}
	return payments, nil
}

// Update saves all fields of an existing payment
func (r *paymentRepository) Update(payment *models.Payment) error {
	return dberr.Map(r.db.Save(payment).Error)
}

// ListByStatus returns payments in one result state, oldest first
func (r *paymentRepository) ListByStatus(status models.PaymentStatus) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("status = ?", status).Order("created_at").Find(&payments).Error
	if err != nil {
		return nil, dberr.Map(err)
	}
	return payments, nil
}
