package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cloudsaleshq/cloudsales/app/models"
	"github.com/cloudsaleshq/cloudsales/internal/pkg/dberr"
)

// billingCycleRepository implements the BillingCycleRepository interface
type billingCycleRepository struct {
	db *gorm.DB
}

// NewBillingCycleRepository creates a new billing cycle repository instance
func NewBillingCycleRepository(db *gorm.DB) BillingCycleRepository {
	return &billingCycleRepository{db: db}
}

// Create inserts a new billing cycle row
func (r *billingCycleRepository) Create(cycle *models.BillingCycle) error {
	return dberr.Map(r.db.Create(cycle).Error)
}

// GetByID retrieves a billing cycle by its ID
func (r *billingCycleRepository) GetByID(id uuid.UUID) (*models.BillingCycle, error) {
	var cycle models.BillingCycle
	if err := r.db.First(&cycle, "id = ?", id).Error; err != nil {
		return nil, dberr.Map(err)
	}
	return &cycle, nil
}

// GetBySubscriptionID returns all cycles of one subscription, oldest first
func (r *billingCycleRepository) GetBySubscriptionID(subscriptionID uuid.UUID) ([]models.BillingCycle, error) {
	var cycles []models.BillingCycle
	err := r.db.Where("subscription_id = ?", subscriptionID).Order("period_start").Find(&cycles).Error
	if err != nil {
		return nil, dberr.Map(err)
	}
	return cycles, nil
}

// GetByXenditInvoiceID resolves the cycle a provider invoice callback is about
func (r *billingCycleRepository) GetByXenditInvoiceID(xenditInvoiceID string) (*models.BillingCycle, error) {
	var cycle models.BillingCycle
	if err := r.db.Where("xendit_invoice_id = ?", xenditInvoiceID).First(&cycle).Error; err != nil {
		return nil, dberr.Map(err)
	}
	return &cycle, nil
}

// Update saves all fields of an existing billing cycle
func (r *billingCycleRepository) Update(cycle *models.BillingCycle) error {
	return dberr.Map(r.db.Save(cycle).Error)
}

// ListOverdue returns unsettled cycles past their due date as of the
// given time.
func (r *billingCycleRepository) ListOverdue(asOf time.Time) ([]models.BillingCycle, error) {
	var cycles []models.BillingCycle
	err := r.db.Where("due_date < ? AND status NOT IN ?", asOf,
		[]models.BillingCycleStatus{models.BillingCycleStatusPaid, models.BillingCycleStatusCancelled}).
		Order("due_date").
		Find(&cycles).Error
	if err != nil {
		return nil, dberr.Map(err)
	}
	return cycles, nil
}

// ListByStatus returns cycles in one settlement state, oldest due first
func (r *billingCycleRepository) ListByStatus(status models.BillingCycleStatus) ([]models.BillingCycle, error) {
	var cycles []models.BillingCycle
	err := r.db.Where("status = ?", status).Order("due_date").Find(&cycles).Error
	if err != nil {
		return nil, dberr.Map(err)
	}
	return cycles, nil
}
