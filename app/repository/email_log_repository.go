package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cloudsaleshq/cloudsales/app/models"
	"github.com/cloudsaleshq/cloudsales/internal/pkg/dberr"
)

// emailLogRepository implements the EmailLogRepository interface
type emailLogRepository struct {
	db *gorm.DB
}

// NewEmailLogRepository creates a new email log repository instance
func NewEmailLogRepository(db *gorm.DB) EmailLogRepository {
	return &emailLogRepository{db: db}
}

// Create inserts a new email log row
func (r *emailLogRepository) Create(log *models.EmailLog) error {
	return dberr.Map(r.db.Create(log).Error)
}

// GetByID retrieves an email log by its ID
func (r *emailLogRepository) GetByID(id uuid.UUID) (*models.EmailLog, error) {
	var log models.EmailLog
	if err := r.db.First(&log, "id = ?", id).Error; err != nil {
		return nil, dberr.Map(err)
	}
	return &log, nil
}

// GetByQuotationID returns the email trail of one quotation
func (r *emailLogRepository) GetByQuotationID(quotationID uuid.UUID) ([]models.EmailLog, error) {
	var logs []models.EmailLog
	err := r.db.Where("quotation_id = ?", quotationID).Order("created_at").Find(&logs).Error
	if err != nil {
		return nil, dberr.Map(err)
	}
	return logs, nil
}

// FindByRelated resolves the tagged related_type/related_id pair. This is
// how billing-cycle mail (INVOICE_REQUEST, REMINDER) is looked up; there
// is no foreign key behind the pair.
func (r *emailLogRepository) FindByRelated(relatedType models.EmailRelatedType, relatedID uuid.UUID) ([]models.EmailLog, error) {
	var logs []models.EmailLog
	err := r.db.Where("related_type = ? AND related_id = ?", relatedType, relatedID).
		Order("created_at").
		Find(&logs).Error
	if err != nil {
		return nil, dberr.Map(err)
	}
	return logs, nil
}

// Update saves all fields of an existing email log
func (r *emailLogRepository) Update(log *models.EmailLog) error {
	return dberr.Map(r.db.Save(log).Error)
}
