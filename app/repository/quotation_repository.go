package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cloudsaleshq/cloudsales/app/models"
	"github.com/cloudsaleshq/cloudsales/internal/pkg/dberr"
)

// quotationRepository implements the QuotationRepository interface
type quotationRepository struct {
	db *gorm.DB
}

// NewQuotationRepository creates a new quotation repository instance
func NewQuotationRepository(db *gorm.DB) QuotationRepository {
	return &quotationRepository{db: db}
}

// Create inserts a quotation without touching its items
func (r *quotationRepository) Create(quotation *models.Quotation) error {
	return dberr.Map(r.db.Omit("Items").Create(quotation).Error)
}

// CreateWithItems recomputes item subtotals and both quotation totals,
// then persists the quotation and its lines in one transaction.
func (r *quotationRepository) CreateWithItems(quotation *models.Quotation) error {
	for i := range quotation.Items {
		quotation.Items[i].ComputeSubtotals()
	}
	quotation.SumItems()

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Create(quotation).Error; err != nil {
			return err
		}
		for i := range quotation.Items {
			quotation.Items[i].QuotationID = quotation.ID
			if err := tx.Create(&quotation.Items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return dberr.Map(err)
}

// GetByID retrieves a quotation with its line items preloaded
func (r *quotationRepository) GetByID(id uuid.UUID) (*models.Quotation, error) {
	var quotation models.Quotation
	if err := r.db.Preload("Items").First(&quotation, "id = ?", id).Error; err != nil {
		return nil, dberr.Map(err)
	}
	return &quotation, nil
}

// GetByNumber retrieves a quotation by its unique number
func (r *quotationRepository) GetByNumber(number string) (*models.Quotation, error) {
	var quotation models.Quotation
	if err := r.db.Preload("Items").Where("number = ?", number).First(&quotation).Error; err != nil {
		return nil, dberr.Map(err)
	}
	return &quotation, nil
}

// GetByClientID returns all quotations for one client, newest first
func (r *quotationRepository) GetByClientID(clientID uuid.UUID) ([]models.Quotation, error) {
	var quotations []models.Quotation
	err := r.db.Where("client_id = ?", clientID).Order("created_at DESC").Find(&quotations).Error
	if err != nil {
		return nil, dberr.Map(err)
	}
	return quotations, nil
}

// Update saves all fields of an existing quotation
func (r *quotationRepository) Update(quotation *models.Quotation) error {
	return dberr.Map(r.db.Omit("Items").Save(quotation).Error)
}

// Delete removes a quotation; its items and email logs cascade away
func (r *quotationRepository) Delete(id uuid.UUID) error {
	return dberr.Map(r.db.Delete(&models.Quotation{}, "id = ?", id).Error)
}

// ListByStatus returns quotations in one negotiation state, newest first
func (r *quotationRepository) ListByStatus(status models.QuotationStatus, offset, limit int) ([]models.Quotation, error) {
	var quotations []models.Quotation
	err := r.db.Where("status = ?", status).
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&quotations).Error
	if err != nil {
		return nil, dberr.Map(err)
	}
	return quotations, nil
}
