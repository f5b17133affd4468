package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cloudsaleshq/cloudsales/app/models"
	"github.com/cloudsaleshq/cloudsales/internal/pkg/dberr"
)

// webhookEventRepository implements the WebhookEventRepository interface
type webhookEventRepository struct {
	db *gorm.DB
}

// NewWebhookEventRepository creates a new webhook event repository instance
func NewWebhookEventRepository(db *gorm.DB) WebhookEventRepository {
	return &webhookEventRepository{db: db}
}

// Create stores an inbound provider notification with its raw payload
func (r *webhookEventRepository) Create(event *models.WebhookEvent) error {
	return dberr.Map(r.db.Create(event).Error)
}

// GetByID retrieves a webhook event by its ID
func (r *webhookEventRepository) GetByID(id uuid.UUID) (*models.WebhookEvent, error) {
	var event models.WebhookEvent
	if err := r.db.First(&event, "id = ?", id).Error; err != nil {
		return nil, dberr.Map(err)
	}
	return &event, nil
}

// ListUnprocessed returns events the processing workflow has not handled
// yet, oldest first.
func (r *webhookEventRepository) ListUnprocessed(limit int) ([]models.WebhookEvent, error) {
	var events []models.WebhookEvent
	err := r.db.Where("processed = ?", false).Order("created_at").Limit(limit).Find(&events).Error
	if err != nil {
		return nil, dberr.Map(err)
	}
	return events, nil
}

// MarkProcessed loads the event, flips the processed flag and persists the
// timestamp. A repeated call overwrites processed_at; deduplication stays
// with the processing workflow.
func (r *webhookEventRepository) MarkProcessed(id uuid.UUID, at *time.Time) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var event models.WebhookEvent
		if err := tx.First(&event, "id = ?", id).Error; err != nil {
			return err
		}
		event.MarkProcessed(at)
		return tx.Model(&event).Select("processed", "processed_at").Updates(&event).Error
	})
	return dberr.Map(err)
}
