package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cloudsaleshq/cloudsales/app/models"
	"github.com/cloudsaleshq/cloudsales/internal/pkg/dberr"
)

// provisioningTaskRepository implements the ProvisioningTaskRepository interface
type provisioningTaskRepository struct {
	db *gorm.DB
}

// NewProvisioningTaskRepository creates a new provisioning task repository instance
func NewProvisioningTaskRepository(db *gorm.DB) ProvisioningTaskRepository {
	return &provisioningTaskRepository{db: db}
}

// Create inserts a new provisioning task row
func (r *provisioningTaskRepository) Create(task *models.ProvisioningTask) error {
	return dberr.Map(r.db.Create(task).Error)
}

// GetByID retrieves a provisioning task by its ID
func (r *provisioningTaskRepository) GetByID(id uuid.UUID) (*models.ProvisioningTask, error) {
	var task models.ProvisioningTask
	if err := r.db.First(&task, "id = ?", id).Error; err != nil {
		return nil, dberr.Map(err)
	}
	return &task, nil
}

// GetBySubscriptionItemID returns the automation history of one item
func (r *provisioningTaskRepository) GetBySubscriptionItemID(itemID uuid.UUID) ([]models.ProvisioningTask, error) {
	var tasks []models.ProvisioningTask
	err := r.db.Where("subscription_item_id = ?", itemID).Order("created_at").Find(&tasks).Error
	if err != nil {
		return nil, dberr.Map(err)
	}
	return tasks, nil
}

// ListPending returns tasks waiting for the executor, oldest first
func (r *provisioningTaskRepository) ListPending(limit int) ([]models.ProvisioningTask, error) {
	var tasks []models.ProvisioningTask
	err := r.db.Where("status = ?", models.ProvisioningTaskPending).
		Order("created_at").Limit(limit).
		Find(&tasks).Error
	if err != nil {
		return nil, dberr.Map(err)
	}
	return tasks, nil
}

// Update saves all fields of an existing provisioning task
func (r *provisioningTaskRepository) Update(task *models.ProvisioningTask) error {
	return dberr.Map(r.db.Save(task).Error)
}
