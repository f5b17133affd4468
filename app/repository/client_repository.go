package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cloudsaleshq/cloudsales/app/models"
	"github.com/cloudsaleshq/cloudsales/internal/pkg/dberr"
)

// clientRepository implements the ClientRepository interface
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository instance
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

// Create inserts a new client row
func (r *clientRepository) Create(client *models.Client) error {
	return dberr.Map(r.db.Create(client).Error)
}

// GetByID retrieves a client by its ID
func (r *clientRepository) GetByID(id uuid.UUID) (*models.Client, error) {
	var client models.Client
	if err := r.db.First(&client, "id = ?", id).Error; err != nil {
		return nil, dberr.Map(err)
	}
	return &client, nil
}

// GetByBillingEmail retrieves a client by its billing email address
func (r *clientRepository) GetByBillingEmail(email string) (*models.Client, error) {
	var client models.Client
	if err := r.db.Where("billing_email = ?", email).First(&client).Error; err != nil {
		return nil, dberr.Map(err)
	}
	return &client, nil
}

// Update saves all fields of an existing client
func (r *clientRepository) Update(client *models.Client) error {
	return dberr.Map(r.db.Save(client).Error)
}

// Delete removes a client. The database rejects the delete while
// quotations, subscriptions or payments still reference the client; the
// wallet account and its transactions go with it.
func (r *clientRepository) Delete(id uuid.UUID) error {
	return dberr.Map(r.db.Delete(&models.Client{}, "id = ?", id).Error)
}

// List returns clients ordered by creation time
func (r *clientRepository) List(offset, limit int) ([]models.Client, error) {
	var clients []models.Client
	err := r.db.Offset(offset).Limit(limit).Order("created_at DESC").Find(&clients).Error
	if err != nil {
		return nil, dberr.Map(err)
	}
	return clients, nil
}

// ListByStatus returns all clients in one lifecycle state
func (r *clientRepository) ListByStatus(status models.ClientStatus) ([]models.Client, error) {
	var clients []models.Client
	err := r.db.Where("status = ?", status).Order("created_at DESC").Find(&clients).Error
	if err != nil {
		return nil, dberr.Map(err)
	}
	return clients, nil
}

// Count returns the total number of clients
func (r *clientRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Client{}).Count(&count).Error
	return count, dberr.Map(err)
}
