package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cloudsaleshq/cloudsales/app/models"
	"github.com/cloudsaleshq/cloudsales/internal/pkg/dberr"
)

// subscriptionRepository implements the SubscriptionRepository interface
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository instance
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// Create inserts a subscription together with any attached items
func (r *subscriptionRepository) Create(subscription *models.Subscription) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Create(subscription).Error; err != nil {
			return err
		}
		for i := range subscription.Items {
			subscription.Items[i].SubscriptionID = subscription.ID
			subscription.Items[i].ComputeAmount()
			if err := tx.Create(&subscription.Items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return dberr.Map(err)
}

// GetByID retrieves a subscription with its items preloaded
func (r *subscriptionRepository) GetByID(id uuid.UUID) (*models.Subscription, error) {
	var subscription models.Subscription
	if err := r.db.Preload("Items").First(&subscription, "id = ?", id).Error; err != nil {
		return nil, dberr.Map(err)
	}
	return &subscription, nil
}

// GetByClientID returns all subscriptions of one client, newest first
func (r *subscriptionRepository) GetByClientID(clientID uuid.UUID) ([]models.Subscription, error) {
	var subscriptions []models.Subscription
	err := r.db.Where("client_id = ?", clientID).Order("created_at DESC").Find(&subscriptions).Error
	if err != nil {
		return nil, dberr.Map(err)
	}
	return subscriptions, nil
}

// Update saves all fields of an existing subscription
func (r *subscriptionRepository) Update(subscription *models.Subscription) error {
	return dberr.Map(r.db.Omit("Items").Save(subscription).Error)
}

// Delete removes a subscription. Items and their provisioning tasks
// cascade away; payments keep their rows with subscription_id nulled.
func (r *subscriptionRepository) Delete(id uuid.UUID) error {
	return dberr.Map(r.db.Delete(&models.Subscription{}, "id = ?", id).Error)
}

// ListDueForBilling returns active subscriptions whose next billing date
// is on or before asOf.
func (r *subscriptionRepository) ListDueForBilling(asOf time.Time) ([]models.Subscription, error) {
	var subscriptions []models.Subscription
	err := r.db.Where("status = ? AND next_billing_date IS NOT NULL AND next_billing_date <= ?",
		models.SubscriptionStatusActive, asOf).
		Order("next_billing_date").
		Find(&subscriptions).Error
	if err != nil {
		return nil, dberr.Map(err)
	}
	return subscriptions, nil
}

// List returns subscriptions ordered by creation time
func (r *subscriptionRepository) List(offset, limit int) ([]models.Subscription, error) {
	var subscriptions []models.Subscription
	err := r.db.Offset(offset).Limit(limit).Order("created_at DESC").Find(&subscriptions).Error
	if err != nil {
		return nil, dberr.Map(err)
	}
	return subscriptions, nil
}
