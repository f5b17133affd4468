package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cloudsaleshq/cloudsales/app/models"
	"github.com/cloudsaleshq/cloudsales/internal/pkg/dberr"
)

// userRepository implements the UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user in the database
func (r *userRepository) Create(user *models.User) error {
	return dberr.Map(r.db.Create(user).Error)
}

// GetByID retrieves a user by their ID
func (r *userRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, dberr.Map(err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by their email address
func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, dberr.Map(err)
	}
	return &user, nil
}

// GetByClientID returns the portal users of one client
func (r *userRepository) GetByClientID(clientID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("client_id = ?", clientID).Order("created_at").Find(&users).Error
	if err != nil {
		return nil, dberr.Map(err)
	}
	return users, nil
}

// Update updates an existing user in the database
func (r *userRepository) Update(user *models.User) error {
	return dberr.Map(r.db.Save(user).Error)
}

// Delete removes a user by ID
func (r *userRepository) Delete(id uuid.UUID) error {
	return dberr.Map(r.db.Delete(&models.User{}, "id = ?", id).Error)
}

// List returns users ordered by creation time
func (r *userRepository) List(offset, limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.Offset(offset).Limit(limit).Order("created_at DESC").Find(&users).Error
	if err != nil {
		return nil, dberr.Map(err)
	}
	return users, nil
}
