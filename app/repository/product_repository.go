package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cloudsaleshq/cloudsales/app/models"
	"github.com/cloudsaleshq/cloudsales/internal/pkg/dberr"
)

// productRepository implements the ProductRepository interface
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository instance
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// Create inserts a new catalog item. A duplicate code surfaces as
// dberr.ErrDuplicateKey.
func (r *productRepository) Create(product *models.Product) error {
	return dberr.Map(r.db.Create(product).Error)
}

// GetByID retrieves a product by its ID
func (r *productRepository) GetByID(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, dberr.Map(err)
	}
	return &product, nil
}

// GetByCode retrieves a product by its unique internal code
func (r *productRepository) GetByCode(code string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Where("code = ?", code).First(&product).Error; err != nil {
		return nil, dberr.Map(err)
	}
	return &product, nil
}

// GetActive returns all products currently on sale
func (r *productRepository) GetActive() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("is_active = ?", true).Order("code").Find(&products).Error
	if err != nil {
		return nil, dberr.Map(err)
	}
	return products, nil
}

// Update saves all fields of an existing product
func (r *productRepository) Update(product *models.Product) error {
	return dberr.Map(r.db.Save(product).Error)
}

// Delete removes a product by ID
func (r *productRepository) Delete(id uuid.UUID) error {
	return dberr.Map(r.db.Delete(&models.Product{}, "id = ?", id).Error)
}

// List returns products ordered by code
func (r *productRepository) List(offset, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Offset(offset).Limit(limit).Order("code").Find(&products).Error
	if err != nil {
		return nil, dberr.Map(err)
	}
	return products, nil
}
