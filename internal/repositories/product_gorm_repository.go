package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gudang/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// Create inserts a new product into the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return &product, nil
}

// List retrieves one page of products matching the query, plus the total
// count of matches. The query must be normalized by the caller.
func (r *GORMProductRepository) List(query models.ProductQuery) ([]models.Product, int64, error) {
	tx := r.db.Model(&models.Product{})

	if query.Category != "" {
		tx = tx.Where("category = ?", query.Category)
	}
	if query.Status != "" {
		// "low-stock" is a derived filter, not a stored-status equality
		// check: it must match the same predicate ComputeStatus uses for
		// its low-stock branch.
		if query.Status == string(models.ProductLowStock) {
			tx = tx.Where("status = ? AND stock_threshold IS NOT NULL AND stock <= stock_threshold",
				models.ProductActive)
		} else {
			tx = tx.Where("status = ?", query.Status)
		}
	}
	if query.Search != "" {
		// Case-insensitive substring match on name; LOWER works on both
		// postgres and sqlite.
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query.Search)+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var products []models.Product
	err := tx.Order(query.SortBy + " " + query.SortOrder).
		Offset(query.Offset()).
		Limit(query.Limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, total, nil
}

// Update persists all fields of an existing product, zero values included.
// Save is avoided here: it silently re-creates a row when the update matches
// nothing, which would mask a missing product.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Model(product).Select("*").Omit("id", "created_at").Updates(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %d: %w", product.ID, models.ErrNotFound)
	}
	return nil
}

// Delete removes a product by its ID. Products are hard-deleted.
func (r *GORMProductRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %d: %w", id, models.ErrNotFound)
	}
	return nil
}
