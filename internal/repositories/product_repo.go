package repositories

import "gudang/internal/models"

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id uint) (*models.Product, error)
	// List returns one page of products plus the total count matching the query.
	List(query models.ProductQuery) ([]models.Product, int64, error)
	Update(product *models.Product) error
	Delete(id uint) error
}
