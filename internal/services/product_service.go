package services

import (
	"fmt"
	"log"

	"gudang/internal/models"
	"gudang/internal/repositories"
)

// Product event types published to the broker.
const (
	EventProductCreated  = "product.created"
	EventProductDeleted  = "product.deleted"
	EventProductLowStock = "product.low_stock"
)

// EventPublisher publishes product lifecycle events. Implementations must be
// safe for concurrent use.
type EventPublisher interface {
	Publish(eventType string, payload interface{}) error
}

// CreateProductInput carries the fields for a new product.
type CreateProductInput struct {
	Name           string
	Category       string
	Description    string
	UnitPrice      float64
	InitialStock   int
	Images         []string
	Status         models.ProductStatus
	StockThreshold *int
	Discount       float64
	Rating         float64
	UnitsSold      int
}

// ProductUpdate is a partial update: nil fields are absent and leave the
// stored value untouched. A nil Status triggers a status recomputation from
// the updated stock and threshold; a set Status is written verbatim.
type ProductUpdate struct {
	Name           *string
	Category       *string
	Description    *string
	UnitPrice      *float64
	InitialStock   *int
	Stock          *int
	Images         *[]string
	Status         *models.ProductStatus
	StockThreshold *int
	Discount       *float64
	Rating         *float64
	UnitsSold      *int
}

// ProductPage is one page of a product listing.
type ProductPage struct {
	Items []models.Product `json:"items"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
	Pages int              `json:"pages"`
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo   repositories.ProductRepository
	events EventPublisher // nil when no broker is configured
}

// NewProductService creates a new ProductService. events may be nil, in
// which case event publishing is skipped.
func NewProductService(repo repositories.ProductRepository, events EventPublisher) *ProductService {
	return &ProductService{
		repo:   repo,
		events: events,
	}
}

// CreateProduct creates a new product. Current stock starts at the initial
// stock, and the display status is computed before the first save.
func (s *ProductService) CreateProduct(input CreateProductInput) (*models.Product, error) {
	status := input.Status
	if status == "" {
		status = models.ProductActive
	}

	product := &models.Product{
		Name:           input.Name,
		Category:       input.Category,
		Description:    input.Description,
		UnitPrice:      input.UnitPrice,
		InitialStock:   input.InitialStock,
		Stock:          input.InitialStock,
		Images:         input.Images,
		Status:         status,
		StockThreshold: input.StockThreshold,
		Discount:       input.Discount,
		Rating:         input.Rating,
		UnitsSold:      input.UnitsSold,
	}
	product.Status = models.ComputeStatus(product.Status, product.Stock, product.StockThreshold)

	if err := s.repo.Create(product); err != nil {
		return nil, err
	}

	s.publish(EventProductCreated, product)
	return product, nil
}

// GetProduct retrieves a single product by its ID.
func (s *ProductService) GetProduct(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// ListProducts returns one page of products matching the query.
func (s *ProductService) ListProducts(query models.ProductQuery) (*ProductPage, error) {
	query.Normalize()

	products, total, err := s.repo.List(query)
	if err != nil {
		return nil, err
	}

	return &ProductPage{
		Items: products,
		Total: total,
		Page:  query.Page,
		Limit: query.Limit,
		Pages: models.TotalPages(total, query.Limit),
	}, nil
}

// UpdateProduct applies a partial update. Only present fields mutate. The
// status is recomputed from the resulting stock and threshold unless the
// update sets it explicitly.
func (s *ProductService) UpdateProduct(id uint, update ProductUpdate) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Category != nil {
		product.Category = *update.Category
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.UnitPrice != nil {
		product.UnitPrice = *update.UnitPrice
	}
	if update.InitialStock != nil {
		product.InitialStock = *update.InitialStock
	}
	if update.Stock != nil {
		product.Stock = *update.Stock
	}
	if update.Images != nil {
		product.Images = *update.Images
	}
	if update.StockThreshold != nil {
		product.StockThreshold = update.StockThreshold
	}
	if update.Discount != nil {
		product.Discount = *update.Discount
	}
	if update.Rating != nil {
		product.Rating = *update.Rating
	}
	if update.UnitsSold != nil {
		product.UnitsSold = *update.UnitsSold
	}

	if update.Status != nil {
		product.Status = *update.Status
	} else {
		product.Status = models.ComputeStatus(product.Status, product.Stock, product.StockThreshold)
	}

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// SetStatus writes the product status verbatim. Setting inactive makes the
// override sticky until the status is explicitly set back.
func (s *ProductService) SetStatus(id uint, status models.ProductStatus) (*models.Product, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown product status %q", status)
	}

	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	product.Status = status
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// AdjustStock adds to or subtracts from a product's current stock. The
// amount must be non-negative; the operation enum is the sole source of
// sign. Subtracting more than the available stock fails with
// ErrInsufficientStock and leaves the stock unchanged. The status is
// recomputed unconditionally after the adjustment.
func (s *ProductService) AdjustStock(id uint, amount int, op models.StockOp) (*models.Product, error) {
	if !op.Valid() {
		return nil, fmt.Errorf("unknown stock operation %q", op)
	}
	if amount < 0 {
		return nil, fmt.Errorf("stock adjustment amount must be non-negative, got %d", amount)
	}

	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	switch op {
	case models.StockAdd:
		product.Stock += amount
	case models.StockSubtract:
		if amount > product.Stock {
			return nil, fmt.Errorf("%w: available %d, requested %d",
				models.ErrInsufficientStock, product.Stock, amount)
		}
		product.Stock -= amount
	}

	previous := product.Status
	product.Status = models.ComputeStatus(product.Status, product.Stock, product.StockThreshold)

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}

	if product.Status == models.ProductLowStock && previous != models.ProductLowStock {
		s.publish(EventProductLowStock, product)
	}
	return product, nil
}

// DeleteProduct removes a product. Products are hard-deleted, no cascade.
func (s *ProductService) DeleteProduct(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publish(EventProductDeleted, map[string]interface{}{"id": id})
	return nil
}

// publish sends an event to the broker if one is configured. Publish
// failures are logged, never surfaced: events are advisory, the store is the
// source of truth.
func (s *ProductService) publish(eventType string, payload interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(eventType, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}
