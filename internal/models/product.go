package models

import "time"

// ProductStatus is a product's display status.
type ProductStatus string

const (
	ProductActive   ProductStatus = "active"
	ProductInactive ProductStatus = "inactive"
	ProductLowStock ProductStatus = "low-stock"
)

// Valid reports whether the status is one of the known variants.
func (s ProductStatus) Valid() bool {
	switch s {
	case ProductActive, ProductInactive, ProductLowStock:
		return true
	}
	return false
}

// StockOp selects the direction of a stock adjustment. The operation enum is
// the sole source of sign; adjustment amounts are always non-negative.
type StockOp string

const (
	StockAdd      StockOp = "add"
	StockSubtract StockOp = "subtract"
)

// Valid reports whether the operation is one of the known variants.
func (op StockOp) Valid() bool {
	switch op {
	case StockAdd, StockSubtract:
		return true
	}
	return false
}

// Product represents a product in the catalog.
type Product struct {
	ID             uint          `json:"id" gorm:"primaryKey"`
	Name           string        `json:"name" gorm:"type:varchar(255);not null;index"`
	Category       string        `json:"category" gorm:"type:varchar(100);not null;index"`
	Description    string        `json:"description" gorm:"type:text"`
	UnitPrice      float64       `json:"unit_price" gorm:"not null"`
	InitialStock   int           `json:"initial_stock" gorm:"not null"`
	Stock          int           `json:"stock" gorm:"not null"`
	Images         []string      `json:"images" gorm:"serializer:json;type:text"`
	Status         ProductStatus `json:"status" gorm:"type:varchar(20);not null;default:active;index"`
	StockThreshold *int          `json:"stock_threshold"`
	Discount       float64       `json:"discount" gorm:"not null;default:0"`
	Rating         float64       `json:"rating" gorm:"not null;default:0"`
	UnitsSold      int           `json:"units_sold" gorm:"not null;default:0"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// EffectivePrice returns the unit price after applying the discount percent.
func (p *Product) EffectivePrice() float64 {
	if p.Discount > 0 {
		return p.UnitPrice * (1 - p.Discount/100)
	}
	return p.UnitPrice
}

// ComputeStatus derives a product's display status from its stock level and
// low-stock threshold. A manual inactive override is sticky: it wins over any
// stock level until the status is explicitly set back. The function is pure;
// callers persist the result.
func ComputeStatus(current ProductStatus, stock int, threshold *int) ProductStatus {
	if current == ProductInactive {
		return ProductInactive
	}
	if threshold != nil && stock <= *threshold {
		return ProductLowStock
	}
	return ProductActive
}
