package entities

import "time"

// ProductStatus is the catalog lifecycle state of a product.
type ProductStatus string

const (
	ProductStatusDraft    ProductStatus = "draft"
	ProductStatusActive   ProductStatus = "active"
	ProductStatusArchived ProductStatus = "archived"
)

func IsValidProductStatus(status ProductStatus) bool {
	switch status {
	case ProductStatusDraft, ProductStatusActive, ProductStatusArchived:
		return true
	default:
		return false
	}
}

// Product is one catalog record managed from the admin console.
type Product struct {
	ProductID   string
	Name        string
	Description string
	SKU         string
	PriceCents  int64
	Status      ProductStatus
	CategoryID  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
