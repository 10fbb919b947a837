package entities

import "time"

// StockRecord tracks on-hand quantity for one product at one location.
type StockRecord struct {
	ProductID         string
	ProductName       string
	SKU               string
	Quantity          int
	LowStockThreshold int
	Location          string
	UpdatedAt         time.Time
}

// IsLowStock reports whether the record has fallen to or below its
// reorder threshold.
func (r StockRecord) IsLowStock() bool {
	return r.Quantity <= r.LowStockThreshold
}

// Adjustment is one applied stock movement, kept for the audit trail.
type Adjustment struct {
	AdjustmentID string
	ProductID    string
	Delta        int
	Reason       string
	ActorID      string
	AppliedAt    time.Time
}
