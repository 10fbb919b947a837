package entities

import "time"

// Category is one node of the catalog taxonomy.
type Category struct {
	CategoryID  string
	Name        string
	Slug        string
	Description string
	ParentID    string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
