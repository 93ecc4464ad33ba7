package entity

import "time"

// Warehouse bodega de una organización.
type Warehouse struct {
	ID        string
	OrgID     string
	Name      string
	Location  string
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
