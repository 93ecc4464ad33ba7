package entity

import "time"

// Organization representa la organización (tenant). Todo el stock,
// los ítems y las bodegas pertenecen a una organización.
type Organization struct {
	ID        string
	Name      string
	TaxID     string // NIT / identificación fiscal
	Status    string // active, suspended
	CreatedAt time.Time
	UpdatedAt time.Time
}
