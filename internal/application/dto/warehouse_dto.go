package dto

// CreateWarehouseRequest body para POST /api/warehouses.
type CreateWarehouseRequest struct {
	Name      string `json:"name"`
	Location  string `json:"location,omitempty"`
	IsDefault bool   `json:"is_default,omitempty"`
}

// UpdateWarehouseRequest body para PUT /api/warehouses/:id (campos opcionales).
type UpdateWarehouseRequest struct {
	Name      *string `json:"name,omitempty"`
	Location  *string `json:"location,omitempty"`
	IsDefault *bool   `json:"is_default,omitempty"`
}

// WarehouseResponse representación HTTP de una bodega.
type WarehouseResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Location  string `json:"location,omitempty"`
	IsDefault bool   `json:"is_default"`
}
