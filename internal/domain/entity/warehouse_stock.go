package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WarehouseStock stock cacheado de un ítem en una bodega (fila materializada
// por par ítem×bodega). Se crea de forma perezosa con el primer movimiento
// positivo hacia la bodega. Invariante: Quantity nunca se guarda negativa.
type WarehouseStock struct {
	ItemID      string
	WarehouseID string
	OrgID       string
	Quantity    decimal.Decimal
	MinQuantity decimal.Decimal
	MaxQuantity decimal.Decimal
	UpdatedAt   time.Time
}

// StockDistribution fila de la proyección "dónde está el stock de un ítem":
// cantidad cacheada por bodega con sus niveles y la ubicación de la bodega.
type StockDistribution struct {
	WarehouseID   string
	WarehouseName string
	Location      string
	Quantity      decimal.Decimal
	MinQuantity   decimal.Decimal
	MaxQuantity   decimal.Decimal
}
