package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// LowStockRow fila cruda del reporte de stock bajo: cantidad cacheada en la
// bodega igual o por debajo del mínimo configurado.
type LowStockRow struct {
	ItemID        string
	SKU           string
	ItemName      string
	WarehouseID   string
	WarehouseName string
	Quantity      decimal.Decimal
	MinQuantity   decimal.Decimal
}

// DeadStockRow fila cruda del reporte de stock muerto: ítems con existencias
// pero sin salidas del kardex en la ventana consultada.
type DeadStockRow struct {
	ItemID       string
	SKU          string
	ItemName     string
	CurrentStock decimal.Decimal
	LastOutward  *time.Time // nil = nunca ha tenido salida
}

// StockDetailResult apertura/entradas/salidas/cierre de un ítem en un rango.
// Apertura = QuantityAfter del último asiento anterior al rango (el kardex es
// la fuente de verdad, no el contador cacheado).
type StockDetailResult struct {
	Opening decimal.Decimal
	Inward  decimal.Decimal
	Outward decimal.Decimal
	Closing decimal.Decimal
}

// ReportRepository define las consultas de lectura sobre kardex y contadores.
// Las implementaciones son read-only (no modifican datos).
type ReportRepository interface {
	// GetLowStock devuelve las filas ítem×bodega con cantidad <= mínimo.
	// warehouseID vacío = todas las bodegas de la organización.
	GetLowStock(ctx context.Context, orgID, warehouseID string) ([]LowStockRow, error)

	// GetDeadStock devuelve ítems con stock > 0 y sin movimientos de salida
	// en los últimos days días.
	GetDeadStock(ctx context.Context, orgID string, days int) ([]DeadStockRow, error)

	// GetStockDetail devuelve apertura/entradas/salidas/cierre del ítem en el
	// rango [from, to].
	GetStockDetail(ctx context.Context, orgID, itemID string, from, to time.Time) (*StockDetailResult, error)
}
