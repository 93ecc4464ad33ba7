package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockItemDTO fila del reporte de stock bajo.
type LowStockItemDTO struct {
	ItemID        string          `json:"item_id"`
	SKU           string          `json:"sku"`
	ItemName      string          `json:"item_name"`
	WarehouseID   string          `json:"warehouse_id"`
	WarehouseName string          `json:"warehouse_name"`
	Quantity      decimal.Decimal `json:"quantity"`
	MinQuantity   decimal.Decimal `json:"min_quantity"`
	Deficit       decimal.Decimal `json:"deficit"` // MinQuantity - Quantity
}

// DeadStockItemDTO fila del reporte de stock muerto.
type DeadStockItemDTO struct {
	ItemID       string          `json:"item_id"`
	SKU          string          `json:"sku"`
	ItemName     string          `json:"item_name"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	LastOutward  *time.Time      `json:"last_outward,omitempty"`
	DaysIdle     int             `json:"days_idle"` // -1 = nunca ha tenido salida
}

// StockDetailDTO apertura/entradas/salidas/cierre de un ítem en un rango.
type StockDetailDTO struct {
	ItemID  string          `json:"item_id"`
	From    time.Time       `json:"from"`
	To      time.Time       `json:"to"`
	Opening decimal.Decimal `json:"opening"`
	Inward  decimal.Decimal `json:"inward"`
	Outward decimal.Decimal `json:"outward"`
	Closing decimal.Decimal `json:"closing"`
}
