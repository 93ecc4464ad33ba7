package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordMovementRequest body para POST /api/stock/movements. El signo del
// delta lo determina el tipo de movimiento, no el número digitado; solo
// ADJUSTMENT y CORRECTION respetan el signo de la cantidad.
type RecordMovementRequest struct {
	ItemID      string           `json:"item_id"`
	WarehouseID string           `json:"warehouse_id,omitempty"`
	Type        string           `json:"type"`
	Quantity    decimal.Decimal  `json:"quantity"`
	Unit        string           `json:"unit,omitempty"` // vacío = unidad del ítem
	Date        *time.Time       `json:"date,omitempty"`
	RatePerUnit *decimal.Decimal `json:"rate_per_unit,omitempty"`
	RefType     string           `json:"ref_type,omitempty"`
	RefID       string           `json:"ref_id,omitempty"`
	RefNumber   string           `json:"ref_number,omitempty"`
	PartyID     string           `json:"party_id,omitempty"`
	PartyName   string           `json:"party_name,omitempty"`
	Notes       string           `json:"notes,omitempty"`
}

// RecordMovementResponse resultado de asentar un movimiento.
type RecordMovementResponse struct {
	LedgerEntryID string          `json:"ledger_entry_id"`
	QuantityAfter decimal.Decimal `json:"quantity_after"`
	Warnings      []string        `json:"warnings,omitempty"`
}

// LedgerEntryResponse asiento del kardex para el historial de movimientos.
type LedgerEntryResponse struct {
	ID             string           `json:"id"`
	Type           string           `json:"type"`
	Date           time.Time        `json:"date"`
	WarehouseID    string           `json:"warehouse_id,omitempty"`
	QuantityBefore decimal.Decimal  `json:"quantity_before"`
	QuantityChange decimal.Decimal  `json:"quantity_change"`
	QuantityAfter  decimal.Decimal  `json:"quantity_after"`
	EntryQuantity  decimal.Decimal  `json:"entry_quantity"`
	EntryUnit      string           `json:"entry_unit"`
	RatePerUnit    *decimal.Decimal `json:"rate_per_unit,omitempty"`
	TotalValue     *decimal.Decimal `json:"total_value,omitempty"`
	RefType        string           `json:"ref_type,omitempty"`
	RefNumber      string           `json:"ref_number,omitempty"`
	PartyName      string           `json:"party_name,omitempty"`
	Notes          string           `json:"notes,omitempty"`
	CreatedBy      string           `json:"created_by,omitempty"`
}

// StockDistributionResponse cantidad cacheada de un ítem en una bodega.
type StockDistributionResponse struct {
	WarehouseID   string          `json:"warehouse_id"`
	WarehouseName string          `json:"warehouse_name"`
	Location      string          `json:"location,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	MinQuantity   decimal.Decimal `json:"min_quantity"`
	MaxQuantity   decimal.Decimal `json:"max_quantity"`
}

// ReconcileResponse resultado de reconstruir los contadores de un ítem
// reproduciendo su kardex.
type ReconcileResponse struct {
	ItemID        string          `json:"item_id"`
	PreviousStock decimal.Decimal `json:"previous_stock"`
	RebuiltStock  decimal.Decimal `json:"rebuilt_stock"`
	Drift         decimal.Decimal `json:"drift"` // rebuilt - previous
	EntriesSeen   int             `json:"entries_seen"`
}
