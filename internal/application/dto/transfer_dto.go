package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferLineRequest línea de un traslado.
type TransferLineRequest struct {
	ItemID   string          `json:"item_id"`
	Quantity decimal.Decimal `json:"quantity"`
	Notes    string          `json:"notes,omitempty"`
}

// CreateTransferRequest body para POST /api/transfers.
type CreateTransferRequest struct {
	FromWarehouseID string                `json:"from_warehouse_id"`
	ToWarehouseID   string                `json:"to_warehouse_id"`
	Date            *time.Time            `json:"date,omitempty"`
	Notes           string                `json:"notes,omitempty"`
	Lines           []TransferLineRequest `json:"lines"`
}

// CreateTransferResponse resultado de crear un traslado. Warnings lista las
// líneas cuyo asiento en el kardex falló después de crear el documento
// (traslado parcialmente aplicado, a conciliar manualmente).
type CreateTransferResponse struct {
	TransferID string   `json:"transfer_id"`
	Number     string   `json:"number"`
	Status     string   `json:"status"`
	Warnings   []string `json:"warnings,omitempty"`
}

// TransferLineResponse línea de un traslado en respuestas de lectura.
type TransferLineResponse struct {
	ItemID   string          `json:"item_id"`
	Quantity decimal.Decimal `json:"quantity"`
	Notes    string          `json:"notes,omitempty"`
}

// TransferResponse traslado con sus líneas.
type TransferResponse struct {
	ID              string                 `json:"id"`
	Number          string                 `json:"number"`
	FromWarehouseID string                 `json:"from_warehouse_id"`
	ToWarehouseID   string                 `json:"to_warehouse_id"`
	Date            time.Time              `json:"date"`
	Status          string                 `json:"status"`
	Notes           string                 `json:"notes,omitempty"`
	Lines           []TransferLineResponse `json:"lines"`
}
