package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un traslado.
const (
	TransferStatusCompleted = "completed"
	TransferStatusPartial   = "partial" // alguna línea falló al asentarse en el kardex
)

// StockTransfer traslado de stock entre dos bodegas. Cada línea genera dos
// asientos correlacionados en el kardex (TRANSFER_OUT origen, TRANSFER_IN
// destino) con el mismo Number como referencia.
type StockTransfer struct {
	ID              string
	OrgID           string
	Number          string // secuencial legible por organización, ej. ST/0001
	FromWarehouseID string
	ToWarehouseID   string
	Date            time.Time
	Status          string
	Notes           string
	Lines           []StockTransferLine
	CreatedAt       time.Time
	CreatedBy       string
}

// StockTransferLine línea de un traslado.
type StockTransferLine struct {
	ID         string
	TransferID string
	ItemID     string
	Quantity   decimal.Decimal // en la unidad de stock del ítem, siempre > 0
	Notes      string
}
