package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del kardex. Conjunto cerrado: cualquier otro valor
// se rechaza con domain.ErrUnknownMovementType.
const (
	MovementTypeIN          = "IN"           // entrada genérica
	MovementTypeOUT         = "OUT"          // salida genérica
	MovementTypeADJUSTMENT  = "ADJUSTMENT"   // ajuste manual (cantidad ya con signo)
	MovementTypeSALE        = "SALE"         // venta
	MovementTypePURCHASE    = "PURCHASE"     // compra
	MovementTypeRETURN      = "RETURN"       // devolución de cliente
	MovementTypeTRANSFERIN  = "TRANSFER_IN"  // entrada por traslado
	MovementTypeTRANSFEROUT = "TRANSFER_OUT" // salida por traslado
	MovementTypeOPENING     = "OPENING"      // saldo inicial
	MovementTypeCORRECTION  = "CORRECTION"   // corrección (cantidad ya con signo)
)

// LedgerEntry asiento del kardex: registro inmutable de un evento que afecta
// stock. Se crea exactamente una vez y nunca se actualiza ni se borra.
// QuantityAfter = max(0, QuantityBefore + QuantityChange): el contador
// cacheado se acota en cero, pero QuantityChange conserva el delta completo
// solicitado (el kardex es honesto aunque el cache haga piso en cero).
type LedgerEntry struct {
	ID          string
	OrgID       string
	ItemID      string
	WarehouseID string // "" = movimiento sin bodega específica
	Type        string
	Date        time.Time

	QuantityBefore decimal.Decimal
	QuantityChange decimal.Decimal // con signo
	QuantityAfter  decimal.Decimal

	EntryQuantity decimal.Decimal // cantidad tal como la digitó el usuario
	EntryUnit     string          // unidad digitada (puede ser la de empaque)
	BaseQuantity  decimal.Decimal // EntryQuantity normalizada a la unidad del ítem

	RatePerUnit *decimal.Decimal // opcional
	TotalValue  *decimal.Decimal // EntryQuantity × RatePerUnit

	RefType   string // INVOICE, PURCHASE, TRANSFER, ADJUSTMENT, ...
	RefID     string
	RefNumber string // número legible del documento origen (ej. ST/0001)

	PartyID   string
	PartyName string
	Notes     string

	CreatedAt time.Time
	CreatedBy string // UserID
}
