package stock

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

// Dirección de cada tipo de movimiento. ADJUSTMENT y CORRECTION no aparecen:
// llevan la cantidad ya con signo.
var (
	inboundTypes = map[string]bool{
		entity.MovementTypeIN:         true,
		entity.MovementTypePURCHASE:   true,
		entity.MovementTypeRETURN:     true,
		entity.MovementTypeTRANSFERIN: true,
		entity.MovementTypeOPENING:    true,
	}
	outboundTypes = map[string]bool{
		entity.MovementTypeOUT:         true,
		entity.MovementTypeSALE:        true,
		entity.MovementTypeTRANSFEROUT: true,
	}
	signedTypes = map[string]bool{
		entity.MovementTypeADJUSTMENT: true,
		entity.MovementTypeCORRECTION: true,
	}
)

// ValidType informa si el tipo pertenece al conjunto cerrado de movimientos.
func ValidType(movementType string) bool {
	return inboundTypes[movementType] || outboundTypes[movementType] || signedTypes[movementType]
}

// SignedChange calcula el delta con signo que un movimiento aplica al stock:
// entradas suman |baseQty|, salidas restan |baseQty| y los tipos con signo
// (ADJUSTMENT, CORRECTION) toman baseQty tal cual la entregó el caller.
// Tipos fuera del conjunto cerrado se rechazan con ErrUnknownMovementType.
func SignedChange(movementType string, baseQty decimal.Decimal) (decimal.Decimal, error) {
	switch {
	case inboundTypes[movementType]:
		return baseQty.Abs(), nil
	case outboundTypes[movementType]:
		return baseQty.Abs().Neg(), nil
	case signedTypes[movementType]:
		return baseQty, nil
	}
	return decimal.Zero, domain.ErrUnknownMovementType
}

// ClampQuantity aplica el piso en cero del contador cacheado:
// after = max(0, before + change). El asiento del kardex conserva el delta
// completo aunque el cache quede acotado.
func ClampQuantity(before, change decimal.Decimal) decimal.Decimal {
	after := before.Add(change)
	if after.IsNegative() {
		return decimal.Zero
	}
	return after
}
