package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// SignedChange — el signo del delta lo determina el tipo de movimiento, no el
// caller. Solo ADJUSTMENT y CORRECTION respetan el signo de la cantidad.
// ──────────────────────────────────────────────────────────────────────────────

func TestSignedChange_EntradasSuman(t *testing.T) {
	qty := decimal.NewFromInt(30)
	for _, tipo := range []string{
		entity.MovementTypeIN,
		entity.MovementTypePURCHASE,
		entity.MovementTypeRETURN,
		entity.MovementTypeTRANSFERIN,
		entity.MovementTypeOPENING,
	} {
		change, err := stock.SignedChange(tipo, qty)
		require.NoError(t, err, tipo)
		assert.True(t, change.Equal(qty), "%s debe sumar +30", tipo)
	}
}

func TestSignedChange_SalidasRestan(t *testing.T) {
	qty := decimal.NewFromInt(30)
	for _, tipo := range []string{
		entity.MovementTypeOUT,
		entity.MovementTypeSALE,
		entity.MovementTypeTRANSFEROUT,
	} {
		change, err := stock.SignedChange(tipo, qty)
		require.NoError(t, err, tipo)
		assert.True(t, change.Equal(qty.Neg()), "%s debe restar -30", tipo)
	}
}

// El caller puede mandar la cantidad de una salida ya en negativo; el valor
// absoluto se toma igual y el tipo impone el signo.
func TestSignedChange_SalidaConCantidadNegativa(t *testing.T) {
	change, err := stock.SignedChange(entity.MovementTypeSALE, decimal.NewFromInt(-30))
	require.NoError(t, err)
	assert.True(t, change.Equal(decimal.NewFromInt(-30)),
		"SALE con cantidad negativa sigue restando 30, no suma")
}

func TestSignedChange_AjusteRespetaSigno(t *testing.T) {
	up, err := stock.SignedChange(entity.MovementTypeADJUSTMENT, decimal.NewFromInt(5))
	require.NoError(t, err)
	assert.True(t, up.Equal(decimal.NewFromInt(5)))

	down, err := stock.SignedChange(entity.MovementTypeCORRECTION, decimal.NewFromInt(-5))
	require.NoError(t, err)
	assert.True(t, down.Equal(decimal.NewFromInt(-5)),
		"CORRECTION negativa debe conservar el signo del caller")
}

// Conjunto cerrado: cualquier tipo fuera de la lista se rechaza, nunca se
// asienta con delta cero.
func TestSignedChange_TipoDesconocidoRechazado(t *testing.T) {
	_, err := stock.SignedChange("MERMA", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrUnknownMovementType)

	assert.False(t, stock.ValidType("MERMA"))
	assert.False(t, stock.ValidType(""))
	assert.True(t, stock.ValidType(entity.MovementTypeSALE))
}

// ──────────────────────────────────────────────────────────────────────────────
// ClampQuantity — piso en cero del contador cacheado
// ──────────────────────────────────────────────────────────────────────────────

func TestClampQuantity_CasosNormales(t *testing.T) {
	assert.True(t, stock.ClampQuantity(decimal.NewFromInt(100), decimal.NewFromInt(-30)).
		Equal(decimal.NewFromInt(70)), "100 - 30 = 70")
	assert.True(t, stock.ClampQuantity(decimal.NewFromInt(70), decimal.NewFromInt(50)).
		Equal(decimal.NewFromInt(120)), "70 + 50 = 120")
}

func TestClampQuantity_AcotaEnCero(t *testing.T) {
	after := stock.ClampQuantity(decimal.NewFromInt(10), decimal.NewFromInt(-25))
	assert.True(t, after.IsZero(),
		"una salida mayor al stock deja el contador en 0, nunca negativo")
}

func TestClampQuantity_ExactoACero(t *testing.T) {
	after := stock.ClampQuantity(decimal.NewFromInt(25), decimal.NewFromInt(-25))
	assert.True(t, after.IsZero())
}
