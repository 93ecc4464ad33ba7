package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Kardex-api/internal/domain/stock"
)

func TestBaseQuantity_RedondeaAEntero(t *testing.T) {
	got := stock.BaseQuantity(decimal.NewFromFloat(2.6), "PCS", "PCS", "", decimal.Zero)
	assert.True(t, got.Equal(decimal.NewFromInt(3)), "2.6 se redondea a 3")
}

// La unidad digitada no se convierte: unidad de empaque o unidad interna, la
// cantidad se toma tal cual (el stock se lleva en la unidad del ítem).
func TestBaseQuantity_UnidadEmpaqueSeTomaTalCual(t *testing.T) {
	perPkg := decimal.NewFromInt(12)
	enCajas := stock.BaseQuantity(decimal.NewFromInt(5), "CAJA", "PCS", "CAJA", perPkg)
	enPiezas := stock.BaseQuantity(decimal.NewFromInt(5), "PCS", "PCS", "CAJA", perPkg)
	assert.True(t, enCajas.Equal(decimal.NewFromInt(5)))
	assert.True(t, enCajas.Equal(enPiezas),
		"la normalización no multiplica por el factor de empaque")
}

// ──────────────────────────────────────────────────────────────────────────────
// ToPackagingBreakdown
// ──────────────────────────────────────────────────────────────────────────────

func TestToPackagingBreakdown_DesgloseBasico(t *testing.T) {
	bd, ok := stock.ToPackagingBreakdown(decimal.NewFromInt(27), "CAJA", decimal.NewFromInt(12))
	require.True(t, ok)
	assert.True(t, bd.Packages.Equal(decimal.NewFromInt(2)), "27 = 2 cajas de 12...")
	assert.True(t, bd.Remainder.Equal(decimal.NewFromInt(3)), "...más 3 sueltas")
}

// Propiedad de conservación: packages*perPkg + remainder == base, siempre.
func TestToPackagingBreakdown_Conservacion(t *testing.T) {
	perPkg := decimal.NewFromInt(12)
	for _, base := range []int64{0, 1, 11, 12, 13, 24, 27, 144, 1000} {
		baseQty := decimal.NewFromInt(base)
		bd, ok := stock.ToPackagingBreakdown(baseQty, "CAJA", perPkg)
		require.True(t, ok, "base=%d", base)
		total := bd.Packages.Mul(perPkg).Add(bd.Remainder)
		assert.True(t, total.Equal(baseQty),
			"base=%d: packages*perPkg + remainder debe reconstruir la base", base)
		assert.True(t, bd.Remainder.LessThan(perPkg),
			"base=%d: el sobrante nunca alcanza un empaque completo", base)
	}
}

func TestToPackagingBreakdown_SinEmpaqueNoAplica(t *testing.T) {
	_, ok := stock.ToPackagingBreakdown(decimal.NewFromInt(27), "", decimal.NewFromInt(12))
	assert.False(t, ok, "sin unidad de empaque no hay desglose")

	_, ok = stock.ToPackagingBreakdown(decimal.NewFromInt(27), "CAJA", decimal.NewFromInt(1))
	assert.False(t, ok, "factor <= 1 no define un empaque real")
}

// ──────────────────────────────────────────────────────────────────────────────
// FormatDisplay
// ──────────────────────────────────────────────────────────────────────────────

func TestFormatDisplay_Casos(t *testing.T) {
	perPkg := decimal.NewFromInt(12)

	casos := []struct {
		nombre string
		base   int64
		want   string
	}{
		{"empaques y sueltas", 27, "2 CAJA + 3 PCS"},
		{"solo empaques", 24, "2 CAJA"},
		{"solo sueltas", 3, "3 PCS"},
		{"cero", 0, "0 PCS"},
	}
	for _, c := range casos {
		got := stock.FormatDisplay(decimal.NewFromInt(c.base), "PCS", "CAJA", perPkg, true)
		assert.Equal(t, c.want, got, c.nombre)
	}
}

func TestFormatDisplay_SinDesglose(t *testing.T) {
	got := stock.FormatDisplay(decimal.NewFromInt(27), "PCS", "CAJA", decimal.NewFromInt(12), false)
	assert.Equal(t, "27 PCS", got, "con showPackaging=false se presenta plano")

	got = stock.FormatDisplay(decimal.NewFromInt(27), "PCS", "", decimal.Zero, true)
	assert.Equal(t, "27 PCS", got, "ítem sin empaque siempre se presenta plano")
}
