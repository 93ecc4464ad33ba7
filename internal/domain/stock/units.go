// Package stock contiene la aritmética pura del kardex: normalización de
// unidades/empaque y cálculo del delta con signo por tipo de movimiento.
// Funciones totales, sin I/O.
package stock

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BaseQuantity normaliza una cantidad digitada a la unidad en que se mantiene
// el stock del ítem. El stock se lleva en unidades de empaque cuando el ítem
// se maneja empacado: si la unidad digitada es la de empaque, la cantidad se
// toma tal cual (redondeada). Para cualquier otra unidad también se toma tal
// cual: no se intenta convertir unidad interna → empaque (limitación
// documentada del modelo, no un bug a corregir en silencio).
func BaseQuantity(entryQty decimal.Decimal, entryUnit, baseUnit, packagingUnit string, perPackageQty decimal.Decimal) decimal.Decimal {
	if packagingUnit != "" && entryUnit == packagingUnit {
		// El stock del ítem ya se mantiene en unidades de empaque.
		return entryQty.Round(0)
	}
	return entryQty.Round(0)
}

// PackagingBreakdown desglose de una cantidad base en empaques completos más
// unidades sueltas.
type PackagingBreakdown struct {
	Packages  decimal.Decimal // floor(base / perPackageQty)
	Remainder decimal.Decimal // base mod perPackageQty
}

// ToPackagingBreakdown calcula el desglose en empaques. Devuelve ok=false si
// el ítem no tiene unidad de empaque o el factor no supera 1 (sin desglose).
func ToPackagingBreakdown(baseQty decimal.Decimal, packagingUnit string, perPackageQty decimal.Decimal) (PackagingBreakdown, bool) {
	if packagingUnit == "" || perPackageQty.LessThanOrEqual(decimal.NewFromInt(1)) {
		return PackagingBreakdown{}, false
	}
	packages := baseQty.Div(perPackageQty).Floor()
	remainder := baseQty.Sub(packages.Mul(perPackageQty))
	return PackagingBreakdown{Packages: packages, Remainder: remainder}, true
}

// FormatDisplay presenta una cantidad base en texto legible. Sin desglose (o
// con showPackaging=false) devuelve "<qty> <unit>"; con desglose devuelve
// "<empaques> <unidadEmpaque> + <sueltas> <unidadBase>", omitiendo el término
// que sea cero. Cero empaques y cero sueltas se presenta como "0 <unit>".
func FormatDisplay(baseQty decimal.Decimal, baseUnit, packagingUnit string, perPackageQty decimal.Decimal, showPackaging bool) string {
	if !showPackaging {
		return fmt.Sprintf("%s %s", baseQty.String(), baseUnit)
	}
	bd, ok := ToPackagingBreakdown(baseQty, packagingUnit, perPackageQty)
	if !ok {
		return fmt.Sprintf("%s %s", baseQty.String(), baseUnit)
	}
	switch {
	case bd.Packages.IsZero() && bd.Remainder.IsZero():
		return fmt.Sprintf("0 %s", baseUnit)
	case bd.Remainder.IsZero():
		return fmt.Sprintf("%s %s", bd.Packages.String(), packagingUnit)
	case bd.Packages.IsZero():
		return fmt.Sprintf("%s %s", bd.Remainder.String(), baseUnit)
	}
	return fmt.Sprintf("%s %s + %s %s", bd.Packages.String(), packagingUnit, bd.Remainder.String(), baseUnit)
}
