package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item artículo de inventario. El stock se mantiene en la unidad base
// (o en la unidad de empaque si el ítem se maneja empacado, ver domain/stock).
// CurrentStock es el contador cacheado global; la fuente de verdad es el kardex.
type Item struct {
	ID            string
	OrgID         string
	SKU           string
	Name          string
	BaseUnit      string          // unidad base, ej. PCS
	PackagingUnit string          // unidad de empaque, ej. CAJA ("" = sin empaque)
	PerPackageQty decimal.Decimal // unidades base por empaque (<=1 = sin desglose)
	CurrentStock  decimal.Decimal // contador cacheado, derivado del kardex
	MinStock      decimal.Decimal // nivel mínimo para alertas
	SalePrice     decimal.Decimal
	PurchasePrice decimal.Decimal
	Status        string // active, archived
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
