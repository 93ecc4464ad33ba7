package dto

import "github.com/shopspring/decimal"

// CreateItemRequest body para POST /api/items.
type CreateItemRequest struct {
	SKU           string           `json:"sku"`
	Name          string           `json:"name"`
	BaseUnit      string           `json:"base_unit"`
	PackagingUnit string           `json:"packaging_unit,omitempty"`
	PerPackageQty *decimal.Decimal `json:"per_package_qty,omitempty"`
	OpeningStock  *decimal.Decimal `json:"opening_stock,omitempty"` // genera asiento OPENING
	MinStock      *decimal.Decimal `json:"min_stock,omitempty"`
	SalePrice     *decimal.Decimal `json:"sale_price,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
}

// UpdateItemRequest body para PUT /api/items/:id (campos opcionales).
type UpdateItemRequest struct {
	Name          *string          `json:"name,omitempty"`
	PackagingUnit *string          `json:"packaging_unit,omitempty"`
	PerPackageQty *decimal.Decimal `json:"per_package_qty,omitempty"`
	MinStock      *decimal.Decimal `json:"min_stock,omitempty"`
	SalePrice     *decimal.Decimal `json:"sale_price,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	Status        *string          `json:"status,omitempty"`
}

// ItemResponse representación HTTP de un ítem. StockDisplay presenta el stock
// con desglose de empaque cuando aplica (ej. "3 CAJA + 2 PCS").
type ItemResponse struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	BaseUnit      string          `json:"base_unit"`
	PackagingUnit string          `json:"packaging_unit,omitempty"`
	PerPackageQty decimal.Decimal `json:"per_package_qty"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
	StockDisplay  string          `json:"stock_display"`
	MinStock      decimal.Decimal `json:"min_stock"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Status        string          `json:"status"`
}
