package repository

import "github.com/jhoicas/Kardex-api/internal/domain/entity"

// WarehouseStockRepository define el puerto para el stock cacheado por
// ítem×bodega. Get/GetForUpdate devuelven (nil, nil) si la fila no existe:
// la creación es perezosa y solo ocurre con un delta resultante positivo.
type WarehouseStockRepository interface {
	Get(itemID, warehouseID string) (*entity.WarehouseStock, error)
	// GetForUpdate bloquea la fila si existe (SELECT FOR UPDATE).
	GetForUpdate(itemID, warehouseID string) (*entity.WarehouseStock, error)
	Upsert(stock *entity.WarehouseStock) error
	// ListByItem devuelve la distribución del ítem por bodega, con nombre y
	// ubicación de cada bodega.
	ListByItem(orgID, itemID string) ([]*entity.StockDistribution, error)
}
