package stock

import (
	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// Tope del historial de movimientos cuando el caller no acota.
const maxHistoryLimit = 200

// QueryUseCase proyecciones de solo lectura sobre el kardex y los
// contadores: historial de movimientos y distribución por bodega.
type QueryUseCase struct {
	ledgerRepo repository.LedgerRepository
	stockRepo  repository.WarehouseStockRepository
	itemRepo   repository.ItemRepository
}

// NewQueryUseCase construye las consultas del kardex.
func NewQueryUseCase(
	ledgerRepo repository.LedgerRepository,
	stockRepo repository.WarehouseStockRepository,
	itemRepo repository.ItemRepository,
) *QueryUseCase {
	return &QueryUseCase{ledgerRepo: ledgerRepo, stockRepo: stockRepo, itemRepo: itemRepo}
}

// GetMovementHistory devuelve los asientos de un ítem, más recientes
// primero, acotados por limit. Lectura pura, sin estado de cursor.
func (uc *QueryUseCase) GetMovementHistory(orgID, itemID string, limit int) ([]*entity.LedgerEntry, error) {
	if limit <= 0 || limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.OrgID != orgID {
		return nil, domain.ErrNotFound
	}
	return uc.ledgerRepo.ListByItem(orgID, itemID, limit)
}

// GetMovement devuelve un asiento puntual del kardex, para inspeccionar el
// documento referenciado por un traslado o una factura.
func (uc *QueryUseCase) GetMovement(orgID, entryID string) (*entity.LedgerEntry, error) {
	entry, err := uc.ledgerRepo.GetByID(entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil || entry.OrgID != orgID {
		return nil, domain.ErrNotFound
	}
	return entry, nil
}

// GetStockDistribution devuelve dónde está el stock de un ítem: cantidad
// cacheada por bodega con niveles mín/máx y ubicación.
func (uc *QueryUseCase) GetStockDistribution(orgID, itemID string) ([]*entity.StockDistribution, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.OrgID != orgID {
		return nil, domain.ErrNotFound
	}
	return uc.stockRepo.ListByItem(orgID, itemID)
}
