package stock

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
	domstock "github.com/jhoicas/Kardex-api/internal/domain/stock"
)

// ReconcileUseCase reconstruye los contadores cacheados de un ítem
// reproduciendo su kardex desde cero: los contadores son una proyección
// derivada y el kardex la fuente de verdad. Pensado para ejecutarse tras un
// warning de escritura parcial (ej. traslado a medias).
type ReconcileUseCase struct {
	txRunner TxRunner
}

// NewReconcileUseCase construye el caso de uso de reconciliación.
func NewReconcileUseCase(txRunner TxRunner) *ReconcileUseCase {
	return &ReconcileUseCase{txRunner: txRunner}
}

// ReconcileResult contadores antes y después de la reconstrucción.
type ReconcileResult struct {
	ItemID        string
	PreviousStock decimal.Decimal
	RebuiltStock  decimal.Decimal
	Drift         decimal.Decimal
	EntriesSeen   int
}

// RebuildItemStock reproduce los asientos en orden cronológico aplicando la
// misma regla de acotación que el asentador (after = max(0, before+change)) y
// reescribe el contador global y los contadores por bodega. Todo dentro de
// una transacción, con la fila del ítem bloqueada para que no se cuelen
// movimientos a mitad del replay.
func (uc *ReconcileUseCase) RebuildItemStock(ctx context.Context, orgID, itemID string) (*ReconcileResult, error) {
	var result ReconcileResult
	err := uc.txRunner.Run(ctx, func(
		ledgerRepo repository.LedgerRepository,
		stockRepo repository.WarehouseStockRepository,
		itemRepo repository.ItemRepository,
	) error {
		item, err := itemRepo.GetForUpdate(itemID)
		if err != nil {
			return err
		}
		if item == nil || item.OrgID != orgID {
			return domain.ErrNotFound
		}
		// Copia del contador antes de reescribirlo: el puntero del repo puede
		// quedar aliasado con el store y UpdateCurrentStock lo mutaría.
		previous := item.CurrentStock

		entries, err := ledgerRepo.ListByItemAsc(orgID, itemID)
		if err != nil {
			return err
		}

		global := decimal.Zero
		perWarehouse := map[string]decimal.Decimal{}
		for _, e := range entries {
			global = domstock.ClampQuantity(global, e.QuantityChange)
			if e.WarehouseID == "" {
				continue
			}
			qty, exists := perWarehouse[e.WarehouseID]
			if !exists && e.QuantityChange.LessThanOrEqual(decimal.Zero) {
				// Misma semántica perezosa del asentador: sin fila previa, un
				// delta negativo no crea el contador por bodega.
				continue
			}
			perWarehouse[e.WarehouseID] = domstock.ClampQuantity(qty, e.QuantityChange)
		}

		now := time.Now()
		if err := itemRepo.UpdateCurrentStock(itemID, global); err != nil {
			return err
		}
		for warehouseID, qty := range perWarehouse {
			row, err := stockRepo.GetForUpdate(itemID, warehouseID)
			if err != nil {
				return err
			}
			if row == nil {
				row = &entity.WarehouseStock{ItemID: itemID, WarehouseID: warehouseID, OrgID: orgID}
			}
			row.Quantity = qty
			row.UpdatedAt = now
			if err := stockRepo.Upsert(row); err != nil {
				return err
			}
		}

		result = ReconcileResult{
			ItemID:        itemID,
			PreviousStock: previous,
			RebuiltStock:  global,
			Drift:         global.Sub(previous),
			EntriesSeen:   len(entries),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
