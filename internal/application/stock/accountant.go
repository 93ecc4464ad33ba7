package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
	domstock "github.com/jhoicas/Kardex-api/internal/domain/stock"
)

// Accountant es la única autoridad que muta stock: asienta el movimiento en
// el kardex (append-only) y actualiza los contadores cacheados (ítem global y
// ítem×bodega) dentro de una misma transacción, con bloqueo de fila
// (SELECT FOR UPDATE) sobre el ítem para serializar movimientos concurrentes
// del mismo artículo.
type Accountant struct {
	txRunner      TxRunner
	itemRepo      repository.ItemRepository
	warehouseRepo repository.WarehouseRepository
}

// NewAccountant construye el contador del kardex.
func NewAccountant(txRunner TxRunner, itemRepo repository.ItemRepository, warehouseRepo repository.WarehouseRepository) *Accountant {
	return &Accountant{txRunner: txRunner, itemRepo: itemRepo, warehouseRepo: warehouseRepo}
}

// MovementInput evento que afecta stock. El signo del delta lo determina
// Type (domain/stock.SignedChange); Quantity puede venir con signo solo para
// ADJUSTMENT y CORRECTION.
type MovementInput struct {
	OrgID       string
	UserID      string
	ItemID      string
	WarehouseID string // "" = sin bodega: solo contador global
	Type        string
	Quantity    decimal.Decimal
	Unit        string     // "" = unidad en que se mantiene el stock del ítem
	Date        *time.Time // nil = ahora
	RatePerUnit *decimal.Decimal
	RefType     string
	RefID       string
	RefNumber   string
	PartyID     string
	PartyName   string
	Notes       string
}

// MovementResult resultado de asentar un movimiento.
type MovementResult struct {
	LedgerEntryID string
	QuantityAfter decimal.Decimal
	Warnings      []string
}

// RecordMovement valida el evento, calcula el delta con signo y, en una sola
// transacción: bloquea la fila del ítem, inserta el asiento inmutable con
// QuantityBefore/Change/After y reescribe los contadores cacheados.
// QuantityAfter se acota en cero; el asiento conserva el delta completo.
func (a *Accountant) RecordMovement(ctx context.Context, input MovementInput) (*MovementResult, error) {
	if input.ItemID == "" || input.OrgID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !domstock.ValidType(input.Type) {
		return nil, domain.ErrUnknownMovementType
	}

	// Validar bodega antes de abrir la transacción.
	if input.WarehouseID != "" {
		wh, err := a.warehouseRepo.GetByID(input.WarehouseID)
		if err != nil {
			return nil, err
		}
		if wh == nil || wh.OrgID != input.OrgID {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	date := now
	if input.Date != nil {
		date = *input.Date
	}

	var result MovementResult
	err := a.txRunner.Run(ctx, func(
		ledgerRepo repository.LedgerRepository,
		stockRepo repository.WarehouseStockRepository,
		itemRepo repository.ItemRepository,
	) error {
		// Bloquea la fila del ítem: serializa read-modify-write concurrentes
		// sobre el contador cacheado.
		item, err := itemRepo.GetForUpdate(input.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if item.OrgID != input.OrgID {
			return domain.ErrForbidden
		}

		unit := input.Unit
		if unit == "" {
			unit = item.BaseUnit
		}
		baseQty := domstock.BaseQuantity(input.Quantity, unit, item.BaseUnit, item.PackagingUnit, item.PerPackageQty)
		change, err := domstock.SignedChange(input.Type, baseQty)
		if err != nil {
			return err
		}

		before := item.CurrentStock
		after := domstock.ClampQuantity(before, change)

		var totalValue *decimal.Decimal
		if input.RatePerUnit != nil {
			tv := input.Quantity.Mul(*input.RatePerUnit)
			totalValue = &tv
		}

		entry := &entity.LedgerEntry{
			ID:             uuid.New().String(),
			OrgID:          input.OrgID,
			ItemID:         input.ItemID,
			WarehouseID:    input.WarehouseID,
			Type:           input.Type,
			Date:           date,
			QuantityBefore: before,
			QuantityChange: change,
			QuantityAfter:  after,
			EntryQuantity:  input.Quantity,
			EntryUnit:      unit,
			BaseQuantity:   baseQty,
			RatePerUnit:    input.RatePerUnit,
			TotalValue:     totalValue,
			RefType:        input.RefType,
			RefID:          input.RefID,
			RefNumber:      input.RefNumber,
			PartyID:        input.PartyID,
			PartyName:      input.PartyName,
			Notes:          input.Notes,
			CreatedAt:      now,
			CreatedBy:      input.UserID,
		}
		if err := ledgerRepo.Create(entry); err != nil {
			return err
		}
		if err := itemRepo.UpdateCurrentStock(item.ID, after); err != nil {
			return err
		}

		if input.WarehouseID != "" {
			if err := a.applyWarehouseChange(stockRepo, item, input.WarehouseID, change, now); err != nil {
				return err
			}
		}

		result = MovementResult{LedgerEntryID: entry.ID, QuantityAfter: after}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// applyWarehouseChange actualiza el contador ítem×bodega. La fila se crea de
// forma perezosa y solo cuando el delta resultante es positivo: un primer
// movimiento negativo hacia una bodega sin fila es un no-op sobre el cache
// por bodega (caso borde documentado del modelo, no se corrige).
func (a *Accountant) applyWarehouseChange(
	stockRepo repository.WarehouseStockRepository,
	item *entity.Item,
	warehouseID string,
	change decimal.Decimal,
	now time.Time,
) error {
	row, err := stockRepo.GetForUpdate(item.ID, warehouseID)
	if err != nil {
		return err
	}
	if row == nil {
		if change.LessThanOrEqual(decimal.Zero) {
			return nil
		}
		row = &entity.WarehouseStock{
			ItemID:      item.ID,
			WarehouseID: warehouseID,
			OrgID:       item.OrgID,
			Quantity:    decimal.Zero,
		}
	}
	row.Quantity = domstock.ClampQuantity(row.Quantity, change)
	row.UpdatedAt = now
	return stockRepo.Upsert(row)
}
