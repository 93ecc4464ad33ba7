package reports

import (
	"context"
	"time"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// Ventana por defecto del reporte de stock muerto.
const defaultDeadStockDays = 90

// ReportUseCase proyecciones de lectura sobre kardex y contadores para los
// tableros: stock bajo, stock muerto y detalle apertura/entradas/salidas/
// cierre. No muta datos.
type ReportUseCase struct {
	repo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// LowStock devuelve las filas ítem×bodega en o por debajo del mínimo.
func (uc *ReportUseCase) LowStock(ctx context.Context, orgID, warehouseID string) ([]dto.LowStockItemDTO, error) {
	rows, err := uc.repo.GetLowStock(ctx, orgID, warehouseID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockItemDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.LowStockItemDTO{
			ItemID:        r.ItemID,
			SKU:           r.SKU,
			ItemName:      r.ItemName,
			WarehouseID:   r.WarehouseID,
			WarehouseName: r.WarehouseName,
			Quantity:      r.Quantity,
			MinQuantity:   r.MinQuantity,
			Deficit:       r.MinQuantity.Sub(r.Quantity),
		})
	}
	return out, nil
}

// DeadStock devuelve ítems con existencias pero sin salidas en days días.
func (uc *ReportUseCase) DeadStock(ctx context.Context, orgID string, days int) ([]dto.DeadStockItemDTO, error) {
	if days <= 0 {
		days = defaultDeadStockDays
	}
	rows, err := uc.repo.GetDeadStock(ctx, orgID, days)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	out := make([]dto.DeadStockItemDTO, 0, len(rows))
	for _, r := range rows {
		idle := -1
		if r.LastOutward != nil {
			idle = int(now.Sub(*r.LastOutward).Hours() / 24)
		}
		out = append(out, dto.DeadStockItemDTO{
			ItemID:       r.ItemID,
			SKU:          r.SKU,
			ItemName:     r.ItemName,
			CurrentStock: r.CurrentStock,
			LastOutward:  r.LastOutward,
			DaysIdle:     idle,
		})
	}
	return out, nil
}

// StockDetail devuelve apertura/entradas/salidas/cierre del ítem en el rango.
func (uc *ReportUseCase) StockDetail(ctx context.Context, orgID, itemID string, from, to time.Time) (*dto.StockDetailDTO, error) {
	res, err := uc.repo.GetStockDetail(ctx, orgID, itemID, from, to)
	if err != nil {
		return nil, err
	}
	return &dto.StockDetailDTO{
		ItemID:  itemID,
		From:    from,
		To:      to,
		Opening: res.Opening,
		Inward:  res.Inward,
		Outward: res.Outward,
		Closing: res.Closing,
	}, nil
}
