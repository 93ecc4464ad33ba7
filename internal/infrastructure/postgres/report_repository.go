package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de lectura sobre kardex y contadores (read-only).
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// GetLowStock devuelve las filas ítem×bodega con cantidad <= mínimo.
// El mínimo efectivo es el de la fila de bodega si está configurado (> 0),
// si no el mínimo global del ítem.
func (r *ReportRepo) GetLowStock(ctx context.Context, orgID, warehouseID string) ([]repository.LowStockRow, error) {
	query := `
		SELECT i.id, i.sku, i.name, ws.warehouse_id, w.name,
			ws.quantity,
			CASE WHEN ws.min_quantity > 0 THEN ws.min_quantity ELSE i.min_stock END AS min_qty
		FROM warehouse_stock ws
		JOIN items i ON i.id = ws.item_id
		JOIN warehouses w ON w.id = ws.warehouse_id
		WHERE ws.org_id = $1
			AND ($2 = '' OR ws.warehouse_id = $2)
			AND ws.quantity <= CASE WHEN ws.min_quantity > 0 THEN ws.min_quantity ELSE i.min_stock END
			AND i.status = 'active'
		ORDER BY w.name, i.name`
	rows, err := r.q.Query(ctx, query, orgID, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("low stock query: %w", err)
	}
	defer rows.Close()
	var list []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(&row.ItemID, &row.SKU, &row.ItemName, &row.WarehouseID,
			&row.WarehouseName, &row.Quantity, &row.MinQuantity); err != nil {
			return nil, fmt.Errorf("scan low stock row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// GetDeadStock devuelve ítems con stock > 0 cuya última salida del kardex
// (quantity_change < 0) es anterior a la ventana, o que nunca han tenido
// salida.
func (r *ReportRepo) GetDeadStock(ctx context.Context, orgID string, days int) ([]repository.DeadStockRow, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	query := `
		SELECT i.id, i.sku, i.name, i.current_stock, lastout.last_date
		FROM items i
		LEFT JOIN LATERAL (
			SELECT max(sl.date) AS last_date
			FROM stock_ledger sl
			WHERE sl.item_id = i.id AND sl.quantity_change < 0
		) lastout ON true
		WHERE i.org_id = $1
			AND i.status = 'active'
			AND i.current_stock > 0
			AND (lastout.last_date IS NULL OR lastout.last_date < $2)
		ORDER BY lastout.last_date NULLS FIRST, i.name`
	rows, err := r.q.Query(ctx, query, orgID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("dead stock query: %w", err)
	}
	defer rows.Close()
	var list []repository.DeadStockRow
	for rows.Next() {
		var row repository.DeadStockRow
		if err := rows.Scan(&row.ItemID, &row.SKU, &row.ItemName, &row.CurrentStock, &row.LastOutward); err != nil {
			return nil, fmt.Errorf("scan dead stock row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// GetStockDetail devuelve apertura/entradas/salidas/cierre del ítem en el
// rango. La apertura es el QuantityAfter del último asiento anterior al
// rango (el kardex manda, no el contador cacheado); el cierre se deriva como
// apertura + entradas - salidas.
func (r *ReportRepo) GetStockDetail(ctx context.Context, orgID, itemID string, from, to time.Time) (*repository.StockDetailResult, error) {
	opening := decimal.Zero
	openQuery := `
		SELECT quantity_after FROM stock_ledger
		WHERE org_id = $1 AND item_id = $2 AND date < $3
		ORDER BY date DESC, created_at DESC LIMIT 1`
	err := r.q.QueryRow(ctx, openQuery, orgID, itemID, from).Scan(&opening)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("stock detail opening: %w", err)
	}

	var inward, outward decimal.Decimal
	sumQuery := `
		SELECT
			COALESCE(sum(quantity_change) FILTER (WHERE quantity_change > 0), 0),
			COALESCE(-sum(quantity_change) FILTER (WHERE quantity_change < 0), 0)
		FROM stock_ledger
		WHERE org_id = $1 AND item_id = $2 AND date >= $3 AND date <= $4`
	if err := r.q.QueryRow(ctx, sumQuery, orgID, itemID, from, to).Scan(&inward, &outward); err != nil {
		return nil, fmt.Errorf("stock detail sums: %w", err)
	}

	return &repository.StockDetailResult{
		Opening: opening,
		Inward:  inward,
		Outward: outward,
		Closing: opening.Add(inward).Sub(outward),
	}, nil
}
