package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

var _ repository.WarehouseStockRepository = (*WarehouseStockRepo)(nil)

// WarehouseStockRepo implementación de WarehouseStockRepository sobre
// PostgreSQL (usable con pool o tx). Devuelve (nil, nil) cuando la fila
// ítem×bodega no existe: la creación es perezosa y la decide el Accountant.
type WarehouseStockRepo struct {
	q Querier
}

// NewWarehouseStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWarehouseStockRepository(q Querier) *WarehouseStockRepo {
	return &WarehouseStockRepo{q: q}
}

// Get obtiene el stock cacheado de un ítem en una bodega.
func (r *WarehouseStockRepo) Get(itemID, warehouseID string) (*entity.WarehouseStock, error) {
	query := `
		SELECT item_id, warehouse_id, org_id, quantity, min_quantity, max_quantity, updated_at
		FROM warehouse_stock WHERE item_id = $1 AND warehouse_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, itemID, warehouseID))
}

// GetForUpdate obtiene el stock y bloquea la fila (SELECT FOR UPDATE).
func (r *WarehouseStockRepo) GetForUpdate(itemID, warehouseID string) (*entity.WarehouseStock, error) {
	query := `
		SELECT item_id, warehouse_id, org_id, quantity, min_quantity, max_quantity, updated_at
		FROM warehouse_stock WHERE item_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, itemID, warehouseID))
}

// Upsert inserta o actualiza la cantidad cacheada (por ítem y bodega).
func (r *WarehouseStockRepo) Upsert(stock *entity.WarehouseStock) error {
	query := `
		INSERT INTO warehouse_stock (item_id, warehouse_id, org_id, quantity, min_quantity, max_quantity, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (item_id, warehouse_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		stock.ItemID, stock.WarehouseID, stock.OrgID,
		stock.Quantity, stock.MinQuantity, stock.MaxQuantity,
	)
	if err != nil {
		return fmt.Errorf("upsert warehouse stock: %w", err)
	}
	return nil
}

// ListByItem devuelve la distribución del ítem por bodega con nombre y
// ubicación de cada bodega.
func (r *WarehouseStockRepo) ListByItem(orgID, itemID string) ([]*entity.StockDistribution, error) {
	query := `
		SELECT ws.warehouse_id, w.name, w.location, ws.quantity, ws.min_quantity, ws.max_quantity
		FROM warehouse_stock ws
		JOIN warehouses w ON w.id = ws.warehouse_id
		WHERE ws.org_id = $1 AND ws.item_id = $2
		ORDER BY w.name`
	rows, err := r.q.Query(context.Background(), query, orgID, itemID)
	if err != nil {
		return nil, fmt.Errorf("list stock by item: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockDistribution
	for rows.Next() {
		var d entity.StockDistribution
		if err := rows.Scan(&d.WarehouseID, &d.WarehouseName, &d.Location, &d.Quantity, &d.MinQuantity, &d.MaxQuantity); err != nil {
			return nil, fmt.Errorf("scan distribution: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

func (r *WarehouseStockRepo) scanOne(row pgx.Row) (*entity.WarehouseStock, error) {
	var s entity.WarehouseStock
	err := row.Scan(&s.ItemID, &s.WarehouseID, &s.OrgID, &s.Quantity, &s.MinQuantity, &s.MaxQuantity, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse stock: %w", err)
	}
	return &s, nil
}
