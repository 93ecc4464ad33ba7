package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

const ledgerColumns = `id, org_id, item_id, warehouse_id, type, date,
		quantity_before, quantity_change, quantity_after,
		entry_quantity, entry_unit, base_quantity, rate_per_unit, total_value,
		ref_type, ref_id, ref_number, party_id, party_name, notes, created_at, created_by`

// LedgerRepo implementación del kardex sobre PostgreSQL (usable con pool o
// tx). Solo INSERT y SELECT: la tabla es append-only y no existe camino de
// UPDATE ni DELETE sobre asientos.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador del kardex. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Create persiste un asiento del kardex.
func (r *LedgerRepo) Create(entry *entity.LedgerEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_ledger (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	warehouseID := (*string)(nil)
	if entry.WarehouseID != "" {
		warehouseID = &entry.WarehouseID
	}
	createdBy := (*string)(nil)
	if entry.CreatedBy != "" {
		createdBy = &entry.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.OrgID, entry.ItemID, warehouseID, entry.Type, entry.Date,
		entry.QuantityBefore, entry.QuantityChange, entry.QuantityAfter,
		entry.EntryQuantity, entry.EntryUnit, entry.BaseQuantity, entry.RatePerUnit, entry.TotalValue,
		entry.RefType, entry.RefID, entry.RefNumber, entry.PartyID, entry.PartyName,
		entry.Notes, entry.CreatedAt, createdBy,
	)
	if err != nil {
		return fmt.Errorf("create ledger entry: %w", err)
	}
	return nil
}

// GetByID obtiene un asiento por ID. Devuelve (nil, nil) si no existe.
func (r *LedgerRepo) GetByID(id string) (*entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM stock_ledger WHERE id = $1`
	entry, err := r.scanOne(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// ListByItem devuelve los asientos de un ítem, más recientes primero.
func (r *LedgerRepo) ListByItem(orgID, itemID string, limit int) ([]*entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM stock_ledger
		WHERE org_id = $1 AND item_id = $2
		ORDER BY date DESC, created_at DESC LIMIT $3`
	return r.list(query, orgID, itemID, limit)
}

// ListByItemAsc devuelve todos los asientos de un ítem en orden cronológico,
// para replay/reconciliación.
func (r *LedgerRepo) ListByItemAsc(orgID, itemID string) ([]*entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM stock_ledger
		WHERE org_id = $1 AND item_id = $2
		ORDER BY date ASC, created_at ASC`
	return r.list(query, orgID, itemID)
}

func (r *LedgerRepo) list(query string, args ...any) ([]*entity.LedgerEntry, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.LedgerEntry
	for rows.Next() {
		entry, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, entry)
	}
	return list, rows.Err()
}

func (r *LedgerRepo) scanOne(row pgx.Row) (*entity.LedgerEntry, error) {
	var e entity.LedgerEntry
	var warehouseID, createdBy *string
	err := row.Scan(
		&e.ID, &e.OrgID, &e.ItemID, &warehouseID, &e.Type, &e.Date,
		&e.QuantityBefore, &e.QuantityChange, &e.QuantityAfter,
		&e.EntryQuantity, &e.EntryUnit, &e.BaseQuantity, &e.RatePerUnit, &e.TotalValue,
		&e.RefType, &e.RefID, &e.RefNumber, &e.PartyID, &e.PartyName,
		&e.Notes, &e.CreatedAt, &createdBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan ledger entry: %w", err)
	}
	if warehouseID != nil {
		e.WarehouseID = *warehouseID
	}
	if createdBy != nil {
		e.CreatedBy = *createdBy
	}
	return &e, nil
}
