package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación de TransferRepository sobre PostgreSQL
// (cabecera + líneas, usable con pool o tx).
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador de traslados.
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create persiste la cabecera y las líneas del traslado.
func (r *TransferRepo) Create(transfer *entity.StockTransfer) error {
	ctx := context.Background()
	query := `
		INSERT INTO stock_transfers (id, org_id, number, from_warehouse_id, to_warehouse_id, date, status, notes, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		transfer.ID, transfer.OrgID, transfer.Number, transfer.FromWarehouseID,
		transfer.ToWarehouseID, transfer.Date, transfer.Status, transfer.Notes,
		transfer.CreatedAt, transfer.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create transfer: %w", err)
	}
	lineQuery := `
		INSERT INTO stock_transfer_lines (id, transfer_id, item_id, quantity, notes)
		VALUES ($1, $2, $3, $4, $5)`
	for _, line := range transfer.Lines {
		if _, err := r.q.Exec(ctx, lineQuery, line.ID, line.TransferID, line.ItemID, line.Quantity, line.Notes); err != nil {
			return fmt.Errorf("create transfer line: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un traslado con sus líneas. Devuelve (nil, nil) si no existe.
func (r *TransferRepo) GetByID(orgID, id string) (*entity.StockTransfer, error) {
	ctx := context.Background()
	query := `
		SELECT id, org_id, number, from_warehouse_id, to_warehouse_id, date, status, notes, created_at, created_by
		FROM stock_transfers WHERE org_id = $1 AND id = $2`
	var t entity.StockTransfer
	err := r.q.QueryRow(ctx, query, orgID, id).Scan(
		&t.ID, &t.OrgID, &t.Number, &t.FromWarehouseID, &t.ToWarehouseID,
		&t.Date, &t.Status, &t.Notes, &t.CreatedAt, &t.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}
	lineQuery := `
		SELECT id, transfer_id, item_id, quantity, notes
		FROM stock_transfer_lines WHERE transfer_id = $1`
	rows, err := r.q.Query(ctx, lineQuery, id)
	if err != nil {
		return nil, fmt.Errorf("get transfer lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var line entity.StockTransferLine
		if err := rows.Scan(&line.ID, &line.TransferID, &line.ItemID, &line.Quantity, &line.Notes); err != nil {
			return nil, fmt.Errorf("scan transfer line: %w", err)
		}
		t.Lines = append(t.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateStatus actualiza solo el estado de la cabecera (completed/partial).
func (r *TransferRepo) UpdateStatus(id, status string) error {
	query := `UPDATE stock_transfers SET status = $2 WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, id, status); err != nil {
		return fmt.Errorf("update transfer status: %w", err)
	}
	return nil
}

// ListByOrg lista los traslados de una organización (sin líneas), más
// recientes primero.
func (r *TransferRepo) ListByOrg(orgID string, limit, offset int) ([]*entity.StockTransfer, error) {
	query := `
		SELECT id, org_id, number, from_warehouse_id, to_warehouse_id, date, status, notes, created_at, created_by
		FROM stock_transfers WHERE org_id = $1
		ORDER BY date DESC, created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, orgID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockTransfer
	for rows.Next() {
		var t entity.StockTransfer
		if err := rows.Scan(&t.ID, &t.OrgID, &t.Number, &t.FromWarehouseID, &t.ToWarehouseID,
			&t.Date, &t.Status, &t.Notes, &t.CreatedAt, &t.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
