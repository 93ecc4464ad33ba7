package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo consecutivos por organización y tipo de documento sobre una
// fila contador. El upsert con RETURNING es atómico: dos traslados
// concurrentes nunca reciben el mismo número (a diferencia de count(*)+1).
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository construye el adaptador de consecutivos.
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next incrementa y devuelve el consecutivo para (organización, tipo).
func (r *SequenceRepo) Next(orgID, docType string) (int64, error) {
	query := `
		INSERT INTO document_sequences (org_id, doc_type, value)
		VALUES ($1, $2, 1)
		ON CONFLICT (org_id, doc_type)
		DO UPDATE SET value = document_sequences.value + 1
		RETURNING value`
	var value int64
	if err := r.q.QueryRow(context.Background(), query, orgID, docType).Scan(&value); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return value, nil
}
