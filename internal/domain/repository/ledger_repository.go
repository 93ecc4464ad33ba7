package repository

import "github.com/jhoicas/Kardex-api/internal/domain/entity"

// LedgerRepository define el puerto de persistencia del kardex. Solo inserta
// y lee: el kardex es append-only, no existe Update ni Delete.
type LedgerRepository interface {
	Create(entry *entity.LedgerEntry) error
	GetByID(id string) (*entity.LedgerEntry, error)
	// ListByItem devuelve los asientos de un ítem, más recientes primero.
	ListByItem(orgID, itemID string, limit int) ([]*entity.LedgerEntry, error)
	// ListByItemAsc devuelve todos los asientos de un ítem en orden
	// cronológico, para replay/reconciliación de contadores.
	ListByItemAsc(orgID, itemID string) ([]*entity.LedgerEntry, error)
}
