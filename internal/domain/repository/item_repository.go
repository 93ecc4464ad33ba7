package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para Item (DIP).
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	// GetForUpdate bloquea la fila del ítem (SELECT FOR UPDATE); serializa los
	// read-modify-write concurrentes sobre el contador cacheado.
	GetForUpdate(id string) (*entity.Item, error)
	Update(item *entity.Item) error
	UpdateCurrentStock(id string, quantity decimal.Decimal) error
	ListByOrg(orgID string, limit, offset int) ([]*entity.Item, error)
}
