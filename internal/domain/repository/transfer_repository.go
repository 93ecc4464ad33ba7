package repository

import "github.com/jhoicas/Kardex-api/internal/domain/entity"

// TransferRepository define el puerto de persistencia para traslados
// (cabecera + líneas).
type TransferRepository interface {
	Create(transfer *entity.StockTransfer) error
	GetByID(orgID, id string) (*entity.StockTransfer, error)
	UpdateStatus(id, status string) error
	ListByOrg(orgID string, limit, offset int) ([]*entity.StockTransfer, error)
}
