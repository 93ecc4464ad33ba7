package stock

import (
	"context"

	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que asiento del kardex y
// actualización de contadores se confirmen o reviertan juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ledgerRepo repository.LedgerRepository,
		stockRepo repository.WarehouseStockRepository,
		itemRepo repository.ItemRepository,
	) error) error

	// RunTransfer inicia una transacción con los repos necesarios para crear
	// el documento de traslado (cabecera + líneas + consecutivo).
	RunTransfer(ctx context.Context, fn func(
		transferRepo repository.TransferRepository,
		seqRepo repository.SequenceRepository,
	) error) error
}
