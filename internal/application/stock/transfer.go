package stock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// Tipo de documento para el consecutivo de traslados (ST/0001, ST/0002, ...).
const transferDocType = "ST"

// TransferUseCase orquesta traslados entre bodegas: valida todo por
// adelantado (all-or-nothing), crea el documento con consecutivo atómico y
// luego asienta cada línea en el kardex como par TRANSFER_OUT/TRANSFER_IN con
// el mismo número de referencia. Los asientos por línea van en transacciones
// independientes: un fallo a mitad del bucle deja el traslado parcialmente
// aplicado y se reporta como warnings, no como rollback.
type TransferUseCase struct {
	txRunner      TxRunner
	accountant    *Accountant
	itemRepo      repository.ItemRepository
	warehouseRepo repository.WarehouseRepository
	stockRepo     repository.WarehouseStockRepository
	transferRepo  repository.TransferRepository
}

// NewTransferUseCase construye el caso de uso de traslados.
func NewTransferUseCase(
	txRunner TxRunner,
	accountant *Accountant,
	itemRepo repository.ItemRepository,
	warehouseRepo repository.WarehouseRepository,
	stockRepo repository.WarehouseStockRepository,
	transferRepo repository.TransferRepository,
) *TransferUseCase {
	return &TransferUseCase{
		txRunner:      txRunner,
		accountant:    accountant,
		itemRepo:      itemRepo,
		warehouseRepo: warehouseRepo,
		stockRepo:     stockRepo,
		transferRepo:  transferRepo,
	}
}

// TransferLineInput línea solicitada de un traslado.
type TransferLineInput struct {
	ItemID   string
	Quantity decimal.Decimal
	Notes    string
}

// TransferInput solicitud de traslado.
type TransferInput struct {
	OrgID           string
	UserID          string
	FromWarehouseID string
	ToWarehouseID   string
	Date            *time.Time
	Notes           string
	Lines           []TransferLineInput
}

// TransferResult resultado de crear un traslado.
type TransferResult struct {
	TransferID string
	Number     string
	Status     string
	Warnings   []string
}

// CreateTransfer valida, numera y asienta el traslado.
func (uc *TransferUseCase) CreateTransfer(ctx context.Context, input TransferInput) (*TransferResult, error) {
	if input.OrgID == "" || input.FromWarehouseID == "" || input.ToWarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.FromWarehouseID == input.ToWarehouseID {
		return nil, fmt.Errorf("%w: bodega origen y destino son la misma", domain.ErrInvalidInput)
	}
	if len(input.Lines) == 0 {
		return nil, fmt.Errorf("%w: el traslado no tiene líneas", domain.ErrInvalidInput)
	}
	for _, line := range input.Lines {
		if line.ItemID == "" || !line.Quantity.GreaterThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: toda línea requiere ítem y cantidad positiva", domain.ErrInvalidInput)
		}
	}

	fromWh, err := uc.warehouseRepo.GetByID(input.FromWarehouseID)
	if err != nil {
		return nil, err
	}
	toWh, err := uc.warehouseRepo.GetByID(input.ToWarehouseID)
	if err != nil {
		return nil, err
	}
	if fromWh == nil || toWh == nil || fromWh.OrgID != input.OrgID || toWh.OrgID != input.OrgID {
		return nil, domain.ErrNotFound
	}

	// Pre-chequeo all-or-nothing: existencia de ítems y stock suficiente en
	// la bodega origen (lectura de los contadores cacheados). Cualquier ítem
	// insuficiente rechaza el traslado completo antes de escribir nada.
	items := make(map[string]*entity.Item, len(input.Lines))
	var insufficient []string
	for _, line := range input.Lines {
		item, err := uc.itemRepo.GetByID(line.ItemID)
		if err != nil {
			return nil, err
		}
		if item == nil || item.OrgID != input.OrgID {
			return nil, domain.ErrNotFound
		}
		items[line.ItemID] = item

		row, err := uc.stockRepo.Get(line.ItemID, input.FromWarehouseID)
		if err != nil {
			return nil, err
		}
		available := decimal.Zero
		if row != nil {
			available = row.Quantity
		}
		if available.LessThan(line.Quantity) {
			insufficient = append(insufficient, item.Name)
		}
	}
	if len(insufficient) > 0 {
		return nil, fmt.Errorf("%w en origen: %s", domain.ErrInsufficientStock, strings.Join(insufficient, ", "))
	}

	now := time.Now()
	date := now
	if input.Date != nil {
		date = *input.Date
	}

	// Documento + consecutivo en una transacción corta.
	transfer := &entity.StockTransfer{
		ID:              uuid.New().String(),
		OrgID:           input.OrgID,
		FromWarehouseID: input.FromWarehouseID,
		ToWarehouseID:   input.ToWarehouseID,
		Date:            date,
		Status:          entity.TransferStatusCompleted,
		Notes:           input.Notes,
		CreatedAt:       now,
		CreatedBy:       input.UserID,
	}
	for _, line := range input.Lines {
		transfer.Lines = append(transfer.Lines, entity.StockTransferLine{
			ID:         uuid.New().String(),
			TransferID: transfer.ID,
			ItemID:     line.ItemID,
			Quantity:   line.Quantity,
			Notes:      line.Notes,
		})
	}
	err = uc.txRunner.RunTransfer(ctx, func(
		transferRepo repository.TransferRepository,
		seqRepo repository.SequenceRepository,
	) error {
		n, err := seqRepo.Next(input.OrgID, transferDocType)
		if err != nil {
			return err
		}
		transfer.Number = fmt.Sprintf("%s/%04d", transferDocType, n)
		return transferRepo.Create(transfer)
	})
	if err != nil {
		return nil, err
	}

	// Asienta cada línea: salida en origen y entrada en destino, mismo
	// RefNumber para correlacionarlas. Un fallo no revierte lo ya asentado.
	var warnings []string
	for _, line := range transfer.Lines {
		item := items[line.ItemID]
		out := MovementInput{
			OrgID:       input.OrgID,
			UserID:      input.UserID,
			ItemID:      line.ItemID,
			WarehouseID: input.FromWarehouseID,
			Type:        entity.MovementTypeTRANSFEROUT,
			Quantity:    line.Quantity,
			Date:        &date,
			RefType:     "TRANSFER",
			RefID:       transfer.ID,
			RefNumber:   transfer.Number,
			Notes:       line.Notes,
		}
		if _, err := uc.accountant.RecordMovement(ctx, out); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: salida no asentada: %v", item.Name, err))
			continue
		}
		in := out
		in.WarehouseID = input.ToWarehouseID
		in.Type = entity.MovementTypeTRANSFERIN
		if _, err := uc.accountant.RecordMovement(ctx, in); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: entrada no asentada: %v", item.Name, err))
		}
	}
	status := entity.TransferStatusCompleted
	if len(warnings) > 0 {
		status = entity.TransferStatusPartial
		if err := uc.transferRepo.UpdateStatus(transfer.ID, status); err != nil {
			warnings = append(warnings, fmt.Sprintf("estado del traslado no actualizado: %v", err))
		}
	}

	return &TransferResult{
		TransferID: transfer.ID,
		Number:     transfer.Number,
		Status:     status,
		Warnings:   warnings,
	}, nil
}

// ListTransfers lista los traslados de la organización, más recientes
// primero, sin cargar líneas.
func (uc *TransferUseCase) ListTransfers(orgID string, limit, offset int) ([]*entity.StockTransfer, error) {
	return uc.transferRepo.ListByOrg(orgID, limit, offset)
}

// GetTransfer devuelve un traslado con sus líneas.
func (uc *TransferUseCase) GetTransfer(orgID, id string) (*entity.StockTransfer, error) {
	transfer, err := uc.transferRepo.GetByID(orgID, id)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, domain.ErrNotFound
	}
	return transfer, nil
}
