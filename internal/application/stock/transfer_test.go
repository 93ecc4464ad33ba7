package stock_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appstock "github.com/jhoicas/Kardex-api/internal/application/stock"
	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

func newTransferUC(e *env) *appstock.TransferUseCase {
	return appstock.NewTransferUseCase(e.tx, newAccountant(e), e.items, e.warehouses, e.stocks, e.transfers)
}

// Traslado feliz: par TRANSFER_OUT/TRANSFER_IN por línea con el mismo
// consecutivo, contadores por bodega movidos y stock global conservado.
func TestCreateTransfer_Conservacion(t *testing.T) {
	e := newEnv()
	item := e.seedItem(testOrgID, 100)
	origen := e.seedWarehouse(testOrgID, "origen")
	destino := e.seedWarehouse(testOrgID, "destino")
	e.seedWarehouseStock(item, origen.ID, 100)
	uc := newTransferUC(e)

	result, err := uc.CreateTransfer(context.Background(), appstock.TransferInput{
		OrgID:           testOrgID,
		UserID:          testUserID,
		FromWarehouseID: origen.ID,
		ToWarehouseID:   destino.ID,
		Lines: []appstock.TransferLineInput{
			{ItemID: item.ID, Quantity: decimal.NewFromInt(40)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "ST/0001", result.Number)
	assert.Equal(t, entity.TransferStatusCompleted, result.Status)
	assert.Empty(t, result.Warnings)

	// Dos asientos correlacionados por el mismo RefNumber.
	require.Len(t, e.ledger.entries, 2)
	out, in := e.ledger.entries[0], e.ledger.entries[1]
	assert.Equal(t, entity.MovementTypeTRANSFEROUT, out.Type)
	assert.Equal(t, entity.MovementTypeTRANSFERIN, in.Type)
	assert.Equal(t, "ST/0001", out.RefNumber)
	assert.Equal(t, out.RefNumber, in.RefNumber)
	assert.Equal(t, "TRANSFER", out.RefType)
	assert.True(t, out.QuantityChange.Equal(decimal.NewFromInt(-40)))
	assert.True(t, in.QuantityChange.Equal(decimal.NewFromInt(40)))

	// Contadores por bodega: -40 en origen, +40 en destino.
	filaOrigen, _ := e.stocks.Get(item.ID, origen.ID)
	filaDestino, _ := e.stocks.Get(item.ID, destino.ID)
	require.NotNil(t, filaOrigen)
	require.NotNil(t, filaDestino)
	assert.True(t, filaOrigen.Quantity.Equal(decimal.NewFromInt(60)))
	assert.True(t, filaDestino.Quantity.Equal(decimal.NewFromInt(40)))

	// El stock global no cambia: el traslado mueve, no crea ni destruye.
	assert.True(t, item.CurrentStock.Equal(decimal.NewFromInt(100)))
}

// All-or-nothing: cualquier línea sin stock suficiente en origen rechaza el
// traslado completo sin escribir nada.
func TestCreateTransfer_StockInsuficienteRechazaTodo(t *testing.T) {
	e := newEnv()
	conStock := e.seedItem(testOrgID, 100)
	sinStock := e.seedItem(testOrgID, 100)
	origen := e.seedWarehouse(testOrgID, "origen")
	destino := e.seedWarehouse(testOrgID, "destino")
	e.seedWarehouseStock(conStock, origen.ID, 100)
	e.seedWarehouseStock(sinStock, origen.ID, 5)
	uc := newTransferUC(e)

	_, err := uc.CreateTransfer(context.Background(), appstock.TransferInput{
		OrgID:           testOrgID,
		UserID:          testUserID,
		FromWarehouseID: origen.ID,
		ToWarehouseID:   destino.ID,
		Lines: []appstock.TransferLineInput{
			{ItemID: conStock.ID, Quantity: decimal.NewFromInt(10)},
			{ItemID: sinStock.ID, Quantity: decimal.NewFromInt(50)},
		},
	})

	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), sinStock.Name,
		"el error debe nombrar el ítem insuficiente")
	assert.Empty(t, e.ledger.entries, "ningún asiento debe haberse escrito")
	assert.Empty(t, e.transfers.transfers, "el documento no debe haberse creado")
	fila, _ := e.stocks.Get(conStock.ID, origen.ID)
	assert.True(t, fila.Quantity.Equal(decimal.NewFromInt(100)),
		"la línea válida tampoco se aplica")
}

// Un ítem sin fila en la bodega origen cuenta como disponible cero.
func TestCreateTransfer_SinFilaEnOrigenEsCero(t *testing.T) {
	e := newEnv()
	item := e.seedItem(testOrgID, 100)
	origen := e.seedWarehouse(testOrgID, "origen")
	destino := e.seedWarehouse(testOrgID, "destino")
	uc := newTransferUC(e)

	_, err := uc.CreateTransfer(context.Background(), appstock.TransferInput{
		OrgID:           testOrgID,
		UserID:          testUserID,
		FromWarehouseID: origen.ID,
		ToWarehouseID:   destino.ID,
		Lines: []appstock.TransferLineInput{
			{ItemID: item.ID, Quantity: decimal.NewFromInt(1)},
		},
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestCreateTransfer_ValidacionesBasicas(t *testing.T) {
	e := newEnv()
	item := e.seedItem(testOrgID, 100)
	origen := e.seedWarehouse(testOrgID, "origen")
	destino := e.seedWarehouse(testOrgID, "destino")
	e.seedWarehouseStock(item, origen.ID, 100)
	uc := newTransferUC(e)
	ctx := context.Background()

	// Origen y destino iguales.
	_, err := uc.CreateTransfer(ctx, appstock.TransferInput{
		OrgID: testOrgID, UserID: testUserID,
		FromWarehouseID: origen.ID, ToWarehouseID: origen.ID,
		Lines: []appstock.TransferLineInput{{ItemID: item.ID, Quantity: decimal.NewFromInt(1)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Sin líneas.
	_, err = uc.CreateTransfer(ctx, appstock.TransferInput{
		OrgID: testOrgID, UserID: testUserID,
		FromWarehouseID: origen.ID, ToWarehouseID: destino.ID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Cantidad no positiva.
	_, err = uc.CreateTransfer(ctx, appstock.TransferInput{
		OrgID: testOrgID, UserID: testUserID,
		FromWarehouseID: origen.ID, ToWarehouseID: destino.ID,
		Lines: []appstock.TransferLineInput{{ItemID: item.ID, Quantity: decimal.Zero}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, e.ledger.entries)
}

func TestCreateTransfer_ConsecutivoIncrementa(t *testing.T) {
	e := newEnv()
	item := e.seedItem(testOrgID, 100)
	origen := e.seedWarehouse(testOrgID, "origen")
	destino := e.seedWarehouse(testOrgID, "destino")
	e.seedWarehouseStock(item, origen.ID, 100)
	uc := newTransferUC(e)
	ctx := context.Background()

	input := appstock.TransferInput{
		OrgID: testOrgID, UserID: testUserID,
		FromWarehouseID: origen.ID, ToWarehouseID: destino.ID,
		Lines: []appstock.TransferLineInput{{ItemID: item.ID, Quantity: decimal.NewFromInt(10)}},
	}
	r1, err := uc.CreateTransfer(ctx, input)
	require.NoError(t, err)
	r2, err := uc.CreateTransfer(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, "ST/0001", r1.Number)
	assert.Equal(t, "ST/0002", r2.Number)
}

// Fallo a mitad del bucle de asientos: el documento ya existe, la salida se
// asentó pero la entrada no. El traslado queda partial con warnings en lugar
// de revertirse.
func TestCreateTransfer_FalloParcialReportaWarnings(t *testing.T) {
	e := newEnv()
	item := e.seedItem(testOrgID, 100)
	origen := e.seedWarehouse(testOrgID, "origen")
	destino := e.seedWarehouse(testOrgID, "destino")
	e.seedWarehouseStock(item, origen.ID, 100)
	uc := newTransferUC(e)

	// El kardex acepta el primer asiento (TRANSFER_OUT) y rechaza el segundo.
	e.ledger.failAfter = 1

	result, err := uc.CreateTransfer(context.Background(), appstock.TransferInput{
		OrgID: testOrgID, UserID: testUserID,
		FromWarehouseID: origen.ID, ToWarehouseID: destino.ID,
		Lines: []appstock.TransferLineInput{{ItemID: item.ID, Quantity: decimal.NewFromInt(40)}},
	})
	require.NoError(t, err, "un fallo parcial se reporta como warning, no como error")

	assert.Equal(t, entity.TransferStatusPartial, result.Status)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], item.Name)

	transfer := e.transfers.transfers[result.TransferID]
	require.NotNil(t, transfer)
	assert.Equal(t, entity.TransferStatusPartial, transfer.Status,
		"el estado persistido debe reflejar el traslado a medias")

	require.Len(t, e.ledger.entries, 1, "solo la salida alcanzó a asentarse")
	assert.Equal(t, entity.MovementTypeTRANSFEROUT, e.ledger.entries[0].Type)
}

func TestListTransfers_SoloDeLaOrg(t *testing.T) {
	e := newEnv()
	item := e.seedItem(testOrgID, 100)
	origen := e.seedWarehouse(testOrgID, "origen")
	destino := e.seedWarehouse(testOrgID, "destino")
	e.seedWarehouseStock(item, origen.ID, 100)
	uc := newTransferUC(e)
	ctx := context.Background()

	input := appstock.TransferInput{
		OrgID: testOrgID, UserID: testUserID,
		FromWarehouseID: origen.ID, ToWarehouseID: destino.ID,
		Lines: []appstock.TransferLineInput{{ItemID: item.ID, Quantity: decimal.NewFromInt(10)}},
	}
	_, err := uc.CreateTransfer(ctx, input)
	require.NoError(t, err)
	_, err = uc.CreateTransfer(ctx, input)
	require.NoError(t, err)

	list, err := uc.ListTransfers(testOrgID, 20, 0)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	ajena, err := uc.ListTransfers(otherOrgID, 20, 0)
	require.NoError(t, err)
	assert.Empty(t, ajena, "otra organización no debe ver los traslados")
}

func TestGetTransfer_NoEncontradoYOtraOrg(t *testing.T) {
	e := newEnv()
	item := e.seedItem(testOrgID, 100)
	origen := e.seedWarehouse(testOrgID, "origen")
	destino := e.seedWarehouse(testOrgID, "destino")
	e.seedWarehouseStock(item, origen.ID, 100)
	uc := newTransferUC(e)

	result, err := uc.CreateTransfer(context.Background(), appstock.TransferInput{
		OrgID: testOrgID, UserID: testUserID,
		FromWarehouseID: origen.ID, ToWarehouseID: destino.ID,
		Lines: []appstock.TransferLineInput{{ItemID: item.ID, Quantity: decimal.NewFromInt(10)}},
	})
	require.NoError(t, err)

	_, err = uc.GetTransfer(testOrgID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.GetTransfer(otherOrgID, result.TransferID)
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"otra organización no debe ver el traslado")

	transfer, err := uc.GetTransfer(testOrgID, result.TransferID)
	require.NoError(t, err)
	assert.Len(t, transfer.Lines, 1)
}
