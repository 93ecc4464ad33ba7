package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appstock "github.com/jhoicas/Kardex-api/internal/application/stock"
	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

func newQueryUC(e *env) *appstock.QueryUseCase {
	return appstock.NewQueryUseCase(e.ledger, e.stocks, e.items)
}

func TestGetMovementHistory_MasRecientesPrimero(t *testing.T) {
	e := newEnv()
	item := e.seedItem(testOrgID, 0)
	a := newAccountant(e)
	for _, qty := range []int64{100, 30, 50} {
		tipo := entity.MovementTypeIN
		if qty == 30 {
			tipo = entity.MovementTypeSALE
		}
		record(t, a, appstock.MovementInput{
			OrgID: testOrgID, UserID: testUserID, ItemID: item.ID,
			Type: tipo, Quantity: decimal.NewFromInt(qty),
		})
	}
	uc := newQueryUC(e)

	entries, err := uc.GetMovementHistory(testOrgID, item.ID, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.True(t, entries[0].QuantityChange.Equal(decimal.NewFromInt(50)),
		"el último movimiento debe venir primero")
	assert.True(t, entries[2].QuantityChange.Equal(decimal.NewFromInt(100)))
}

func TestGetMovementHistory_LimitAcota(t *testing.T) {
	e := newEnv()
	item := e.seedItem(testOrgID, 0)
	a := newAccountant(e)
	for i := 0; i < 5; i++ {
		record(t, a, appstock.MovementInput{
			OrgID: testOrgID, UserID: testUserID, ItemID: item.ID,
			Type: entity.MovementTypeIN, Quantity: decimal.NewFromInt(1),
		})
	}
	uc := newQueryUC(e)

	entries, err := uc.GetMovementHistory(testOrgID, item.ID, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestGetMovementHistory_ItemDeOtraOrg(t *testing.T) {
	e := newEnv()
	item := e.seedItem(otherOrgID, 0)
	uc := newQueryUC(e)

	_, err := uc.GetMovementHistory(testOrgID, item.ID, 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetMovement_PorID(t *testing.T) {
	e := newEnv()
	item := e.seedItem(testOrgID, 100)
	a := newAccountant(e)
	result := record(t, a, appstock.MovementInput{
		OrgID: testOrgID, UserID: testUserID, ItemID: item.ID,
		Type: entity.MovementTypeSALE, Quantity: decimal.NewFromInt(30),
	})
	uc := newQueryUC(e)

	entry, err := uc.GetMovement(testOrgID, result.LedgerEntryID)
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeSALE, entry.Type)
	assert.True(t, entry.QuantityChange.Equal(decimal.NewFromInt(-30)))

	_, err = uc.GetMovement(testOrgID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.GetMovement(otherOrgID, result.LedgerEntryID)
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"otra organización no debe ver el asiento")
}

func TestGetStockDistribution_FilasPorBodega(t *testing.T) {
	e := newEnv()
	item := e.seedItem(testOrgID, 70)
	wa := e.seedWarehouse(testOrgID, "a")
	wb := e.seedWarehouse(testOrgID, "b")
	e.seedWarehouseStock(item, wa.ID, 50)
	e.seedWarehouseStock(item, wb.ID, 20)
	uc := newQueryUC(e)

	rows, err := uc.GetStockDistribution(testOrgID, item.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Quantity)
	}
	assert.True(t, total.Equal(decimal.NewFromInt(70)),
		"la suma por bodega debe cuadrar con el contador global")
}

func TestGetStockDistribution_ItemInexistente(t *testing.T) {
	e := newEnv()
	uc := newQueryUC(e)

	_, err := uc.GetStockDistribution(testOrgID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Las lecturas no tocan el kardex ni los contadores.
func TestQueries_NoMutanEstado(t *testing.T) {
	e := newEnv()
	item := e.seedItem(testOrgID, 100)
	a := newAccountant(e)
	record(t, a, appstock.MovementInput{
		OrgID: testOrgID, UserID: testUserID, ItemID: item.ID,
		Type: entity.MovementTypeSALE, Quantity: decimal.NewFromInt(30),
	})
	uc := newQueryUC(e)

	before := len(e.ledger.entries)
	_, err := uc.GetMovementHistory(testOrgID, item.ID, 10)
	require.NoError(t, err)
	_, err = uc.GetStockDistribution(testOrgID, item.ID)
	require.NoError(t, err)

	assert.Equal(t, before, len(e.ledger.entries))
	assert.True(t, item.CurrentStock.Equal(decimal.NewFromInt(70)))
}
