package stock_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Mismo contrato que los
// repos Postgres: Get/GetForUpdate de stock por bodega devuelven (nil, nil)
// cuando la fila no existe, el kardex solo inserta, el consecutivo incrementa
// por (org, tipo de documento).
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemRepo struct {
	items map[string]*entity.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: map[string]*entity.Item{}}
}

func (r *fakeItemRepo) Create(item *entity.Item) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	return r.items[id], nil
}

func (r *fakeItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	return r.items[id], nil
}

func (r *fakeItemRepo) Update(item *entity.Item) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) UpdateCurrentStock(id string, quantity decimal.Decimal) error {
	item, ok := r.items[id]
	if !ok {
		return errors.New("item no existe")
	}
	item.CurrentStock = quantity
	return nil
}

func (r *fakeItemRepo) ListByOrg(orgID string, limit, offset int) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, item := range r.items {
		if item.OrgID == orgID {
			out = append(out, item)
		}
	}
	return out, nil
}

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func newFakeWarehouseRepo() *fakeWarehouseRepo {
	return &fakeWarehouseRepo{warehouses: map[string]*entity.Warehouse{}}
}

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error {
	r.warehouses[w.ID] = w
	return nil
}

func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return r.warehouses[id], nil
}

func (r *fakeWarehouseRepo) Update(w *entity.Warehouse) error {
	r.warehouses[w.ID] = w
	return nil
}

func (r *fakeWarehouseRepo) ListByOrg(orgID string, limit, offset int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.warehouses {
		if w.OrgID == orgID {
			out = append(out, w)
		}
	}
	return out, nil
}

type fakeStockRepo struct {
	rows map[string]*entity.WarehouseStock // key: itemID|warehouseID
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{rows: map[string]*entity.WarehouseStock{}}
}

func stockKey(itemID, warehouseID string) string {
	return itemID + "|" + warehouseID
}

func (r *fakeStockRepo) Get(itemID, warehouseID string) (*entity.WarehouseStock, error) {
	return r.rows[stockKey(itemID, warehouseID)], nil
}

func (r *fakeStockRepo) GetForUpdate(itemID, warehouseID string) (*entity.WarehouseStock, error) {
	return r.rows[stockKey(itemID, warehouseID)], nil
}

func (r *fakeStockRepo) Upsert(s *entity.WarehouseStock) error {
	r.rows[stockKey(s.ItemID, s.WarehouseID)] = s
	return nil
}

func (r *fakeStockRepo) ListByItem(orgID, itemID string) ([]*entity.StockDistribution, error) {
	var out []*entity.StockDistribution
	for _, row := range r.rows {
		if row.OrgID == orgID && row.ItemID == itemID {
			out = append(out, &entity.StockDistribution{
				WarehouseID: row.WarehouseID,
				Quantity:    row.Quantity,
				MinQuantity: row.MinQuantity,
				MaxQuantity: row.MaxQuantity,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WarehouseID < out[j].WarehouseID })
	return out, nil
}

type fakeLedgerRepo struct {
	entries []*entity.LedgerEntry
	// failAfter > 0: Create falla cuando el kardex ya tiene failAfter asientos.
	// Simula un fallo a mitad del bucle de un traslado.
	failAfter int
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{}
}

func (r *fakeLedgerRepo) Create(entry *entity.LedgerEntry) error {
	if r.failAfter > 0 && len(r.entries) >= r.failAfter {
		return errors.New("kardex no disponible")
	}
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeLedgerRepo) GetByID(id string) (*entity.LedgerEntry, error) {
	for _, e := range r.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeLedgerRepo) ListByItem(orgID, itemID string, limit int) ([]*entity.LedgerEntry, error) {
	asc, _ := r.ListByItemAsc(orgID, itemID)
	out := make([]*entity.LedgerEntry, 0, len(asc))
	for i := len(asc) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, asc[i])
	}
	return out, nil
}

func (r *fakeLedgerRepo) ListByItemAsc(orgID, itemID string) ([]*entity.LedgerEntry, error) {
	var out []*entity.LedgerEntry
	for _, e := range r.entries {
		if e.OrgID == orgID && e.ItemID == itemID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeTransferRepo struct {
	transfers map[string]*entity.StockTransfer
}

func newFakeTransferRepo() *fakeTransferRepo {
	return &fakeTransferRepo{transfers: map[string]*entity.StockTransfer{}}
}

func (r *fakeTransferRepo) Create(t *entity.StockTransfer) error {
	r.transfers[t.ID] = t
	return nil
}

func (r *fakeTransferRepo) GetByID(orgID, id string) (*entity.StockTransfer, error) {
	t := r.transfers[id]
	if t == nil || t.OrgID != orgID {
		return nil, nil
	}
	return t, nil
}

func (r *fakeTransferRepo) UpdateStatus(id, status string) error {
	t, ok := r.transfers[id]
	if !ok {
		return errors.New("traslado no existe")
	}
	t.Status = status
	return nil
}

func (r *fakeTransferRepo) ListByOrg(orgID string, limit, offset int) ([]*entity.StockTransfer, error) {
	var out []*entity.StockTransfer
	for _, t := range r.transfers {
		if t.OrgID == orgID {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeSequenceRepo struct {
	counters map[string]int64
}

func newFakeSequenceRepo() *fakeSequenceRepo {
	return &fakeSequenceRepo{counters: map[string]int64{}}
}

func (r *fakeSequenceRepo) Next(orgID, docType string) (int64, error) {
	key := orgID + "|" + docType
	r.counters[key]++
	return r.counters[key], nil
}

// fakeTxRunner ejecuta la función directamente contra los fakes compartidos.
// No simula rollback: los tests que necesitan atomicidad la verifican por
// el estado final, no por la mecánica transaccional.
type fakeTxRunner struct {
	ledger    *fakeLedgerRepo
	stocks    *fakeStockRepo
	items     *fakeItemRepo
	transfers *fakeTransferRepo
	seqs      *fakeSequenceRepo
}

func (tr *fakeTxRunner) Run(ctx context.Context, fn func(
	ledgerRepo repository.LedgerRepository,
	stockRepo repository.WarehouseStockRepository,
	itemRepo repository.ItemRepository,
) error) error {
	return fn(tr.ledger, tr.stocks, tr.items)
}

func (tr *fakeTxRunner) RunTransfer(ctx context.Context, fn func(
	transferRepo repository.TransferRepository,
	seqRepo repository.SequenceRepository,
) error) error {
	return fn(tr.transfers, tr.seqs)
}

// ──────────────────────────────────────────────────────────────────────────────
// Entorno de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testOrgID  = "org-1"
	otherOrgID = "org-2"
	testUserID = "user-1"
)

type env struct {
	items      *fakeItemRepo
	warehouses *fakeWarehouseRepo
	stocks     *fakeStockRepo
	ledger     *fakeLedgerRepo
	transfers  *fakeTransferRepo
	seqs       *fakeSequenceRepo
	tx         *fakeTxRunner
}

func newEnv() *env {
	e := &env{
		items:      newFakeItemRepo(),
		warehouses: newFakeWarehouseRepo(),
		stocks:     newFakeStockRepo(),
		ledger:     newFakeLedgerRepo(),
		transfers:  newFakeTransferRepo(),
		seqs:       newFakeSequenceRepo(),
	}
	e.tx = &fakeTxRunner{
		ledger:    e.ledger,
		stocks:    e.stocks,
		items:     e.items,
		transfers: e.transfers,
		seqs:      e.seqs,
	}
	return e
}

var itemSeq int

func (e *env) seedItem(orgID string, stock int64) *entity.Item {
	itemSeq++
	item := &entity.Item{
		ID:           fmt.Sprintf("item-%d", itemSeq),
		OrgID:        orgID,
		SKU:          fmt.Sprintf("SKU-%03d", itemSeq),
		Name:         fmt.Sprintf("Ítem %d", itemSeq),
		BaseUnit:     "PCS",
		CurrentStock: decimal.NewFromInt(stock),
		Status:       "active",
		CreatedAt:    time.Now(),
	}
	e.items.items[item.ID] = item
	return item
}

func (e *env) seedWarehouse(orgID, name string) *entity.Warehouse {
	w := &entity.Warehouse{
		ID:        "wh-" + name,
		OrgID:     orgID,
		Name:      name,
		CreatedAt: time.Now(),
	}
	e.warehouses.warehouses[w.ID] = w
	return w
}

func (e *env) seedWarehouseStock(item *entity.Item, warehouseID string, qty int64) {
	e.stocks.rows[stockKey(item.ID, warehouseID)] = &entity.WarehouseStock{
		ItemID:      item.ID,
		WarehouseID: warehouseID,
		OrgID:       item.OrgID,
		Quantity:    decimal.NewFromInt(qty),
	}
}
