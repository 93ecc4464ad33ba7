package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	appstock "github.com/jhoicas/Kardex-api/internal/application/stock"
	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
	domstock "github.com/jhoicas/Kardex-api/internal/domain/stock"
)

// ItemUseCase casos de uso CRUD para ítems. La creación con saldo inicial
// delega en el Accountant (asiento OPENING): ningún camino muta stock sin
// pasar por el kardex.
type ItemUseCase struct {
	repo       repository.ItemRepository
	accountant *appstock.Accountant
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, accountant *appstock.Accountant) *ItemUseCase {
	return &ItemUseCase{repo: repo, accountant: accountant}
}

// Create crea un ítem; si viene OpeningStock > 0 asienta el saldo inicial.
func (uc *ItemUseCase) Create(ctx context.Context, orgID, userID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" || in.BaseUnit == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.Item{
		ID:        uuid.New().String(),
		OrgID:     orgID,
		SKU:       in.SKU,
		Name:      in.Name,
		BaseUnit:  in.BaseUnit,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.PackagingUnit != "" {
		item.PackagingUnit = in.PackagingUnit
	}
	if in.PerPackageQty != nil {
		item.PerPackageQty = *in.PerPackageQty
	}
	if in.MinStock != nil {
		item.MinStock = *in.MinStock
	}
	if in.SalePrice != nil {
		item.SalePrice = *in.SalePrice
	}
	if in.PurchasePrice != nil {
		item.PurchasePrice = *in.PurchasePrice
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}

	if in.OpeningStock != nil && in.OpeningStock.GreaterThan(decimal.Zero) {
		result, err := uc.accountant.RecordMovement(ctx, appstock.MovementInput{
			OrgID:    orgID,
			UserID:   userID,
			ItemID:   item.ID,
			Type:     entity.MovementTypeOPENING,
			Quantity: *in.OpeningStock,
			Notes:    "saldo inicial",
		})
		if err != nil {
			return nil, err
		}
		item.CurrentStock = result.QuantityAfter
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un ítem por ID validando la organización.
func (uc *ItemUseCase) GetByID(orgID, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.OrgID != orgID {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// Update actualiza los campos editables de un ítem. El stock no se toca aquí:
// solo el Accountant muta contadores.
func (uc *ItemUseCase) Update(orgID, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.OrgID != orgID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.PackagingUnit != nil {
		item.PackagingUnit = *in.PackagingUnit
	}
	if in.PerPackageQty != nil {
		item.PerPackageQty = *in.PerPackageQty
	}
	if in.MinStock != nil {
		item.MinStock = *in.MinStock
	}
	if in.SalePrice != nil {
		item.SalePrice = *in.SalePrice
	}
	if in.PurchasePrice != nil {
		item.PurchasePrice = *in.PurchasePrice
	}
	if in.Status != nil {
		item.Status = *in.Status
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List lista los ítems de la organización.
func (uc *ItemUseCase) List(orgID string, page dto.PageRequest) ([]*dto.ItemResponse, error) {
	page.DefaultPage()
	items, err := uc.repo.ListByOrg(orgID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toItemResponse(item))
	}
	return out, nil
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:            i.ID,
		SKU:           i.SKU,
		Name:          i.Name,
		BaseUnit:      i.BaseUnit,
		PackagingUnit: i.PackagingUnit,
		PerPackageQty: i.PerPackageQty,
		CurrentStock:  i.CurrentStock,
		StockDisplay:  domstock.FormatDisplay(i.CurrentStock, i.BaseUnit, i.PackagingUnit, i.PerPackageQty, true),
		MinStock:      i.MinStock,
		SalePrice:     i.SalePrice,
		PurchasePrice: i.PurchasePrice,
		Status:        i.Status,
	}
}
