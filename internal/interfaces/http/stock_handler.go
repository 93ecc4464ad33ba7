package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	appstock "github.com/jhoicas/Kardex-api/internal/application/stock"
	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

// StockHandler maneja los movimientos del kardex y sus proyecciones
// (protegido).
type StockHandler struct {
	accountant *appstock.Accountant
	queries    *appstock.QueryUseCase
	reconcile  *appstock.ReconcileUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(accountant *appstock.Accountant, queries *appstock.QueryUseCase, reconcile *appstock.ReconcileUseCase) *StockHandler {
	return &StockHandler{accountant: accountant, queries: queries, reconcile: reconcile}
}

// RecordMovement godoc
// @Summary      Asentar movimiento de stock
// @Description  Asienta un movimiento en el kardex y actualiza los contadores
//
//	cacheados. El signo del delta lo determina el tipo; solo
//	ADJUSTMENT y CORRECTION respetan el signo de la cantidad.
//
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "item_id, type, quantity; warehouse_id opcional"
// @Success      201   {object}  dto.RecordMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/movements [post]
func (h *StockHandler) RecordMovement(c *fiber.Ctx) error {
	orgID, userID := GetOrgID(c), GetUserID(c)
	if orgID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.accountant.RecordMovement(c.Context(), appstock.MovementInput{
		OrgID:       orgID,
		UserID:      userID,
		ItemID:      in.ItemID,
		WarehouseID: in.WarehouseID,
		Type:        in.Type,
		Quantity:    in.Quantity,
		Unit:        in.Unit,
		Date:        in.Date,
		RatePerUnit: in.RatePerUnit,
		RefType:     in.RefType,
		RefID:       in.RefID,
		RefNumber:   in.RefNumber,
		PartyID:     in.PartyID,
		PartyName:   in.PartyName,
		Notes:       in.Notes,
	})
	if err != nil {
		return stockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RecordMovementResponse{
		LedgerEntryID: result.LedgerEntryID,
		QuantityAfter: result.QuantityAfter,
		Warnings:      result.Warnings,
	})
}

// GetMovement godoc
// @Summary      Obtener un asiento del kardex
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Ledger entry ID"
// @Success      200  {object}  dto.LedgerEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/movements/{id} [get]
func (h *StockHandler) GetMovement(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	entry, err := h.queries.GetMovement(orgID, c.Params("id"))
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(toLedgerEntryResponse(entry))
}

// GetMovementHistory godoc
// @Summary      Historial de movimientos de un ítem
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "Item ID"
// @Param        limit  query  int     false  "máx 200"
// @Success      200  {array}  dto.LedgerEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/items/{id}/movements [get]
func (h *StockHandler) GetMovementHistory(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	limit := c.QueryInt("limit")
	entries, err := h.queries.GetMovementHistory(orgID, c.Params("id"), limit)
	if err != nil {
		return stockError(c, err)
	}
	out := make([]dto.LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toLedgerEntryResponse(e))
	}
	return c.JSON(fiber.Map{"total": len(out), "movements": out})
}

// GetStockDistribution godoc
// @Summary      Distribución del stock de un ítem por bodega
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Item ID"
// @Success      200  {array}  dto.StockDistributionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/items/{id}/distribution [get]
func (h *StockHandler) GetStockDistribution(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	rows, err := h.queries.GetStockDistribution(orgID, c.Params("id"))
	if err != nil {
		return stockError(c, err)
	}
	out := make([]dto.StockDistributionResponse, 0, len(rows))
	for _, d := range rows {
		out = append(out, dto.StockDistributionResponse{
			WarehouseID:   d.WarehouseID,
			WarehouseName: d.WarehouseName,
			Location:      d.Location,
			Quantity:      d.Quantity,
			MinQuantity:   d.MinQuantity,
			MaxQuantity:   d.MaxQuantity,
		})
	}
	return c.JSON(fiber.Map{"total": len(out), "distribution": out})
}

// Reconcile godoc
// @Summary      Reconstruir contadores de un ítem desde su kardex
// @Description  Reproduce los asientos en orden cronológico y reescribe el
//
//	contador global y los contadores por bodega. Pensado para
//	ejecutarse tras un warning de escritura parcial.
//
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Item ID"
// @Success      200  {object}  dto.ReconcileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/items/{id}/reconcile [post]
func (h *StockHandler) Reconcile(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	result, err := h.reconcile.RebuildItemStock(c.Context(), orgID, c.Params("id"))
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(dto.ReconcileResponse{
		ItemID:        result.ItemID,
		PreviousStock: result.PreviousStock,
		RebuiltStock:  result.RebuiltStock,
		Drift:         result.Drift,
		EntriesSeen:   result.EntriesSeen,
	})
}

// stockError mapea los errores de dominio del kardex a códigos HTTP.
func stockError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnknownMovementType):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_TYPE", Message: "tipo de movimiento desconocido"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem o bodega no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func toLedgerEntryResponse(e *entity.LedgerEntry) dto.LedgerEntryResponse {
	return dto.LedgerEntryResponse{
		ID:             e.ID,
		Type:           e.Type,
		Date:           e.Date,
		WarehouseID:    e.WarehouseID,
		QuantityBefore: e.QuantityBefore,
		QuantityChange: e.QuantityChange,
		QuantityAfter:  e.QuantityAfter,
		EntryQuantity:  e.EntryQuantity,
		EntryUnit:      e.EntryUnit,
		RatePerUnit:    e.RatePerUnit,
		TotalValue:     e.TotalValue,
		RefType:        e.RefType,
		RefNumber:      e.RefNumber,
		PartyName:      e.PartyName,
		Notes:          e.Notes,
		CreatedBy:      e.CreatedBy,
	}
}
