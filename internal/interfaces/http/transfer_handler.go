package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	appstock "github.com/jhoicas/Kardex-api/internal/application/stock"
)

// TransferHandler maneja los traslados entre bodegas (protegido).
type TransferHandler struct {
	uc *appstock.TransferUseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(uc *appstock.TransferUseCase) *TransferHandler {
	return &TransferHandler{uc: uc}
}

// Create godoc
// @Summary      Crear traslado entre bodegas
// @Description  Valida todas las líneas por adelantado (all-or-nothing) y
//
//	asienta cada una como par TRANSFER_OUT/TRANSFER_IN con el
//	mismo consecutivo ST/NNNN. Si algún asiento falla tras crear
//	el documento, la respuesta llega con status=partial y warnings.
//
// @Tags         transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransferRequest  true  "from_warehouse_id, to_warehouse_id, lines"
// @Success      201   {object}  dto.CreateTransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transfers [post]
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	orgID, userID := GetOrgID(c), GetUserID(c)
	if orgID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	lines := make([]appstock.TransferLineInput, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, appstock.TransferLineInput{
			ItemID:   l.ItemID,
			Quantity: l.Quantity,
			Notes:    l.Notes,
		})
	}
	result, err := h.uc.CreateTransfer(c.Context(), appstock.TransferInput{
		OrgID:           orgID,
		UserID:          userID,
		FromWarehouseID: in.FromWarehouseID,
		ToWarehouseID:   in.ToWarehouseID,
		Date:            in.Date,
		Notes:           in.Notes,
		Lines:           lines,
	})
	if err != nil {
		return stockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateTransferResponse{
		TransferID: result.TransferID,
		Number:     result.Number,
		Status:     result.Status,
		Warnings:   result.Warnings,
	})
}

// List godoc
// @Summary      Listar traslados
// @Tags         transfers
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máx 100"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.TransferResponse
// @Router       /api/transfers [get]
func (h *TransferHandler) List(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()
	transfers, err := h.uc.ListTransfers(orgID, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.TransferResponse, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, dto.TransferResponse{
			ID:              t.ID,
			Number:          t.Number,
			FromWarehouseID: t.FromWarehouseID,
			ToWarehouseID:   t.ToWarehouseID,
			Date:            t.Date,
			Status:          t.Status,
			Notes:           t.Notes,
		})
	}
	return c.JSON(fiber.Map{"total": len(out), "transfers": out})
}

// GetByID godoc
// @Summary      Obtener traslado con sus líneas
// @Tags         transfers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Transfer ID"
// @Success      200  {object}  dto.TransferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transfers/{id} [get]
func (h *TransferHandler) GetByID(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	transfer, err := h.uc.GetTransfer(orgID, c.Params("id"))
	if err != nil {
		return stockError(c, err)
	}
	out := dto.TransferResponse{
		ID:              transfer.ID,
		Number:          transfer.Number,
		FromWarehouseID: transfer.FromWarehouseID,
		ToWarehouseID:   transfer.ToWarehouseID,
		Date:            transfer.Date,
		Status:          transfer.Status,
		Notes:           transfer.Notes,
		Lines:           make([]dto.TransferLineResponse, 0, len(transfer.Lines)),
	}
	for _, l := range transfer.Lines {
		out.Lines = append(out.Lines, dto.TransferLineResponse{
			ItemID:   l.ItemID,
			Quantity: l.Quantity,
			Notes:    l.Notes,
		})
	}
	return c.JSON(out)
}
