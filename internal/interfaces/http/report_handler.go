package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/application/reports"
	"github.com/jhoicas/Kardex-api/internal/domain"
)

// ReportHandler expone los reportes de inventario (protegido, solo lectura).
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// LowStock godoc
// @Summary      Reporte de stock bajo
// @Description  Filas ítem×bodega con existencias en o por debajo del mínimo.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "filtrar por bodega"
// @Success      200  {array}  dto.LowStockItemDTO
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	rows, err := h.uc.LowStock(c.Context(), orgID, c.Query("warehouse_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": len(rows), "items": rows})
}

// DeadStock godoc
// @Summary      Reporte de stock muerto
// @Description  Ítems con existencias pero sin salidas en la ventana (90 días
//
//	por defecto).
//
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "ventana en días"
// @Success      200  {array}  dto.DeadStockItemDTO
// @Router       /api/reports/dead-stock [get]
func (h *ReportHandler) DeadStock(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	rows, err := h.uc.DeadStock(c.Context(), orgID, c.QueryInt("days"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": len(rows), "items": rows})
}

// StockDetail godoc
// @Summary      Detalle de stock de un ítem en un rango
// @Description  Apertura, entradas, salidas y cierre calculados desde el
//
//	kardex. from y to en formato RFC3339 o YYYY-MM-DD.
//
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true  "Item ID"
// @Param        from  query  string  true  "inicio del rango"
// @Param        to    query  string  true  "fin del rango"
// @Success      200   {object}  dto.StockDetailDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reports/items/{id}/stock-detail [get]
func (h *ReportHandler) StockDetail(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	from, err := parseReportDate(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido (RFC3339 o YYYY-MM-DD)"})
	}
	to, err := parseReportDate(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido (RFC3339 o YYYY-MM-DD)"})
	}
	if !to.After(from) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser posterior a from"})
	}
	detail, err := h.uc.StockDetail(c.Context(), orgID, c.Params("id"), from, to)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(detail)
}

func parseReportDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
