package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Kardex-api/internal/application/auth"
	"github.com/jhoicas/Kardex-api/internal/application/reports"
	appstock "github.com/jhoicas/Kardex-api/internal/application/stock"
	"github.com/jhoicas/Kardex-api/internal/application/usecase"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ItemUC      *usecase.ItemUseCase
	WarehouseUC *usecase.WarehouseUseCase
	Accountant  *appstock.Accountant
	StockQuery  *appstock.QueryUseCase
	Reconcile   *appstock.ReconcileUseCase
	TransferUC  *appstock.TransferUseCase
	ReportUC    *reports.ReportUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Items (protegido)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)

	// Warehouses (protegido; crear/editar solo admin y bodeguero)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Post("/", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), warehouseHandler.Create)
	warehouses.Put("/:id", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), warehouseHandler.Update)

	// Stock: movimientos del kardex y sus proyecciones (protegido)
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.Accountant, deps.StockQuery, deps.Reconcile)
	stockGroup.Post("/movements", stockHandler.RecordMovement)
	stockGroup.Get("/movements/:id", stockHandler.GetMovement)
	stockGroup.Get("/items/:id/movements", stockHandler.GetMovementHistory)
	stockGroup.Get("/items/:id/distribution", stockHandler.GetStockDistribution)
	stockGroup.Post("/items/:id/reconcile", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), stockHandler.Reconcile)

	// Transfers (protegido; crear solo admin y bodeguero)
	transfers := protected.Group("/transfers")
	transferHandler := NewTransferHandler(deps.TransferUC)
	transfers.Post("/", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), transferHandler.Create)
	transfers.Get("/", transferHandler.List)
	transfers.Get("/:id", transferHandler.GetByID)

	// Reports (protegido, solo lectura)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/low-stock", reportHandler.LowStock)
	reportsGroup.Get("/dead-stock", reportHandler.DeadStock)
	reportsGroup.Get("/items/:id/stock-detail", reportHandler.StockDetail)
}
