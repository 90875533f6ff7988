package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-ledger/internal/application/auth"
	"github.com/tu-usuario/almacen-ledger/internal/application/ledger"
	"github.com/tu-usuario/almacen-ledger/internal/domain/entity"
	"github.com/tu-usuario/almacen-ledger/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Ledger    *ledger.Ledger
	AuthUC    *auth.AuthUseCase
	Report    *pdf.MarotoReportGenerator
	JWTSecret string
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

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.Ledger)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Post("/", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), warehouseHandler.Create)

	// Products (protegido; mutaciones solo admin/bodeguero)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.Ledger)
	products.Get("/", productHandler.List)
	products.Get("/export", productHandler.Export)
	mutate := RequireRole(entity.RoleAdmin, entity.RoleBodeguero)
	products.Post("/", mutate, productHandler.Create)
	products.Post("/import", mutate, productHandler.Import)
	products.Put("/:code", mutate, productHandler.Update)
	products.Delete("/:code", mutate, productHandler.Delete)

	// Movements (protegido; mutaciones solo admin/bodeguero)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.Ledger, deps.Report)
	movements.Get("/", movementHandler.List)
	movements.Get("/report", movementHandler.Report)
	movements.Post("/inbound", mutate, movementHandler.RecordInbound)
	movements.Post("/outbound", mutate, movementHandler.RecordOutbound)
	movements.Post("/transfers", mutate, movementHandler.Transfer)
}
