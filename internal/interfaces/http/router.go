package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-api/internal/application/advisor"
	"github.com/jhoicas/bodega-api/internal/application/auth"
	"github.com/jhoicas/bodega-api/internal/application/catalog"
	"github.com/jhoicas/bodega-api/internal/application/ledger"
	"github.com/jhoicas/bodega-api/internal/application/ports"
	"github.com/jhoicas/bodega-api/internal/application/reporting"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC   *catalog.UseCase
	LedgerUC    *ledger.UseCase
	AdvisorUC   *advisor.UseCase
	ReportingUC *reporting.UseCase
	AuthUC      *auth.UseCase
	DescSvc     ports.DescriptionService
	JWTSecret   string
	UploadsDir  string
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Imágenes de producto subidas (público)
	if deps.UploadsDir != "" {
		app.Static("/uploads", deps.UploadsDir)
	}

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/sku/:sku", productHandler.GetBySKU)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/label", productHandler.Label)
	products.Put("/:id", productHandler.Update)
	// Borrar un producto elimina también su historial; solo admin.
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Inventory: libro de movimientos + asesor de reposición (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.LedgerUC, deps.AdvisorUC)
	invGroup.Post("/movements", inventoryHandler.Apply)
	invGroup.Post("/movements/bulk", inventoryHandler.ApplyBulk)
	invGroup.Get("/movements/:productId", inventoryHandler.History)
	invGroup.Get("/activity", inventoryHandler.Activity)
	invGroup.Get("/restock", inventoryHandler.Restock)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportingUC)
	reports.Get("/dashboard", reportHandler.Dashboard)
	reports.Get("/warehouse-map", reportHandler.WarehouseMap)
	reports.Get("/export/:id", reportHandler.Export)

	// AI (protegido)
	aiGroup := protected.Group("/ai")
	aiHandler := NewAIHandler(deps.DescSvc, deps.Log)
	aiGroup.Post("/description", aiHandler.GenerateDescription)
}
