package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ElectroStock-api/internal/application/auth"
	"github.com/jhoicas/ElectroStock-api/internal/application/stock"
	"github.com/jhoicas/ElectroStock-api/internal/application/usecase"
	"github.com/jhoicas/ElectroStock-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC   *usecase.CategoryUseCase
	ProductUC    *usecase.ProductUseCase
	ProcessStock *stock.ProcessTransactionUseCase
	ReportUC     *usecase.ReportUseCase
	UserUC       *usecase.UserUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
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

	// Categories (protegido; escrituras solo ADMIN/MANAGER)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", RequireRole(entity.RoleAdmin, entity.RoleManager), categoryHandler.Save)
	categories.Delete("/:id", RequireRole(entity.RoleAdmin, entity.RoleManager), categoryHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	stockHandler := NewStockHandler(deps.ProcessStock)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", RequireRole(entity.RoleAdmin, entity.RoleManager), productHandler.Save)
	products.Delete("/:id", RequireRole(entity.RoleAdmin, entity.RoleManager), productHandler.Delete)
	products.Get("/:id/transactions", stockHandler.History)

	// Stock (protegido; cualquier rol autenticado registra movimientos)
	stockGroup := protected.Group("/stock")
	stockGroup.Post("/transactions", stockHandler.Process)
	stockGroup.Get("/transactions", stockHandler.Recent)

	// Reports y dashboard (protegido)
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports", reportHandler.GetReports)
	protected.Get("/dashboard", reportHandler.Dashboard)

	// Users (solo ADMIN)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Save)
}
