package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/ElectroStock-api/internal/application/auth"
	"github.com/jhoicas/ElectroStock-api/internal/application/stock"
	"github.com/jhoicas/ElectroStock-api/internal/application/usecase"
	"github.com/jhoicas/ElectroStock-api/internal/infrastructure/cache"
	"github.com/jhoicas/ElectroStock-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/ElectroStock-api/internal/interfaces/http"
	"github.com/jhoicas/ElectroStock-api/pkg/config"
	"github.com/jhoicas/ElectroStock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	if err := postgres.Migrate(cfg.DB.DSN()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	transactionRepo := postgres.NewStockTransactionRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Cache de categorías (opcional: sin REDIS_ADDR se trabaja directo a DB)
	var categoryCache usecase.CategoryListCache
	if cfg.Redis.Addr != "" {
		client, err := cache.Connect(cfg.Redis.Addr, cfg.Redis.Password)
		if err != nil {
			log.Warn().Err(err).Msg("Redis no disponible, se sigue sin cache")
		} else {
			defer client.Close()
			categoryCache = cache.NewCategoryCache(client)
		}
	}

	categoryUC := usecase.NewCategoryUseCase(categoryRepo, productRepo, categoryCache)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	processStockUC := stock.NewProcessTransactionUseCase(txRunner, transactionRepo)
	reportUC := usecase.NewReportUseCase(reportRepo, transactionRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ElectroStock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:   categoryUC,
		ProductUC:    productUC,
		ProcessStock: processStockUC,
		ReportUC:     reportUC,
		UserUC:       userUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
