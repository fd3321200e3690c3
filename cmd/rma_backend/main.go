package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/restolane/resto_management_app/internal/core/services"
	"github.com/restolane/resto_management_app/internal/handlers"
	"github.com/restolane/resto_management_app/internal/middleware"
	"github.com/restolane/resto_management_app/internal/repositories/memory"
	"github.com/restolane/resto_management_app/pkg/config"
)

// @title RMA Backend API
// @version 1.0
// @description Restaurant management backend: chart of accounts, journal entries, supplier invoices and derived financial reports.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// In-memory stores for the single-process deployment
	accountRepo := memory.NewAccountRepository()
	journalRepo := memory.NewJournalRepository()
	invoiceRepo := memory.NewInvoiceRepository()
	cashFlowSource := memory.NewStaticCashFlowSource()

	var supplierRepo *memory.SupplierRepository
	if cfg.EnableSeedData {
		if err := memory.SeedChartOfAccounts(context.Background(), accountRepo); err != nil {
			logger.Error("Failed to seed chart of accounts", slog.String("error", err.Error()))
			os.Exit(1)
		}
		supplierRepo = memory.NewSupplierRepository(memory.SeedSuppliers()...)
		logger.Info("Seed data loaded")
	} else {
		supplierRepo = memory.NewSupplierRepository()
	}

	svcContainer := services.NewServiceContainer(accountRepo, journalRepo, invoiceRepo, supplierRepo, cashFlowSource)

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	ipLimiter := limiter.New(limitermem.NewStore(), rate)
	r.Use(middleware.RateLimit(ipLimiter))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, svcContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
