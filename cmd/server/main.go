package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	reportapp "github.com/pos/backend/internal/application/report"
	studioapp "github.com/pos/backend/internal/application/studio"
	"github.com/pos/backend/internal/infrastructure/cache"
	"github.com/pos/backend/internal/infrastructure/config"
	"github.com/pos/backend/internal/infrastructure/logger"
	"github.com/pos/backend/internal/infrastructure/migration"
	"github.com/pos/backend/internal/infrastructure/persistence"
	"github.com/pos/backend/internal/infrastructure/printing"
	"github.com/pos/backend/internal/infrastructure/storage"
	"github.com/pos/backend/internal/infrastructure/telemetry"
	"github.com/pos/backend/internal/interfaces/http/handler"
	"github.com/pos/backend/internal/interfaces/http/middleware"
	"github.com/pos/backend/internal/interfaces/http/router"
	"github.com/pos/backend/migrations"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting POS Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("timezone", cfg.App.Timezone),
	)

	location, err := cfg.App.Location()
	if err != nil {
		log.Fatal("Invalid timezone", zap.String("timezone", cfg.App.Timezone), zap.Error(err))
	}

	// Tracing exporter; the otelgin middleware below records into it
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    version,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Database with a zap-backed GORM logger
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
		Enabled:    cfg.Telemetry.Enabled,
		DBName:     cfg.Database.DBName,
		LogFullSQL: cfg.App.Env != "production" && cfg.Log.Level == "debug",
	}, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	if cfg.Database.AutoMigrate {
		if err := runMigrations(db, log); err != nil {
			log.Fatal("Failed to apply migrations", zap.Error(err))
		}
	}

	// Welcome cache: Redis when enabled, process memory otherwise
	welcomeCache, closeCache, err := cache.NewWelcomeCacheFactory(cfg.Redis, cache.WithLogger(log)).Create()
	if err != nil {
		log.Fatal("Failed to create welcome cache", zap.Error(err))
	}
	defer func() {
		if err := closeCache(); err != nil {
			log.Error("Error closing cache", zap.Error(err))
		}
	}()

	// Optional archive of generated exports
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	archive, err := storage.NewExportArchive(startupCtx, &cfg.Storage, log)
	cancelStartup()
	if err != nil {
		log.Fatal("Failed to initialize export archive", zap.Error(err))
	}
	sweeper := storage.NewRetentionSweeper(archive, cfg.Storage.Retention, log)
	if sweeper != nil {
		sweeper.Start(context.Background())
	}

	// Repositories
	studioPageRepo := persistence.NewGormStudioPageRepository(db.DB)
	salesReportRepo := persistence.NewGormSalesReportRepository(db.DB)
	cashReportRepo := persistence.NewGormCashReportRepository(db.DB)
	soldItemsReportRepo := persistence.NewGormSoldItemsReportRepository(db.DB)
	filterOptionRepo := persistence.NewGormFilterOptionRepository(db.DB)

	// Services
	pageService := studioapp.NewPageService(studioPageRepo, welcomeCache, log)
	reportService := reportapp.NewReportService(
		salesReportRepo,
		cashReportRepo,
		soldItemsReportRepo,
		filterOptionRepo,
		location,
		cfg.Report.PageSize,
	)
	pdfRenderer := printing.NewTableRenderer(log)
	defer func() { _ = pdfRenderer.Close() }()
	exportService := reportapp.NewExportService(reportService, pdfRenderer, archive, cfg.Report.ExportLimit, log)

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	if err := pageService.EnsureDefaults(seedCtx); err != nil {
		log.Warn("Failed to seed default studio pages", zap.Error(err))
	}
	cancelSeed()

	// Handlers
	systemHandler := handler.NewSystemHandler(cfg.App.Name, version, db)
	studioPageHandler := handler.NewStudioPageHandler(pageService)
	reportHandler := handler.NewReportHandler(reportService, exportService)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware order:
	// 1. RequestID so every later layer can log it
	// 2. Tracing, tagged with the request ID
	// 3. Access log and recovery
	// 4. Security headers, CORS, body limit
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	})...)
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	systemHandler.RegisterRoutes(engine)
	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(studioPageHandler).
		Register(reportHandler).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if sweeper != nil {
		if err := sweeper.Stop(ctx); err != nil {
			log.Warn("Export retention sweeper did not stop in time", zap.Error(err))
		}
	}
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return
	}
	log.Info("Server exited gracefully")
}

// runMigrations applies the embedded migrations over the open connection pool
func runMigrations(db *persistence.Database, log *zap.Logger) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	m, err := migration.NewFromFS(sqlDB, migrations.FS, log)
	if err != nil {
		return err
	}
	// closing the migrator would close the shared *sql.DB
	return m.Up()
}
