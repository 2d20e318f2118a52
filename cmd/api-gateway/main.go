package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/tutorhub/tutorhub-api/api/swagger"
	"github.com/tutorhub/tutorhub-api/internal/filestore"
	"github.com/tutorhub/tutorhub-api/internal/handler"
	"github.com/tutorhub/tutorhub-api/internal/middleware"
	"github.com/tutorhub/tutorhub-api/internal/repository"
	"github.com/tutorhub/tutorhub-api/internal/service"
	"github.com/tutorhub/tutorhub-api/internal/vocab"
	"github.com/tutorhub/tutorhub-api/pkg/cache"
	"github.com/tutorhub/tutorhub-api/pkg/config"
	"github.com/tutorhub/tutorhub-api/pkg/database"
	"github.com/tutorhub/tutorhub-api/pkg/logger"
	corsmiddleware "github.com/tutorhub/tutorhub-api/pkg/middleware/cors"
	reqidmiddleware "github.com/tutorhub/tutorhub-api/pkg/middleware/requestid"
)

// @title TutorHub API
// @version 1.0.0
// @description Tutor marketplace: goal catalog, tutor profiles, trial-lesson bookings and inquiries
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	vocabulary, err := vocab.Load(cfg.Store.VocabFile)
	if err != nil {
		logr.Sugar().Fatalw("failed to load vocabulary", "error", err)
	}

	metrics := service.NewMetricsService()
	validate := validator.New()

	cacheSvc := buildCache(cfg, metrics, logr)

	catalogSvc, bookingSvc, inquirySvc, exportSvc, err := buildServices(cfg, cacheSvc, metrics, vocabulary, validate, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to init storage backend", "backend", cfg.Store.Backend, "error", err)
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", handler.NewMetricsHandler(metrics).Scrape)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	catalogHandler := handler.NewCatalogHandler(catalogSvc, cfg.Catalog.HomeSampleSize)
	api.GET("/goals", catalogHandler.ListGoals)
	api.GET("/teachers", catalogHandler.ListTeachers)
	api.GET("/teachers/:id", catalogHandler.GetTeacher)

	api.POST("/bookings", handler.NewBookingHandler(bookingSvc).Create)
	api.POST("/requests", handler.NewInquiryHandler(inquirySvc).Create)

	if cfg.Exports.Enabled {
		exportHandler := handler.NewExportHandler(exportSvc)
		api.GET("/admin/bookings/export", exportHandler.Bookings)
		api.GET("/admin/requests/export", exportHandler.Requests)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "backend", cfg.Store.Backend)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// buildCache connects Redis when catalog caching is enabled; a failed
// connection downgrades to a disabled cache instead of aborting startup.
func buildCache(cfg *config.Config, metrics *service.MetricsService, logr *zap.Logger) *service.CacheService {
	if !cfg.Catalog.CacheEnabled {
		return service.NewCacheService(nil, metrics, cfg.Catalog.CacheTTL, logr, false)
	}
	client, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, catalog cache disabled", "error", err)
		return service.NewCacheService(nil, metrics, cfg.Catalog.CacheTTL, logr, false)
	}
	repo := repository.NewCacheRepository(client, logr)
	return service.NewCacheService(repo, metrics, cfg.Catalog.CacheTTL, logr, true)
}

// buildServices wires the workflow services on top of whichever storage
// backend the configuration selects.
func buildServices(cfg *config.Config, cacheSvc *service.CacheService, metrics *service.MetricsService, vocabulary *vocab.Vocabulary, validate *validator.Validate, logr *zap.Logger) (*service.CatalogService, *service.BookingService, *service.InquiryService, *service.ExportService, error) {
	switch cfg.Store.Backend {
	case config.BackendPostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := database.Migrate(context.Background(), db, cfg.Store.MigrationsDir); err != nil {
			return nil, nil, nil, nil, err
		}

		goals := repository.NewGoalRepository(db)
		teachers := repository.NewTeacherRepository(db)
		bookings := repository.NewBookingRepository(db)
		requests := repository.NewRequestRepository(db)

		catalogSvc := service.NewCatalogService(goals, teachers, cacheSvc, metrics, vocabulary, logr)
		bookingSvc := service.NewBookingService(bookings, cacheSvc, metrics, vocabulary, validate, logr)
		inquirySvc := service.NewInquiryService(goals, requests, metrics, validate, logr)
		exportSvc := service.NewExportService(bookings, requests, logr)
		return catalogSvc, bookingSvc, inquirySvc, exportSvc, nil

	case config.BackendFile:
		st, err := filestore.New(cfg.Store.DataDir, logr)
		if err != nil {
			return nil, nil, nil, nil, err
		}

		catalogSvc := service.NewCatalogService(st, st, cacheSvc, metrics, vocabulary, logr)
		bookingSvc := service.NewBookingService(st, cacheSvc, metrics, vocabulary, validate, logr)
		inquirySvc := service.NewInquiryService(st, st, metrics, validate, logr)
		exportSvc := service.NewExportService(st, st, logr)
		return catalogSvc, bookingSvc, inquirySvc, exportSvc, nil

	default:
		return nil, nil, nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Store.Backend)
	}
}
