package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/late-comers-api/api/swagger"
	"github.com/noah-isme/late-comers-api/internal/handler"
	internalmiddleware "github.com/noah-isme/late-comers-api/internal/middleware"
	"github.com/noah-isme/late-comers-api/internal/models"
	"github.com/noah-isme/late-comers-api/internal/repository"
	"github.com/noah-isme/late-comers-api/internal/service"
	"github.com/noah-isme/late-comers-api/pkg/cache"
	"github.com/noah-isme/late-comers-api/pkg/config"
	"github.com/noah-isme/late-comers-api/pkg/database"
	"github.com/noah-isme/late-comers-api/pkg/export"
	"github.com/noah-isme/late-comers-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/late-comers-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/late-comers-api/pkg/middleware/requestid"
)

// @title Late Comers API
// @version 1.0.0
// @description Campus late-arrival tracking service
// @BasePath /api
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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, statistics caching disabled", "error", err)
		redisClient = nil
	}

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	teacherRepo := repository.NewTeacherRepository(db)
	recordRepo := repository.NewRecordRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	defer cacheRepo.Close() //nolint:errcheck

	authSvc := service.NewAuthService(teacherRepo, validate, logr, service.AuthConfig{
		TokenSecret: cfg.JWT.Secret,
		TokenExpiry: cfg.JWT.Expiration,
		Issuer:      "late-comers-api",
	})
	recordSvc := service.NewRecordService(recordRepo, cacheRepo, metricsSvc, validate, logr, cfg.Stats.CacheTTL)
	reportSvc := service.NewReportService(recordRepo, export.NewCSVExporter(), export.NewPDFExporter(), logr)

	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = authSvc.EnsureDefaultTeacher(seedCtx, cfg.Seed.TeacherID, cfg.Seed.Password, models.Section(cfg.Seed.Section))
	cancel()
	if err != nil {
		logr.Sugar().Fatalw("failed to seed default teacher", "error", err)
	}

	authHandler := handler.NewAuthHandler(authSvc)
	recordHandler := handler.NewRecordHandler(recordSvc)
	reportHandler := handler.NewReportHandler(reportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.POST("/teacher/login", authHandler.Login)
	api.GET("/students/:regdNumber", recordHandler.ByRegdNumber)

	secured := api.Group("", internalmiddleware.JWT(authSvc), internalmiddleware.RequireTeacher())
	secured.GET("/teacher/section", authHandler.Section)
	secured.POST("/students", recordHandler.Add)
	secured.GET("/students", recordHandler.List)
	secured.GET("/department/:department", recordHandler.DepartmentToday)
	secured.DELETE("/students/:id", recordHandler.Delete)
	secured.GET("/statistics", recordHandler.Statistics)
	secured.GET("/reports/daily", reportHandler.Daily)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
