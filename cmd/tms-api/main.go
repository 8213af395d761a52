package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/edudesk/tms-api/api/swagger"
	"github.com/edudesk/tms-api/internal/handler"
	"github.com/edudesk/tms-api/internal/middleware"
	"github.com/edudesk/tms-api/internal/service"
	"github.com/edudesk/tms-api/internal/snapshot"
	"github.com/edudesk/tms-api/internal/store"
	"github.com/edudesk/tms-api/pkg/cache"
	"github.com/edudesk/tms-api/pkg/config"
	"github.com/edudesk/tms-api/pkg/database"
	"github.com/edudesk/tms-api/pkg/jobs"
	"github.com/edudesk/tms-api/pkg/logger"
	corsmiddleware "github.com/edudesk/tms-api/pkg/middleware/cors"
	reqidmiddleware "github.com/edudesk/tms-api/pkg/middleware/requestid"
	"github.com/edudesk/tms-api/pkg/storage"
)

// @title EduDesk TMS API
// @version 1.0.0
// @description Teacher management service with durable snapshots and derived analytics
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	snapshots, closeBackend, err := newSnapshotBackend(ctx, cfg)
	if err != nil {
		logr.Sugar().Fatalw("failed to init snapshot backend", "backend", cfg.Snapshot.Backend, "error", err)
	}
	defer closeBackend()
	logr.Sugar().Infow("snapshot backend ready", "backend", cfg.Snapshot.Backend)

	metricsSvc := service.NewMetricsService()
	domainStore := store.New(snapshots,
		store.WithLogger(logr),
		store.WithMetrics(metricsSvc),
		store.WithNamespace(cfg.Snapshot.Namespace),
	)
	domainStore.Load(ctx)

	validate := validator.New()
	teacherSvc := service.NewTeacherService(domainStore, validate, logr)
	courseSvc := service.NewCourseService(domainStore, validate, logr)
	studentSvc := service.NewStudentService(domainStore, validate, logr)
	meetingSvc := service.NewMeetingService(domainStore, validate, logr)
	leaveSvc := service.NewLeaveService(domainStore, validate, logr)
	analyticsSvc := service.NewAnalyticsService(domainStore, logr)

	deps := handler.RouterDeps{
		Teachers:  handler.NewTeacherHandler(teacherSvc),
		Courses:   handler.NewCourseHandler(courseSvc),
		Students:  handler.NewStudentHandler(studentSvc),
		Meetings:  handler.NewMeetingHandler(meetingSvc),
		Leaves:    handler.NewLeaveHandler(leaveSvc),
		Analytics: handler.NewAnalyticsHandler(analyticsSvc),
		Metrics:   handler.NewMetricsHandler(metricsSvc),
	}

	var exportQueue *jobs.Queue
	if cfg.Exports.Enabled {
		exportStorage, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
		if err != nil {
			logr.Sugar().Fatalw("failed to init export storage", "error", err)
		}
		signer := storage.NewSignedURLSigner(cfg.Exports.SignedURLSecret, cfg.Exports.SignedURLTTL)

		var exportSvc *service.ExportService
		exportQueue = jobs.NewQueue("exports", func(ctx context.Context, job jobs.Job) error {
			return exportSvc.Handle(ctx, job)
		}, jobs.QueueConfig{
			Workers:    cfg.Exports.WorkerConcurrency,
			MaxRetries: cfg.Exports.WorkerRetries,
			Logger:     logr,
		})
		exportSvc = service.NewExportService(domainStore, exportStorage, signer, exportQueue, validate, logr, service.ExportServiceConfig{
			ResultTTL:       cfg.Exports.SignedURLTTL,
			CleanupInterval: cfg.Exports.CleanupInterval,
			DownloadPath:    cfg.APIPrefix + "/exports/download",
		})
		exportQueue.Start(ctx)
		exportSvc.StartCleanup(ctx)
		deps.Exports = handler.NewExportHandler(exportSvc)
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	handler.RegisterRoutes(r, cfg, deps)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Warn("server shutdown failed", zap.Error(err))
	}
	if exportQueue != nil {
		exportQueue.Stop()
	}
}

// newSnapshotBackend builds the configured persistence backend for the
// domain store. The returned closer releases the underlying connection.
func newSnapshotBackend(ctx context.Context, cfg *config.Config) (snapshot.Store, func(), error) {
	switch cfg.Snapshot.Backend {
	case config.SnapshotRedis:
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return snapshot.NewRedis(client), func() { _ = client.Close() }, nil
	case config.SnapshotPostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		pg := snapshot.NewPostgres(db)
		if err := pg.Init(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return pg, func() { _ = db.Close() }, nil
	default:
		fs, err := snapshot.NewFilesystem(cfg.Snapshot.Dir)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() {}, nil
	}
}
