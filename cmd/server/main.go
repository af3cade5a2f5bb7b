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
	"go.uber.org/zap"
	"gorm.io/gorm"

	"mdf_gestor/internal/controller"
	"mdf_gestor/internal/middleware"
	"mdf_gestor/internal/model"
	"mdf_gestor/internal/repository"
	"mdf_gestor/internal/router"
	"mdf_gestor/internal/service"
	"mdf_gestor/internal/task"
	"mdf_gestor/pkg/config"
	"mdf_gestor/pkg/database"
	"mdf_gestor/pkg/logger"
)

func main() {
	// 1. configuration + logging
	cfg, err := config.Load(os.Getenv("MDF_CONFIG_FILE"))
	if err != nil {
		panic(err)
	}
	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// 2. database
	db, err := database.InitDB(cfg.Database.DSN,
		&model.Brand{},
		&model.Line{},
		&model.Board{},
		&model.User{},
	)
	if err != nil {
		log.Fatal("database init failed", zap.Error(err))
	}

	// 3. dependency wiring
	deps, err := initDependencies(cfg, db, log)
	if err != nil {
		log.Fatal("dependency init failed", zap.Error(err))
	}

	// 4. seed admin account
	if cfg.Auth.Enabled {
		if err := deps.Services.Auth.EnsureAdmin(context.Background(), cfg.Auth.AdminUser, cfg.Auth.AdminPassword); err != nil {
			log.Fatal("admin seed failed", zap.Error(err))
		}
	}

	// 5. background tasks
	initTasks(cfg, deps, log)

	// 6. routes + server
	r := buildRouter(cfg, deps, log)
	startServer(cfg, r, log)
}

// ==================== dependency container ====================

type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
}

type Repositories struct {
	Brand repository.BrandRepository
	Line  repository.LineRepository
	Board repository.BoardRepository
	User  repository.UserRepository
}

type Services struct {
	RefCode *service.RefCodeService
	Board   *service.BoardService
	Brand   *service.BrandService
	Line    *service.LineService
	Import  *service.ImportService
	Auth    *service.AuthService
	Pricing *service.PriceService
	Storage service.StorageProvider
}

func initDependencies(cfg *config.Config, db *gorm.DB, log *zap.Logger) (*Dependencies, error) {
	repos := &Repositories{
		Brand: repository.NewBrandRepository(db),
		Line:  repository.NewLineRepository(db),
		Board: repository.NewBoardRepository(db),
		User:  repository.NewUserRepository(db),
	}

	storage, err := service.NewStorageProvider(&service.StorageConfig{
		Provider:  cfg.Storage.Provider,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		CDNDomain: cfg.Storage.CDNDomain,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
	})
	if err != nil {
		return nil, err
	}

	svcs := &Services{Storage: storage}
	svcs.RefCode = service.NewRefCodeService(repos.Brand, repos.Line)
	svcs.Pricing = service.NewPriceService(service.PricingConfig{
		URL:     cfg.Pricing.URL,
		APIKey:  cfg.Pricing.APIKey,
		Timeout: cfg.Pricing.Timeout,
	})
	svcs.Board = service.NewBoardService(repos.Board, svcs.RefCode, storage, svcs.Pricing)
	svcs.Brand = service.NewBrandService(repos.Brand)
	svcs.Line = service.NewLineService(repos.Line)
	svcs.Import = service.NewImportService(svcs.Board)
	svcs.Auth = service.NewAuthService(repos.User, service.AuthConfig{
		SecretKey: cfg.Auth.JWTSecret,
		TokenTTL:  cfg.Auth.TokenTTL,
	})

	ctls := &router.Controllers{
		Board:  controller.NewBoardController(svcs.Board),
		Brand:  controller.NewBrandController(svcs.Brand),
		Line:   controller.NewLineController(svcs.Line),
		Import: controller.NewImportController(svcs.Import),
		Auth:   controller.NewAuthController(svcs.Auth),
	}

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    svcs,
		Controllers: ctls,
	}, nil
}

// ==================== background tasks ====================

func initTasks(cfg *config.Config, deps *Dependencies, log *zap.Logger) {
	// orphaned-upload sweep only applies to local storage
	if cfg.Storage.Provider != "local" && cfg.Storage.Provider != "" {
		return
	}
	cleanup := task.NewCleanupTask(deps.Repos.Board, cfg.Storage.BasePath, cfg.Cleanup.Spec, log)
	if err := cleanup.Start(); err != nil {
		log.Error("cleanup task failed to start", zap.Error(err))
	}
}

// ==================== server ====================

func buildRouter(cfg *config.Config, deps *Dependencies, log *zap.Logger) *gin.Engine {
	opts := router.Options{RequireAuth: cfg.Auth.Enabled}
	if cfg.Storage.Provider == "local" || cfg.Storage.Provider == "" {
		opts.UploadDir = cfg.Storage.BasePath
	}
	return router.SetupRouter(log, deps.Controllers, middleware.JWTAuth(deps.Services.Auth), opts)
}

func startServer(cfg *config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
}
