package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"todolist/internal/auth"
	"todolist/internal/config"
	apphttp "todolist/internal/http"
	"todolist/internal/repository"
	"todolist/internal/repository/memory"
	"todolist/internal/repository/sqlite"
	"todolist/internal/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if cfg.UsingDefaultSecret() {
		logger.Warn("TODO_AUTH_JWTSECRET is not set; using the insecure development secret")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	userRepo, taskRepo, cleanup, err := buildRepositories(cfg)
	if err != nil {
		logger.Fatalf("setup store: %v", err)
	}
	defer cleanup()

	if err := userRepo.Init(ctx); err != nil {
		logger.Fatalf("init user repository: %v", err)
	}
	if err := taskRepo.Init(ctx); err != nil {
		logger.Fatalf("init task repository: %v", err)
	}

	userService := service.NewUserService(userRepo)
	taskService := service.NewTaskService(taskRepo)

	seeded, err := userService.Seed(ctx, service.SeedUser{
		Name:     cfg.Seed.Name,
		Email:    cfg.Seed.Email,
		Password: cfg.Seed.Password,
	})
	if err != nil {
		logger.Fatalf("seed users: %v", err)
	}
	if seeded != nil {
		logger.Infof("seeded demo user %s", seeded.Email)
	}

	issuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler := apphttp.NewHandler(userService, taskService, issuer, logger)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}

func buildRepositories(cfg config.Config) (repository.UserRepository, repository.TaskRepository, func(), error) {
	switch cfg.Database.Driver {
	case "memory":
		return memory.NewUserRepository(), memory.NewTaskRepository(), func() {}, nil
	case "sqlite":
		db, err := sqlite.Open(cfg.Database.Path)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open database: %w", err)
		}
		cleanup := func() { _ = db.Close() }
		return sqlite.NewUserRepository(db), sqlite.NewTaskRepository(db), cleanup, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}
