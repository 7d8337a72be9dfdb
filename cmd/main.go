// Package main wires the HTTP server for the resume analysis service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/drjayaswal/biasbreaker-backend/config"
	"github.com/drjayaswal/biasbreaker-backend/internal/analyzer"
	"github.com/drjayaswal/biasbreaker-backend/internal/auth"
	"github.com/drjayaswal/biasbreaker-backend/internal/drive"
	"github.com/drjayaswal/biasbreaker-backend/internal/repository"
	"github.com/drjayaswal/biasbreaker-backend/internal/storage"
	"github.com/drjayaswal/biasbreaker-backend/internal/transport/http/middleware"
	handlers_fiber "github.com/drjayaswal/biasbreaker-backend/internal/transport/http/server/handlers-fiber"
	"github.com/drjayaswal/biasbreaker-backend/internal/usecase"
	"github.com/drjayaswal/biasbreaker-backend/internal/usecase/domain"
	"github.com/drjayaswal/biasbreaker-backend/internal/worker"
	"github.com/drjayaswal/biasbreaker-backend/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	tokens, err := auth.NewTokenManager(cfg.Auth)
	if err != nil {
		log.Errorw("token manager error", "error", err)
		return
	}

	store, err := storage.NewS3Store(ctx, log, cfg.AWS)
	if err != nil {
		log.Errorw("storage initialization error", "error", err)
		return
	}

	pool := worker.New(ctx, log, cfg.Worker)
	if err := pool.OnStart(ctx); err != nil {
		log.Errorw("worker pool start error", "error", err)
		return
	}
	defer func() {
		_ = pool.OnStop(context.Background())
	}()

	timeout := cfg.HTTP.RequestTimeout
	uc := usecase.New(log, ctx, repo, timeout, domain.Deps{
		Tokens:   tokens,
		Store:    store,
		Drive:    drive.NewClient(log),
		Analyzer: analyzer.New(log, cfg.ML),
		Pool:     pool,
	})

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.FrontendURL,
		AllowCredentials: true,
	}))
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc)
	h.Register(serv, middleware.BearerAuth(tokens))

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
