// Package main запускает BFF дашбордов тренажёра: сессии, экран "My Team", каталог и прогресс.
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"csa-console/internal/backend"
	"csa-console/internal/config"
	httpapi "csa-console/internal/http"
	"csa-console/internal/jobs"
	"csa-console/internal/repository"
	"csa-console/internal/roster"
	"csa-console/internal/service"
	"csa-console/internal/session"
)

func main() {
	cfg := config.Load()

	// Контекст для корректного завершения
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Инициализация логгера (JSON)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Хранилище сессий: Redis, если настроен, иначе память процесса
	var store session.Store = session.NewMemoryStore()
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			cancel()
			log.Fatalf("redis ping failed: %v", err)
		}
		cancel()
		defer func() {
			if err := rdb.Close(); err != nil {
				logger.Error("redis close error", slog.Any("err", err))
			}
		}()
		store = session.NewRedisStore(rdb)
	}
	sessions := session.NewManager(store, cfg.SessionIdleTimeout)

	// Отчёты о сохранениях: Postgres, если задан DATABASE_URL, иначе только лог
	var (
		reports service.ReportStore = service.LogReports{Log: logger}
		pruner  jobs.ReportPruner
	)
	if cfg.DatabaseURL != "" {
		db, err := repository.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to init postgres: %v", err)
		}
		defer db.Close()

		if err := db.Migrate(ctx); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}

		repo := repository.NewReportRepo(db, repository.NewTransactionManager(db))
		reports = repo
		pruner = repo
	}

	// Клиент бэкенда: один транспорт, токен подставляется из сессии запроса
	api := backend.New(cfg.BackendURL, &http.Client{Timeout: cfg.BackendTimeout}, logger)
	backends := func(s session.Session) service.Backend {
		return api.WithTokens(sessions.Tokens(s))
	}

	policy := roster.ContinueOnError
	if cfg.AbortOnError {
		policy = roster.AbortOnError
	}

	drafts := service.NewDrafts()
	pin := service.NewPinGuard(cfg.ConfirmPIN)

	authService := service.NewAuthService(api, sessions, drafts, logger)
	rosterService := service.NewRosterService(backends, drafts, reports, pin, policy, logger)
	catalogService := service.NewCatalogService(backends, pin, logger)
	progressService := service.NewProgressService(backends)

	if _, err := jobs.StartRetentionJob(ctx, cfg, pruner, drafts, logger); err != nil {
		log.Fatalf("retention job init failed: %v", err)
	}

	handler := httpapi.NewHandler(authService, rosterService, catalogService, progressService, logger)
	handler.AllowedOrigins = cfg.CORSOrigins
	handler.SecureCookie = cfg.CookieSecure

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		logger.Info("starting http server",
			slog.String("addr", server.Addr),
			slog.String("backend", cfg.BackendURL),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("err", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}

	logger.Info("server stopped")
}
