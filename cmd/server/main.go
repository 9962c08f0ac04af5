package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"pravobot/internal/catalog"
	"pravobot/internal/config"
	"pravobot/internal/core"
	"pravobot/internal/db"
	httpserver "pravobot/internal/http"
	"pravobot/internal/llm"
)

func main() {
	// A missing .env file is fine; real deployments set the environment.
	_ = godotenv.Load()
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	if cfg.DatabaseURL == "" {
		logger.Error("DATABASE_URL must be set")
		os.Exit(1)
	}
	dbConn, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbConn.PingContext(ctx); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	if err := db.Migrate(context.Background(), dbConn); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	repo := db.NewRepository(dbConn, db.NewNotifier(dbConn, cfg.BookingNotifyChannel), logger)

	index := catalog.New(cfg.VideoCatalogPath, logger)
	if err := index.Load(); err != nil {
		// The assistant works without video suggestions; the refresh loop
		// will pick the catalog up once the scraper has written it.
		logger.Warn("video catalog not loaded", "path", cfg.VideoCatalogPath, "error", err)
	}
	go index.Refresh(context.Background(), cfg.CatalogRefreshInterval)

	sessions := core.NewMemoryStore()
	assistant := core.NewAssistant(llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel), index, cfg.OpenAIMaxTokens, logger)
	booking := core.NewBookingFlow(sessions, repo, logger)
	router := core.NewRouter(sessions, booking, assistant, logger)

	srv := httpserver.NewServer(router, httpserver.NewMetrics(), logger)
	addr := ":" + cfg.Port
	logger.Info("listening", "addr", addr)
	if err := http.ListenAndServe(addr, srv); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
