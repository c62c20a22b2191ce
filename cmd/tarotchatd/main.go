package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/msull/emilytarot/internal/adapters/decks"
	httpadapter "github.com/msull/emilytarot/internal/adapters/http"
	"github.com/msull/emilytarot/internal/adapters/images"
	"github.com/msull/emilytarot/internal/adapters/llm/openai"
	"github.com/msull/emilytarot/internal/adapters/sessions"
	"github.com/msull/emilytarot/internal/app"
	"github.com/msull/emilytarot/internal/config"
	"github.com/msull/emilytarot/internal/ports"
)

// stdRNG delegates to math/rand/v2 (auto-seeded).
type stdRNG struct{}

func (stdRNG) Intn(n int) int { return rand.IntN(n) }

func main() {
	// .env is optional; real deployments use the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	var store ports.SessionStore
	switch cfg.SessionBackend {
	case config.BackendSQLite:
		sqliteStore, err := sessions.NewSQLite(cfg.SQLitePath)
		if err != nil {
			logger.Error("failed to open session database", "error", err)
			os.Exit(1)
		}
		defer sqliteStore.Close()
		store = sqliteStore
	default:
		store = sessions.NewFileStore(cfg.SessionDir)
	}

	deckStore, err := decks.NewEmbeddedStore()
	if err != nil {
		logger.Error("failed to load deck data", "error", err)
		os.Exit(1)
	}

	llmClient := openai.NewClient(
		&http.Client{Timeout: cfg.LLMTimeout},
		cfg.OpenAIAPIKey,
		cfg.OpenAIBaseURL,
		cfg.LLMModel,
		logger,
	)

	svc := app.NewReadingService(
		deckStore,
		llmClient,
		llmClient,
		images.NewDirLibrary(cfg.ImageDir, cfg.ImagePrefix),
		stdRNG{},
		logger,
		cfg.DeckID,
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))

	e.Static(cfg.ImagePrefix, cfg.ImageDir)

	handler := httpadapter.NewHandler(svc, store, logger)
	handler.Register(e)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr)
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
