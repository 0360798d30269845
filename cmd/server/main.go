package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"lexorigin/internal/adapter/lex_http"
	"lexorigin/internal/adapter/ollama"
	"lexorigin/internal/di"
	"lexorigin/internal/domain"
	"lexorigin/internal/infra"
	"lexorigin/internal/infra/config"
	"lexorigin/internal/infra/logger"
	"lexorigin/internal/usecase"
)

func main() {
	// 1. Load Config
	cfg := config.Load()

	// 2. Initialize Logger
	log := logger.NewWithOTel(cfg.OTelLogs)
	slog.SetDefault(log)

	// 3. Initialize DB
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
	dbPool, err := infra.NewPostgresDB(context.Background(), dsn)
	if err != nil {
		log.Error("failed to connect to db", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Wire Components
	embedder := ollama.NewEmbedder(cfg.OllamaURL, cfg.EmbeddingModel, cfg.OllamaTimeout)
	components := di.NewComponents(cfg, dbPool, embedder)

	// 5. Seed empty collections from the scraper output files
	seedCollections(cfg, components.Store, components.Ingest, log)

	// 6. Initialize Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// 7. Register Handlers
	handler := lex_http.NewHandler(
		components.Search,
		components.Analyze,
		components.Query,
		components.Timeline,
		components.Stats,
		components.Catalog,
		components.Ingest,
		cfg.OllamaModel,
		cfg.DataDir,
	)
	lex_http.RegisterRoutes(e, handler)

	// 8. Health Checks
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/readyz", func(c echo.Context) error {
		if err := dbPool.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "db down", "error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
	})

	// 9. Start Server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Info("starting server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server")
		}
	}()

	// 10. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}

// seedCollections ingests the scraper output files on startup when a
// collection is empty or a refresh is forced. Missing files only warn; the
// admin endpoints and the ingest CLI can load data later.
func seedCollections(cfg *config.Config, store domain.CollectionStore, ingest usecase.IngestUsecase, log *slog.Logger) {
	ctx := context.Background()

	lawCount, err := store.Count(ctx, domain.CollectionLegalTexts)
	if err != nil {
		log.Error("failed to count laws at startup", "error", err)
		return
	}
	debateCount, err := store.Count(ctx, domain.CollectionHansardDebates)
	if err != nil {
		log.Error("failed to count debates at startup", "error", err)
		return
	}
	log.Info("existing data", "laws", lawCount, "debates", debateCount)

	if lawCount == 0 || cfg.ForceRefresh {
		path := filepath.Join(cfg.DataDir, "immigration_laws.json")
		if n, err := ingest.IngestLawsFile(ctx, path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Warn("laws file not found, skipping seed", "path", path)
			} else {
				log.Error("failed to seed laws", "error", err)
			}
		} else {
			log.Info("seeded laws", "count", n)
		}
	}

	if debateCount == 0 || cfg.ForceRefresh {
		path := filepath.Join(cfg.DataDir, "hansard_debates.json")
		if n, err := ingest.IngestDebatesFile(ctx, path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Warn("debates file not found, skipping seed", "path", path)
			} else {
				log.Error("failed to seed debates", "error", err)
			}
		} else {
			log.Info("seeded debates", "count", n)
		}
	}
}
