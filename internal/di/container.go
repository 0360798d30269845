package di

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"lexorigin/internal/adapter/ollama"
	"lexorigin/internal/adapter/repository"
	"lexorigin/internal/domain"
	"lexorigin/internal/infra/config"
	"lexorigin/internal/usecase"
)

// Components holds all wired dependencies for the application. Both the
// server and the ingest CLI build their stack through here so the wiring
// stays in one place.
type Components struct {
	Store domain.CollectionStore
	LLM   domain.LLMClient

	Search   usecase.SearchUsecase
	Analyze  usecase.AnalyzeIntentUsecase
	Query    usecase.DirectQueryUsecase
	Timeline usecase.TimelineUsecase
	Stats    usecase.StatsUsecase
	Catalog  usecase.LawCatalogUsecase
	Ingest   usecase.IngestUsecase
}

// NewComponents wires all dependencies from config, database pool and the
// vector encoder. The encoder is injected so the ingest CLI can rate-limit
// its embedding calls; LLM stays nil when disabled, which downstream
// usecases treat as the fallback-only mode.
func NewComponents(cfg *config.Config, pool *pgxpool.Pool, encoder domain.VectorEncoder) *Components {
	store := repository.NewDocumentRepository(pool, encoder)

	var llm domain.LLMClient
	if cfg.LLMEnabled {
		llm = ollama.NewGenerator(cfg.OllamaURL, cfg.OllamaModel, cfg.LLMMaxTokens, cfg.OllamaTimeout)
		slog.Info("llm client initialized", "model", cfg.OllamaModel)
	} else {
		slog.Warn("llm disabled, analysis and query enhancement will use fallbacks")
	}

	enhancer := usecase.NewQueryEnhancer(llm)
	search := usecase.NewSearchUsecase(store, enhancer)

	return &Components{
		Store:    store,
		LLM:      llm,
		Search:   search,
		Analyze:  usecase.NewAnalyzeIntentUsecase(store, llm),
		Query:    usecase.NewDirectQueryUsecase(search, llm),
		Timeline: usecase.NewTimelineUsecase(store),
		Stats:    usecase.NewStatsUsecase(store),
		Catalog:  usecase.NewLawCatalogUsecase(store),
		Ingest:   usecase.NewIngestUsecase(store),
	}
}
