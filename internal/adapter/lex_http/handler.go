package lex_http

import (
	"errors"
	"io/fs"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"lexorigin/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Handler maps HTTP requests onto the retrieval-and-analysis usecases. It is
// deliberately thin: validation of caller input happens here, everything else
// is delegated.
type Handler struct {
	search   usecase.SearchUsecase
	analyze  usecase.AnalyzeIntentUsecase
	query    usecase.DirectQueryUsecase
	timeline usecase.TimelineUsecase
	stats    usecase.StatsUsecase
	catalog  usecase.LawCatalogUsecase
	ingest   usecase.IngestUsecase

	modelName string
	dataDir   string
}

func NewHandler(
	search usecase.SearchUsecase,
	analyze usecase.AnalyzeIntentUsecase,
	query usecase.DirectQueryUsecase,
	timeline usecase.TimelineUsecase,
	stats usecase.StatsUsecase,
	catalog usecase.LawCatalogUsecase,
	ingest usecase.IngestUsecase,
	modelName, dataDir string,
) *Handler {
	return &Handler{
		search:    search,
		analyze:   analyze,
		query:     query,
		timeline:  timeline,
		stats:     stats,
		catalog:   catalog,
		ingest:    ingest,
		modelName: modelName,
		dataDir:   dataDir,
	}
}

// RegisterRoutes attaches every API route to the echo instance.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/", h.Root)
	e.GET("/api/stats", h.GetStats)

	e.GET("/api/laws", h.GetLaws)
	e.POST("/api/laws/search", h.SearchLaws)
	e.GET("/api/laws/search", h.SearchLawsGET)

	e.POST("/api/query", h.DirectQuery)
	e.GET("/api/query", h.DirectQueryGET)

	e.POST("/api/analyze-intent", h.AnalyzeIntent)

	e.POST("/api/debates/search", h.SearchDebates)
	e.GET("/api/debates/search", h.SearchDebatesGET)

	e.GET("/api/timeline", h.GetTimeline)
	e.GET("/api/timeline/:law_id", h.GetTimelineForLaw)

	e.POST("/api/admin/ingest/laws", h.IngestLaws)
	e.POST("/api/admin/ingest/debates", h.IngestDebates)
}

// Root reports service identity, useful as a liveness probe for humans.
func (h *Handler) Root(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{
		"status":  "running",
		"service": "LexOrigin API",
		"model":   h.modelName,
	})
}

func (h *Handler) GetStats(ctx echo.Context) error {
	stats, err := h.stats.Execute(ctx.Request().Context())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorBody(err))
	}
	return ctx.JSON(http.StatusOK, stats)
}

func (h *Handler) GetLaws(ctx echo.Context) error {
	limit := intQueryParam(ctx, "limit", 100)

	laws, err := h.catalog.ListLaws(ctx.Request().Context())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorBody(err))
	}
	if len(laws) > limit {
		laws = laws[:limit]
	}
	return ctx.JSON(http.StatusOK, laws)
}

type searchLawsRequest struct {
	Query    string `json:"query"`
	NResults int    `json:"n_results"`
	UseAI    bool   `json:"use_ai"`
}

func (h *Handler) SearchLaws(ctx echo.Context) error {
	req := searchLawsRequest{NResults: 10, UseAI: true}
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}
	return h.runLawSearch(ctx, req.Query, req.NResults, req.UseAI)
}

func (h *Handler) SearchLawsGET(ctx echo.Context) error {
	query := ctx.QueryParam("q")
	n := intQueryParam(ctx, "n", 10)
	useAI := boolQueryParam(ctx, "ai", true)
	return h.runLawSearch(ctx, query, n, useAI)
}

func (h *Handler) runLawSearch(ctx echo.Context, query string, n int, useAI bool) error {
	if msg, ok := validateQuery(query, n); !ok {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}

	output, err := h.search.SearchLaws(ctx.Request().Context(), usecase.SearchLawsInput{
		Query:    query,
		NResults: n,
		UseAI:    useAI,
	})
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorBody(err))
	}
	return ctx.JSON(http.StatusOK, output)
}

type searchDebatesRequest struct {
	Query       string `json:"query"`
	NResults    int    `json:"n_results"`
	PartyFilter string `json:"party_filter"`
	DateFrom    string `json:"date_from"`
	DateTo      string `json:"date_to"`
}

func (h *Handler) SearchDebates(ctx echo.Context) error {
	req := searchDebatesRequest{NResults: 10}
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}
	return h.runDebateSearch(ctx, usecase.SearchDebatesInput{
		Query:       req.Query,
		NResults:    req.NResults,
		PartyFilter: req.PartyFilter,
		DateFrom:    req.DateFrom,
		DateTo:      req.DateTo,
	})
}

func (h *Handler) SearchDebatesGET(ctx echo.Context) error {
	return h.runDebateSearch(ctx, usecase.SearchDebatesInput{
		Query:       ctx.QueryParam("q"),
		NResults:    intQueryParam(ctx, "n", 10),
		PartyFilter: ctx.QueryParam("party"),
	})
}

func (h *Handler) runDebateSearch(ctx echo.Context, input usecase.SearchDebatesInput) error {
	if msg, ok := validateQuery(input.Query, input.NResults); !ok {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}

	output, err := h.search.SearchDebates(ctx.Request().Context(), input)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorBody(err))
	}
	return ctx.JSON(http.StatusOK, output)
}

type directQueryRequest struct {
	Question string `json:"question"`
}

func (h *Handler) DirectQuery(ctx echo.Context) error {
	var req directQueryRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}
	return h.runDirectQuery(ctx, req.Question)
}

func (h *Handler) DirectQueryGET(ctx echo.Context) error {
	return h.runDirectQuery(ctx, ctx.QueryParam("q"))
}

func (h *Handler) runDirectQuery(ctx echo.Context, question string) error {
	if strings.TrimSpace(question) == "" {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "question is required"})
	}

	output, err := h.query.Execute(ctx.Request().Context(), question)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorBody(err))
	}
	return ctx.JSON(http.StatusOK, output)
}

type analyzeIntentRequest struct {
	LawText    string `json:"law_text"`
	LawContext string `json:"law_context"`
}

// AnalyzeIntent always answers 200 with a well-formed analysis; the usecase
// has no failure path.
func (h *Handler) AnalyzeIntent(ctx echo.Context) error {
	var req analyzeIntentRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}
	if strings.TrimSpace(req.LawText) == "" {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "law_text is required"})
	}

	analysis := h.analyze.Execute(ctx.Request().Context(), usecase.AnalyzeIntentInput{
		LawText:    req.LawText,
		LawContext: req.LawContext,
	})
	return ctx.JSON(http.StatusOK, analysis)
}

func (h *Handler) GetTimeline(ctx echo.Context) error {
	events, err := h.timeline.Execute(ctx.Request().Context(), "", ctx.QueryParam("topic"))
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorBody(err))
	}
	return ctx.JSON(http.StatusOK, events)
}

func (h *Handler) GetTimelineForLaw(ctx echo.Context) error {
	events, err := h.timeline.Execute(ctx.Request().Context(), ctx.Param("law_id"), "")
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorBody(err))
	}
	return ctx.JSON(http.StatusOK, events)
}

func (h *Handler) IngestLaws(ctx echo.Context) error {
	path := filepath.Join(h.dataDir, "immigration_laws.json")
	count, err := h.ingest.IngestLawsFile(ctx.Request().Context(), path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ctx.JSON(http.StatusNotFound, map[string]string{
				"error": "Laws file not found. Run the laws fetcher first.",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, errorBody(err))
	}
	return ctx.JSON(http.StatusOK, map[string]any{"status": "success", "ingested": count})
}

func (h *Handler) IngestDebates(ctx echo.Context) error {
	path := filepath.Join(h.dataDir, "hansard_debates.json")
	count, err := h.ingest.IngestDebatesFile(ctx.Request().Context(), path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ctx.JSON(http.StatusNotFound, map[string]string{
				"error": "Debates file not found. Run the Hansard fetcher first.",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, errorBody(err))
	}
	return ctx.JSON(http.StatusOK, map[string]any{"status": "success", "ingested": count})
}

func validateQuery(query string, nResults int) (string, bool) {
	if strings.TrimSpace(query) == "" {
		return "query is required", false
	}
	if nResults < 1 {
		return "n_results must be at least 1", false
	}
	return "", true
}

func errorBody(err error) map[string]string {
	return map[string]string{"error": err.Error()}
}

func intQueryParam(ctx echo.Context, name string, fallback int) int {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func boolQueryParam(ctx echo.Context, name string, fallback bool) bool {
	switch strings.ToLower(ctx.QueryParam(name)) {
	case "true", "1":
		return true
	case "false", "0":
		return false
	default:
		return fallback
	}
}
