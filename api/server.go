// Package api exposes the SEO workflow pipeline over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/howaiconnects/seogate/config"
	"github.com/howaiconnects/seogate/generation"
	"github.com/howaiconnects/seogate/hootsuite"
	"github.com/howaiconnects/seogate/prompts"
	"github.com/howaiconnects/seogate/scrape"
	"github.com/howaiconnects/seogate/semrush"
	"github.com/howaiconnects/seogate/storage"
)

// Version reported by the health endpoint.
const Version = "1.0.0"

// Deps are the collaborators the handlers orchestrate.
type Deps struct {
	Resolver  *prompts.Resolver
	Generator *generation.Service
	Records   storage.RecordStore
	SEMrush   *semrush.Client
	Hootsuite *hootsuite.Client
	Scraper   *scrape.Scraper
}

// Server maps HTTP requests to SEO workflow operations.
type Server struct {
	apiToken  string
	limiter   *ipRateLimiter
	resolver  *prompts.Resolver
	generator *generation.Service
	records   storage.RecordStore
	semrush   *semrush.Client
	hootsuite *hootsuite.Client
	scraper   *scrape.Scraper
}

// NewServer creates a Server from configuration and collaborators.
func NewServer(cfg config.ServerConfig, deps Deps) *Server {
	return &Server{
		apiToken:  cfg.APIToken,
		limiter:   newIPRateLimiter(cfg.RatePerMinute, cfg.RateBurst),
		resolver:  deps.Resolver,
		generator: deps.Generator,
		records:   deps.Records,
		semrush:   deps.SEMrush,
		hootsuite: deps.Hootsuite,
		scraper:   deps.Scraper,
	}
}

// Handler builds the route table. Everything except /health requires the
// bearer token and counts against the per-IP rate limit.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", logRequest(s.handleHealth))

	guard := func(h http.HandlerFunc) http.HandlerFunc {
		return logRequest(s.rateLimit(s.requireAuth(h)))
	}

	mux.HandleFunc("POST /api/v1/setup/analyze-website", guard(s.handleAnalyzeWebsite))
	mux.HandleFunc("POST /api/v1/setup/generate-content-strategy", guard(s.handleGenerateContentStrategy))
	mux.HandleFunc("POST /api/v1/seo/keywords/research", guard(s.handleKeywordResearch))
	mux.HandleFunc("POST /api/v1/seo/analyze", guard(s.handleAnalyzeContent))
	mux.HandleFunc("POST /api/v1/seo/generate", guard(s.handleGenerateContent))
	mux.HandleFunc("POST /api/v1/competitors/analyze", guard(s.handleCompetitorAnalysis))
	mux.HandleFunc("POST /api/v1/social/generate-posts", guard(s.handleGenerateSocialPosts))
	mux.HandleFunc("GET /api/v1/models", guard(s.handleModelInfo))
	mux.HandleFunc("POST /api/v1/prompts/cache/clear", guard(s.handleClearPromptCache))

	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   Version,
	})
}

func (s *Server) handleModelInfo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"available_models": s.generator.ModelInfos(),
		"service_status":   "active",
	})
}

func (s *Server) handleClearPromptCache(w http.ResponseWriter, _ *http.Request) {
	s.resolver.ClearCache()
	writeJSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"cached_prompts": s.resolver.CachedPrompts(),
	})
}
