package prompts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/howaiconnects/seogate/config"
)

func TestResolverFallbackMode(t *testing.T) {
	r := NewResolver(config.LatitudeConfig{})
	assert.False(t, r.Connected())

	got := r.Resolve(context.Background(), "website_analysis_comprehensive", Variables{
		"domain":          "example.com",
		"industry":        "software",
		"target_audience": "developers",
	}, "")

	assert.Contains(t, got, "example.com")
	assert.Contains(t, got, "software")
	assert.Contains(t, got, "developers")
	assert.NotContains(t, got, "{domain}")
	assert.NotContains(t, got, "{industry}")
}

func TestResolverUnknownNameUsesDefault(t *testing.T) {
	r := NewResolver(config.LatitudeConfig{})

	got := r.Resolve(context.Background(), "no_such_prompt", nil, "")

	assert.Equal(t, FallbackPrompt("default"), got)
}

func TestResolverUnmatchedPlaceholdersLeftVerbatim(t *testing.T) {
	r := NewResolver(config.LatitudeConfig{})

	got := r.Resolve(context.Background(), "website_analysis_comprehensive", Variables{
		"domain": "example.com",
	}, "")

	assert.Contains(t, got, "{industry}")
	assert.Contains(t, got, "{target_audience}")
}

func TestSubstituteVariablesRendering(t *testing.T) {
	template := "keywords: {keywords}\ndata: {data}"

	got := substituteVariables(template, Variables{
		"keywords": []string{"go hosting", "go deploy"},
		"data":     map[string]int{"volume": 900},
	})

	assert.Contains(t, got, "keywords: go hosting, go deploy")
	assert.Contains(t, got, `"volume": 900`)
}

func TestResolverConnectedFetchesAndCaches(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "/api/v1/projects/proj-1/prompts/greeting", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"content": "Hello {name}"})
	}))
	defer srv.Close()

	r := NewResolver(config.LatitudeConfig{
		BaseURL:   srv.URL,
		APIKey:    "test-key",
		ProjectID: "proj-1",
	})
	require.True(t, r.Connected())

	got := r.Resolve(context.Background(), "greeting", Variables{"name": "world"}, "")
	assert.Equal(t, "Hello world", got)
	assert.Equal(t, 1, r.CachedPrompts())

	// Second resolve hits the cache, not the server.
	r.Resolve(context.Background(), "greeting", nil, "")
	assert.Equal(t, 1, hits)

	r.ClearCache()
	assert.Equal(t, 0, r.CachedPrompts())
}

func TestResolverConnectedVersionPinned(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/projects/proj-1/prompts/greeting/versions/3", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"content": "v3"})
	}))
	defer srv.Close()

	r := NewResolver(config.LatitudeConfig{BaseURL: srv.URL, APIKey: "k", ProjectID: "proj-1"})

	got := r.Resolve(context.Background(), "greeting", nil, "3")
	assert.Equal(t, "v3", got)
}

func TestResolverConnectedDegradesOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	r := NewResolver(config.LatitudeConfig{BaseURL: srv.URL, APIKey: "k", ProjectID: "p"})

	got := r.Resolve(context.Background(), "keyword_analysis_ai", nil, "")
	assert.Equal(t, FallbackPrompt("keyword_analysis_ai"), got)
	assert.Equal(t, 0, r.CachedPrompts())
}

func TestStoreHealthy(t *testing.T) {
	// Fallback mode needs no store.
	assert.True(t, NewResolver(config.LatitudeConfig{}).StoreHealthy(context.Background()))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/projects/proj-1", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	r := NewResolver(config.LatitudeConfig{BaseURL: srv.URL, APIKey: "k", ProjectID: "proj-1"})
	assert.True(t, r.StoreHealthy(context.Background()))

	down := NewResolver(config.LatitudeConfig{BaseURL: "http://localhost:0", APIKey: "k", ProjectID: "proj-1"})
	assert.False(t, down.StoreHealthy(context.Background()))
}

func TestFallbackTableCoversPipelinePrompts(t *testing.T) {
	names := []string{
		"website_analysis_comprehensive",
		"keyword_analysis_ai",
		"content_strategy_generation",
		"content_seo_analysis",
		"content_generation_seo",
		"competitor_analysis_ai",
		"social_media_generation",
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			tmpl := FallbackPrompt(name)
			assert.NotEmpty(t, tmpl)
			assert.NotEqual(t, FallbackPrompt(fmt.Sprintf("%s-missing", name)), tmpl)
		})
	}
}
