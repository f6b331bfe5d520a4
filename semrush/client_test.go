package semrush

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigured(t *testing.T) {
	assert.True(t, NewClient("http://localhost:0", "key", "us").Configured())
	assert.False(t, NewClient("http://localhost:0", "", "us").Configured())
}

func TestKeywordData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/keywords/v1/data", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "go hosting,go deploy", q.Get("keywords"))
		assert.Equal(t, "us", q.Get("database"))
		assert.Equal(t, "rival.example", q.Get("competitors"))
		assert.Equal(t, "api-key", q.Get("key"))

		json.NewEncoder(w).Encode(map[string]any{
			"keywords": []map[string]any{
				{"keyword": "go hosting", "search_volume": 900, "difficulty": 40, "competition": "medium"},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "api-key", "us")
	resp, err := c.KeywordData(context.Background(), []string{"go hosting", "go deploy"}, []string{"rival.example"}, "")
	require.NoError(t, err)

	require.Len(t, resp.Keywords, 1)
	kw := resp.Keywords[0]
	assert.Equal(t, "go hosting", kw.Keyword)
	assert.Equal(t, 900, kw.SearchVolume)
	assert.Equal(t, 40, kw.Difficulty)
	assert.Equal(t, "medium", kw.Competition)
}

func TestKeywordDataDatabaseOverride(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "uk", r.URL.Query().Get("database"))
		json.NewEncoder(w).Encode(map[string]any{"keywords": []any{}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "api-key", "us")
	_, err := c.KeywordData(context.Background(), []string{"tea"}, nil, "uk")
	require.NoError(t, err)
}

func TestDomainAnalysis(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/domains/v1/overview", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "rival.example", q.Get("domain"))
		assert.Equal(t, "comprehensive", q.Get("type"))
		assert.Equal(t, "30d", q.Get("timeframe"))

		json.NewEncoder(w).Encode(map[string]any{"organic_traffic": 50000})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "api-key", "us")
	overview, err := c.DomainAnalysis(context.Background(), "rival.example", "comprehensive", "30d")
	require.NoError(t, err)
	assert.Equal(t, float64(50000), overview["organic_traffic"])
}

func TestErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "api-key", "us")
	_, err := c.KeywordData(context.Background(), []string{"tea"}, nil, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}
