package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const samplePage = `<html>
<head>
	<title> Acme Widgets </title>
	<meta name="description" content="Widgets for every occasion.">
	<meta name="keywords" content="widgets">
</head>
<body>
	<h1>Welcome to <em>Acme</em></h1>
	<h1>Second heading is ignored</h1>
</body>
</html>`

func TestExtract(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(samplePage))
	require.NoError(t, err)

	meta := Extract(doc)
	assert.Equal(t, "Acme Widgets", meta.Title)
	assert.Equal(t, "Widgets for every occasion.", meta.Description)
	assert.Equal(t, "Welcome to Acme", meta.H1)
}

func TestExtractEmptyDocument(t *testing.T) {
	doc, err := html.Parse(strings.NewReader("<html></html>"))
	require.NoError(t, err)

	meta := Extract(doc)
	assert.Empty(t, meta.Title)
	assert.Empty(t, meta.Description)
	assert.Empty(t, meta.H1)
}

func TestFetchMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	s := NewScraper()
	meta, err := s.FetchMetadata(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Acme Widgets", meta.Title)
}

func TestFetchMetadataNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	s := NewScraper()
	_, err := s.FetchMetadata(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}
