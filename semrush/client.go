// Package semrush is the keyword-data provider client.
package semrush

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/howaiconnects/seogate/seo"
)

// ProactiveRate throttles outbound calls to stay under the provider's
// per-key quota (~2 req/sec).
const ProactiveRate = 2.0

// Client is a keyword-data API client with client-side throttling.
type Client struct {
	baseURL  string
	apiKey   string
	database string
	client   *http.Client
	limiter  *rate.Limiter
}

// NewClient creates a keyword-data client.
func NewClient(baseURL, apiKey, database string) *Client {
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		database: database,
		client:   &http.Client{Timeout: 30 * time.Second},
		limiter:  rate.NewLimiter(rate.Limit(ProactiveRate), 1),
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// KeywordDataResponse is the provider's per-keyword metrics payload.
type KeywordDataResponse struct {
	Keywords []seo.KeywordRecord `json:"keywords"`
}

// KeywordData fetches volume/difficulty/competition metrics for the seed
// keywords, optionally scoped against competitor domains. database ""
// uses the configured default.
func (c *Client) KeywordData(ctx context.Context, seeds, competitorDomains []string, database string) (*KeywordDataResponse, error) {
	if database == "" {
		database = c.database
	}

	params := url.Values{}
	params.Set("keywords", strings.Join(seeds, ","))
	params.Set("database", database)
	if len(competitorDomains) > 0 {
		params.Set("competitors", strings.Join(competitorDomains, ","))
	}

	var result KeywordDataResponse
	if err := c.get(ctx, "/keywords/v1/data", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DomainAnalysis fetches overview metrics for a single domain.
func (c *Client) DomainAnalysis(ctx context.Context, domain, analysisType, timeframe string) (map[string]any, error) {
	params := url.Values{}
	params.Set("domain", domain)
	params.Set("type", analysisType)
	params.Set("timeframe", timeframe)

	var result map[string]any
	if err := c.get(ctx, "/domains/v1/overview", params, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	params.Set("key", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("keyword data request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("keyword data request returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode keyword data response: %w", err)
	}
	return nil
}
