// Package scrape fetches page metadata from competitor sites, used as
// analysis context when no keyword-data provider is configured.
package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const maxBodyBytes = 128 * 1024

// PageMetadata is the extracted head/heading content of a page.
type PageMetadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	H1          string `json:"h1"`
}

// Scraper fetches and parses competitor pages.
type Scraper struct {
	client *http.Client
}

// NewScraper creates a scraper with a fixed request timeout.
func NewScraper() *Scraper {
	return &Scraper{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchMetadata downloads a page and extracts its title, meta
// description, and first H1.
func (s *Scraper) FetchMetadata(ctx context.Context, pageURL string) (*PageMetadata, error) {
	if !strings.HasPrefix(pageURL, "http://") && !strings.HasPrefix(pageURL, "https://") {
		pageURL = "https://" + pageURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; seogate/1.0)")
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("page fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("page returned status %d", resp.StatusCode)
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("HTML parse failed: %w", err)
	}

	return Extract(doc), nil
}

// Extract walks a parsed document collecting title, description, and H1.
func Extract(doc *html.Node) *PageMetadata {
	metadata := &PageMetadata{}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if n.FirstChild != nil && metadata.Title == "" {
					metadata.Title = strings.TrimSpace(n.FirstChild.Data)
				}
			case "meta":
				var name, content string
				for _, attr := range n.Attr {
					switch attr.Key {
					case "name":
						name = attr.Val
					case "content":
						content = attr.Val
					}
				}
				if name == "description" && metadata.Description == "" {
					metadata.Description = content
				}
			case "h1":
				if metadata.H1 == "" {
					metadata.H1 = strings.TrimSpace(textContent(n))
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return metadata
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}
