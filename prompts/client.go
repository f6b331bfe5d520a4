package prompts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client is a prompt-store API client.
type Client struct {
	baseURL   string
	apiKey    string
	projectID string
	client    *http.Client
}

// NewClient creates a prompt-store client.
func NewClient(baseURL, apiKey, projectID string) *Client {
	return &Client{
		baseURL:   baseURL,
		apiKey:    apiKey,
		projectID: projectID,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

type promptResponse struct {
	Content string `json:"content"`
}

// GetPrompt fetches a named template, optionally pinned to a version.
func (c *Client) GetPrompt(ctx context.Context, name, version string) (string, error) {
	url := fmt.Sprintf("%s/api/v1/projects/%s/prompts/%s", c.baseURL, c.projectID, name)
	if version != "" && version != "latest" {
		url += "/versions/" + version
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("prompt fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("prompt fetch returned status %d", resp.StatusCode)
	}

	var body promptResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode prompt response: %w", err)
	}
	return body.Content, nil
}

// Health reports whether the prompt store answers for the configured project.
func (c *Client) Health(ctx context.Context) bool {
	url := fmt.Sprintf("%s/api/v1/projects/%s", c.baseURL, c.projectID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
