// Package airtable is the records-database client.
package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client writes records to an Airtable base.
type Client struct {
	baseURL string
	apiKey  string
	baseID  string
	client  *http.Client
}

// NewClient creates a records client for the given base.
func NewClient(baseURL, apiKey, baseID string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		baseID:  baseID,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type createRequest struct {
	Fields map[string]any `json:"fields"`
}

type createResponse struct {
	ID string `json:"id"`
}

// Create inserts one record into the named table and returns its id.
func (c *Client) Create(ctx context.Context, table string, fields map[string]any) (string, error) {
	payload, err := json.Marshal(createRequest{Fields: fields})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s/%s", c.baseURL, c.baseID, table)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("record create failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("record create returned status %d", resp.StatusCode)
	}

	var body createResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode record response: %w", err)
	}
	return body.ID, nil
}

// Close implements storage.RecordStore; the HTTP client holds no
// resources needing release.
func (c *Client) Close() error {
	return nil
}
