// Package hootsuite is the social-scheduling client.
package hootsuite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client schedules posts through the social-scheduling API.
type Client struct {
	baseURL     string
	accessToken string
	client      *http.Client
}

// NewClient creates a scheduling client.
func NewClient(baseURL, accessToken string) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		client:      &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured reports whether an access token is present.
func (c *Client) Configured() bool {
	return c.accessToken != ""
}

// PostRequest describes one post to schedule.
type PostRequest struct {
	Platform     string    `json:"platform"`
	Content      string    `json:"content"`
	ScheduleTime time.Time `json:"scheduled_send_time"`
	MediaURLs    []string  `json:"media_urls,omitempty"`
}

// Receipt is the scheduler's acknowledgement of a scheduled post.
type Receipt struct {
	PostID      string `json:"post_id"`
	Platform    string `json:"platform"`
	State       string `json:"state"`
	ScheduledAt string `json:"scheduled_send_time"`
}

// SchedulePost schedules one post and returns the scheduler's receipt.
func (c *Client) SchedulePost(ctx context.Context, post PostRequest) (*Receipt, error) {
	payload, err := json.Marshal(post)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post scheduling failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("post scheduling returned status %d", resp.StatusCode)
	}

	var receipt Receipt
	if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
		return nil, fmt.Errorf("decode scheduling response: %w", err)
	}
	return &receipt, nil
}
