package converter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client represents a client for the external HTML-to-PDF converter service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Config holds configuration for the converter client
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// NewClient creates a new converter client
func NewClient(config *Config) *Client {
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second // 1 minute default
	}

	return &Client{
		baseURL: config.BaseURL,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// ConvertHTML sends rendered invoice HTML to the converter and returns the
// finished PDF document bytes.
func (c *Client) ConvertHTML(ctx context.Context, html string) ([]byte, error) {
	url := fmt.Sprintf("%s/convert", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBufferString(html))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "text/html")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("converter service error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

// HealthCheck checks if the converter service is healthy
func (c *Client) HealthCheck() error {
	url := fmt.Sprintf("%s/health", c.baseURL)
	resp, err := c.httpClient.Get(url)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("health check failed (status %d): %s", resp.StatusCode, string(body))
	}

	return nil
}
