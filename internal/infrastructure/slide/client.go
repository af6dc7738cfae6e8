package slide

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"slidebridge/internal/shared/config"
	"slidebridge/internal/shared/logger"
)

const (
	defaultBaseURL = "https://api.slide.tech"
	// Maximum response body size (8MB); alert pages carry embedded JSON payloads.
	maxResponseSize = 8 << 20
)

// Client talks to the Slide cloud API using bearer token auth.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     logger.Interface
}

type listResponse[T any] struct {
	Data []T `json:"data"`
}

func NewClient(cfg *config.SlideConfig, timeout time.Duration, log logger.Interface) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: log,
	}
}

func (c *Client) GetClients(ctx context.Context) ([]SlideClient, error) {
	var response listResponse[SlideClient]
	if err := c.makeRequest(ctx, http.MethodGet, "/v1/client", nil, &response); err != nil {
		return nil, fmt.Errorf("failed to get clients: %w", err)
	}
	return response.Data, nil
}

func (c *Client) GetDevices(ctx context.Context) ([]Device, error) {
	var response listResponse[Device]
	if err := c.makeRequest(ctx, http.MethodGet, "/v1/device", nil, &response); err != nil {
		return nil, fmt.Errorf("failed to get devices: %w", err)
	}
	return response.Data, nil
}

func (c *Client) GetAlerts(ctx context.Context) ([]Alert, error) {
	var response listResponse[Alert]
	if err := c.makeRequest(ctx, http.MethodGet, "/v1/alert", nil, &response); err != nil {
		return nil, fmt.Errorf("failed to get alerts: %w", err)
	}
	return response.Data, nil
}

// CloseAlert marks the alert resolved on the Slide side. Callers treat
// failures as best-effort; the local record is authoritative.
func (c *Client) CloseAlert(ctx context.Context, alertID string) error {
	payload := map[string]any{
		"status":   "resolved",
		"resolved": true,
	}

	endpoint := fmt.Sprintf("/v1/alert/%s", alertID)
	if err := c.makeRequest(ctx, http.MethodPatch, endpoint, payload, nil); err != nil {
		return fmt.Errorf("failed to close alert %s: %w", alertID, err)
	}

	c.logger.Debugw("closed slide alert", "alert_id", alertID)
	return nil
}

func (c *Client) makeRequest(ctx context.Context, method, endpoint string, payload any, result any) error {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
		body = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("slide API returned status %d for %s %s", resp.StatusCode, method, endpoint)
	}

	if result != nil {
		limited := io.LimitReader(resp.Body, maxResponseSize)
		if err := json.NewDecoder(limited).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
