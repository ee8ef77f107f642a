package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"servo-controller/core/utils"
	"servo-controller/feature/servo/models"
)

// Position bounds accepted by the controller.
const (
	minPosition = 0
	maxPosition = 180
)

// defaultTimeout bounds each request. Commands are sent per video frame,
// so a slow controller has to fail fast rather than stall the loop.
const defaultTimeout = time.Second

// Client talks to a servo controller over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the controller at baseURL,
// e.g. "http://192.168.4.1:8080". A non-positive timeout falls back to
// one second per request.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Status fetches the controller's current state.
func (c *Client) Status(ctx context.Context) (*models.StatusResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/status", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build status request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch status: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("controller returned status %d", resp.StatusCode)
	}

	var st models.StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		return nil, fmt.Errorf("failed to decode status response: %w", err)
	}
	return &st, nil
}

// SetPosition commands the servo to the given angle and returns the angle
// the controller applied. Out-of-range values are clamped before sending.
func (c *Client) SetPosition(ctx context.Context, position int) (int, error) {
	position = utils.Clamp(position, minPosition, maxPosition)

	body, err := json.Marshal(models.Command{Position: position})
	if err != nil {
		return 0, fmt.Errorf("failed to encode command: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/servo", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to build command request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to send command: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Rejections carry the reason as a plain-text body.
		msg, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("controller returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var cr models.CommandResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return 0, fmt.Errorf("failed to decode command response: %w", err)
	}
	return cr.Position, nil
}
