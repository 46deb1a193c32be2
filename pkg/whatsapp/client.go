// Package whatsapp provides a small client for the Evolution API WhatsApp gateway.
//
// It sends plain text messages to a phone number through a configured
// instance and returns the gateway message id.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// APIError is returned when the gateway answers with a non-2xx status.
type APIError struct {
	StatusCode int    // HTTP status code
	Body       string // raw response body
}

func (e *APIError) Error() string {
	return fmt.Sprintf("evolution API error: status %d: %s", e.StatusCode, e.Body)
}

// Client represents an Evolution API client bound to one instance.
type Client struct {
	baseURL  string       // gateway base URL
	apiKey   string       // api key sent in the apikey header
	instance string       // WhatsApp instance name
	client   *http.Client // HTTP client used to make requests
}

// NewClient creates a new Client. timeout bounds every request.
func NewClient(baseURL, apiKey, instance string, timeout time.Duration) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		instance: instance,
		client:   &http.Client{Timeout: timeout},
	}
}

// Configured reports whether url, key and instance are set.
func (c *Client) Configured() bool {
	return c.baseURL != "" && c.apiKey != "" && c.instance != ""
}

// sendTextRequest represents the payload for the sendText endpoint.
type sendTextRequest struct {
	Number string `json:"number"` // destination phone number, digits only
	Text   string `json:"text"`   // message text
}

// sendTextResponse holds the part of the gateway response we use.
type sendTextResponse struct {
	Key struct {
		ID string `json:"id"`
	} `json:"key"`
}

// SendText sends text to number and returns the gateway message id.
func (c *Client) SendText(ctx context.Context, number, text string) (string, error) {
	url := fmt.Sprintf("%s/message/sendText/%s", c.baseURL, c.instance)

	body, err := json.Marshal(sendTextRequest{Number: number, Text: text})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var out sendTextResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	return out.Key.ID, nil
}
