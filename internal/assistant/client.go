// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package assistant provides the HTTP client for the remote answering
// service. Two endpoints share one contract: a primary and a fallback that
// is tried once after a transport-level failure of the primary.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// MaxResponseSize caps the response body read. Larger bodies fail the
// attempt rather than exhausting memory.
const MaxResponseSize = 1 * 1024 * 1024

// Requests per second allowed toward the endpoints, with a small burst for
// interactive resubmits.
const (
	requestsPerSecond = 1
	requestBurst      = 3
)

// sharedTransport pools connections across all requests.
var sharedTransport = &http.Transport{
	MaxIdleConns:        10,
	MaxIdleConnsPerHost: 4,
	IdleConnTimeout:     90 * time.Second,
	TLSHandshakeTimeout: 10 * time.Second,
}

// =============================================================================
// WIRE TYPES
// =============================================================================

// ChatMessage is a single conversation turn in the outbound payload.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// PetContext carries the active pet profile's attributes so replies can be
// personalized. Serialized as null when absent.
type PetContext struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Breed string `json:"breed"`
	Age   string `json:"age"`
	Notes string `json:"notes"`
}

// ChatRequest is the JSON body sent to both endpoints.
type ChatRequest struct {
	Messages   []ChatMessage `json:"messages"`
	PetContext *PetContext   `json:"petContext"`
}

// ChatResponse is the JSON body returned on success.
type ChatResponse struct {
	Text string `json:"text"`
}

// =============================================================================
// ERRORS
// =============================================================================

// ErrUnavailable indicates both endpoints failed at the transport level.
var ErrUnavailable = errors.New("answering service unavailable")

// StatusError is a non-success HTTP status from an endpoint. It is a hard
// failure for the attempt: the fallback is only consulted after a transport
// failure, never after an HTTP error. This asymmetry is kept deliberately
// for compatibility with the previously shipped client.
type StatusError struct {
	Endpoint string
	Status   int
	Body     string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("endpoint %s returned status %d", e.Endpoint, e.Status)
}

// transportError marks a failure to reach an endpoint at all: dial, TLS,
// timeout. Only these failures make the fallback eligible; once a response
// arrives, any later failure (bad status, oversize body, unparseable JSON)
// is a hard failure for the attempt.
type transportError struct {
	endpoint string
	err      error
}

// Error implements the error interface.
func (e *transportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.endpoint, e.err)
}

// Unwrap returns the underlying failure.
func (e *transportError) Unwrap() error {
	return e.err
}

// =============================================================================
// CLIENT
// =============================================================================

// Client calls the answering service. Safe for use from a single submission
// flow; the limiter bounds how fast repeated submissions can reach the
// network.
type Client struct {
	primaryURL  string
	fallbackURL string
	httpClient  *http.Client
	limiter     *rate.Limiter
	log         *zap.Logger
}

// NewClient creates a client for the given endpoints. A zero timeout means
// no request deadline: a hung request stalls the pending submission until
// the surrounding context is cancelled.
func NewClient(primaryURL, fallbackURL string, timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		primaryURL:  strings.TrimSuffix(primaryURL, "/"),
		fallbackURL: strings.TrimSuffix(fallbackURL, "/"),
		httpClient: &http.Client{
			Transport: sharedTransport,
			Timeout:   timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
		log:     log,
	}
}

// Chat sends the conversation history plus optional pet context and returns
// the reply text. On a transport-level failure of the primary endpoint the
// identical payload is retried once against the fallback. Any failure after
// a response arrives, a non-success HTTP status or an unusable body, fails
// the attempt outright.
func (c *Client) Chat(ctx context.Context, messages []ChatMessage, pet *PetContext) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	body, err := json.Marshal(ChatRequest{Messages: messages, PetContext: pet})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	text, primaryErr := c.post(ctx, c.primaryURL, body)
	if primaryErr == nil {
		return text, nil
	}

	var netErr *transportError
	if !errors.As(primaryErr, &netErr) {
		// The primary answered. A bad status or an unusable body is a
		// hard failure, no fallback.
		return "", primaryErr
	}
	if ctx.Err() != nil {
		return "", primaryErr
	}

	c.log.Warn("primary endpoint unreachable, trying fallback",
		zap.String("endpoint", c.primaryURL),
		zap.Error(primaryErr))

	if c.fallbackURL == "" {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, primaryErr)
	}

	text, fallbackErr := c.post(ctx, c.fallbackURL, body)
	if fallbackErr == nil {
		return text, nil
	}
	if !errors.As(fallbackErr, &netErr) {
		return "", fallbackErr
	}
	return "", fmt.Errorf("%w: primary: %v; fallback: %v", ErrUnavailable, primaryErr, fallbackErr)
}

// post performs one attempt against one endpoint.
func (c *Client) post(ctx context.Context, endpoint string, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "pawguide/1.0")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &transportError{endpoint: endpoint, err: err}
	}
	defer resp.Body.Close()

	respBody, err := readResponse(resp)
	if err != nil {
		return "", err
	}

	c.log.Debug("endpoint responded",
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{
			Endpoint: endpoint,
			Status:   resp.StatusCode,
			Body:     string(respBody),
		}
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse response from %s: %w", endpoint, err)
	}
	return chatResp.Text, nil
}

// readResponse reads the body with a size cap.
func readResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(body)) == MaxResponseSize {
		return nil, fmt.Errorf("response exceeded maximum size of %d bytes", MaxResponseSize)
	}
	return body, nil
}
