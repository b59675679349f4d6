package alcapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ArowuTest/alc-results-api/internal/models"
	"go.uber.org/zap"
)

// DefaultBaseURL is the public ALC winning numbers API
const DefaultBaseURL = "https://dsc.alc.ca/api/winning_numbers"

// Endpoint names reported to a RequestObserver
const (
	EndpointLatest        = "latest"
	EndpointLatestForGame = "latest_game"
	EndpointDrawDates     = "draw_dates"
	EndpointDraw          = "draw"
)

// RequestObserver is notified after every upstream request. status is 0 when no response was received.
type RequestObserver interface {
	ObserveUpstream(endpoint string, status int, elapsed time.Duration)
}

// StatusError is returned when the API answers with a non-2xx status
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Request failed with status code %d", e.StatusCode)
}

// Client represents an ALC winning numbers API client
type Client struct {
	BaseURL  string
	client   *http.Client
	timeout  time.Duration
	logger   *zap.Logger
	observer RequestObserver
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. A nil client is ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithTimeout sets a per-request timeout. Zero keeps the http.Client's own setting.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithObserver registers a RequestObserver
func WithObserver(o RequestObserver) Option {
	return func(c *Client) {
		c.observer = o
	}
}

// NewClient creates a new ALC API client
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.client
		hc.Timeout = c.timeout
		c.client = &hc
	}
	return c
}

// GetLatest retrieves the latest draw of every game
func (c *Client) GetLatest(ctx context.Context) ([]models.DrawData, error) {
	var draws []models.DrawData
	if err := c.get(ctx, EndpointLatest, &draws, "latest"); err != nil {
		return nil, err
	}
	return draws, nil
}

// GetLatestForGame retrieves the latest draw of a single game
func (c *Client) GetLatestForGame(ctx context.Context, game models.Game) ([]models.DrawData, error) {
	var draws []models.DrawData
	if err := c.get(ctx, EndpointLatestForGame, &draws, "latest", game.String()); err != nil {
		return nil, err
	}
	return draws, nil
}

// GetDrawDates retrieves the available draw dates of a game, most recent first.
// The history depth is set by the provider.
func (c *Client) GetDrawDates(ctx context.Context, game models.Game) ([]models.DrawDate, error) {
	var raw json.RawMessage
	if err := c.get(ctx, EndpointDrawDates, &raw, "draw_dates", game.String()); err != nil {
		return nil, err
	}

	// A bare array is accepted alongside the documented {"draw_dates": [...]} envelope.
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '[' {
		var dates []models.DrawDate
		if err := json.Unmarshal(trimmed, &dates); err != nil {
			return nil, fmt.Errorf("decode draw dates: %w", err)
		}
		return dates, nil
	}

	var resp models.DrawDatesResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode draw dates: %w", err)
	}
	return resp.DrawDates, nil
}

// GetDraw retrieves the draws of a game on a YYYY-MM-DD date
func (c *Client) GetDraw(ctx context.Context, game models.Game, date string) ([]models.DrawData, error) {
	var draws []models.DrawData
	if err := c.get(ctx, EndpointDraw, &draws, "draw", game.String(), date); err != nil {
		return nil, err
	}
	return draws, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out any, segments ...string) error {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	target := c.BaseURL + "/" + strings.Join(escaped, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.observe(endpoint, 0, time.Since(start))
		c.logger.Warn("upstream request failed", zap.String("url", target), zap.Error(err))
		return fmt.Errorf("GET %s: %w", target, err)
	}
	defer resp.Body.Close()

	elapsed := time.Since(start)
	c.observe(endpoint, resp.StatusCode, elapsed)
	c.logger.Debug("upstream request",
		zap.String("url", target),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", elapsed),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{StatusCode: resp.StatusCode, URL: target}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", target, err)
	}
	return nil
}

func (c *Client) observe(endpoint string, status int, elapsed time.Duration) {
	if c.observer != nil {
		c.observer.ObserveUpstream(endpoint, status, elapsed)
	}
}
