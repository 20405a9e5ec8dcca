// Package client fetches dashboard metrics from the REST backend and normalizes them into cards.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/and161185/metrics-dashboard/internal/client/transport"
	"github.com/and161185/metrics-dashboard/internal/config"
	"github.com/and161185/metrics-dashboard/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RequestError reports a non-2xx response from the backend.
type RequestError struct {
	StatusCode int
	Category   string // requested card type, empty for the legacy endpoint
}

func (e *RequestError) Error() string {
	if e.Category == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d - failed to load metrics %s", e.StatusCode, e.Category)
}

// Client retrieves metric cards from the backend.
type Client struct {
	config     *config.DashboardConfig
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

// NewClient creates a new client with an HTTP client built from cfg.
// Swallowed failures are reported to cfg.Logger; a nil logger discards them.
func NewClient(cfg *config.DashboardConfig) *Client {
	return NewClientWithHTTP(cfg, NewHTTPClient(cfg))
}

// DI: ready http.Client
func NewClientWithHTTP(cfg *config.DashboardConfig, hc *http.Client) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Client{config: cfg, httpClient: hc, logger: logger}
}

// fabric http-client
func NewHTTPClient(cfg *config.DashboardConfig) *http.Client {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &http.Client{
		Timeout:   time.Duration(cfg.ClientTimeout) * time.Second,
		Transport: &transport.LogRoundTripper{Base: http.DefaultTransport, Logger: logger},
	}
}

// LegacyURL derives the pre-category endpoint from the base metrics URL.
func LegacyURL(base string) string {
	return strings.Replace(base, "/api/metrics", "/metrics", 1)
}

func (clnt *Client) typeURL(typeCarte model.CardType) string {
	return clnt.config.MetricsURL + "/" + string(typeCarte)
}

// FetchMetricsByType loads the card for a single category.
// A non-2xx response yields *RequestError.
func (clnt *Client) FetchMetricsByType(ctx context.Context, typeCarte model.CardType) (model.Card, error) {
	data, err := clnt.getJSON(ctx, clnt.typeURL(typeCarte), string(typeCarte))
	if err != nil {
		return model.Card{}, err
	}
	return resolveCard(data, string(typeCarte)), nil
}

// FetchAllByType requests every card type concurrently and waits for all of them.
// Failed categories are logged and left out; the rest keep enumeration order.
func (clnt *Client) FetchAllByType(ctx context.Context) []model.Card {
	types := model.CardTypes()
	results := make([]*model.Card, len(types))

	var g errgroup.Group
	for i, typ := range types {
		i, typ := i, typ
		g.Go(func() error {
			card, err := clnt.FetchMetricsByType(ctx, typ)
			if err != nil {
				clnt.logger.Warnw("failed to fetch metrics",
					"typeCarte", string(typ), "url", clnt.typeURL(typ), "error", err)
				return nil
			}
			results[i] = &card
			return nil
		})
	}
	_ = g.Wait()

	cards := make([]model.Card, 0, len(results))
	for _, c := range results {
		if c != nil {
			cards = append(cards, *c)
		}
	}
	return cards
}

// FetchAllMetrics loads every card. With a bulk URL configured it issues one
// request and splits the body per service, falling back to FetchAllByType on
// any failure; without one it goes straight to FetchAllByType.
// It never returns an error.
func (clnt *Client) FetchAllMetrics(ctx context.Context) []model.Card {
	url := clnt.config.AllMetricsURL
	if url == "" {
		return clnt.FetchAllByType(ctx)
	}

	cards, err := clnt.fetchBulk(ctx, url)
	if err != nil {
		clnt.logger.Warnw("bulk metrics request failed, falling back to per-type requests",
			"url", url, "error", err)
		return clnt.FetchAllByType(ctx)
	}
	return cards
}

func (clnt *Client) fetchBulk(ctx context.Context, url string) ([]model.Card, error) {
	data, err := clnt.getJSON(ctx, url, "")
	if err != nil {
		return nil, err
	}
	return resolveGroups(data)
}

// FetchMetrics is the compatibility entry point: the PERFORMANCE_SERVICE card,
// or the legacy endpoint's metrics labeled DEFAULT when that request fails.
func (clnt *Client) FetchMetrics(ctx context.Context) (model.Card, error) {
	card, err := clnt.FetchMetricsByType(ctx, model.PerformanceService)
	if err == nil {
		return card, nil
	}

	url := LegacyURL(clnt.config.MetricsURL)
	clnt.logger.Warnw("falling back to legacy metrics endpoint",
		"typeCarte", string(model.PerformanceService), "url", url, "error", err)

	data, err := clnt.getJSON(ctx, url, "")
	if err != nil {
		return model.Card{}, err
	}
	return resolveCard(data, string(model.Default)), nil
}

func (clnt *Client) getJSON(ctx context.Context, url, category string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := clnt.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &RequestError{StatusCode: resp.StatusCode, Category: category}
	}

	dec := json.NewDecoder(resp.Body)
	var data json.RawMessage
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("decode response: %w", errTrailingData)
	}
	return data, nil
}
