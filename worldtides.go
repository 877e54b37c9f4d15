// Package worldtides is a client library for the worldtides.info tide
// prediction API. It fetches tidal extremes and height curves for a
// coordinate and time window and delivers typed results through asynchronous
// callbacks. Every request produces exactly one Result, success or failure.
package worldtides

import (
	"context"
	"time"

	"github.com/bbernstein/worldtides-go/models"
	"github.com/bbernstein/worldtides-go/pkg/http/client"
)

const defaultBaseURL = "https://www.worldtides.info/api"

// Config configures a Client. Only APIKey is required; everything else has a
// working default. The config is resolved once in New and never consulted
// again.
type Config struct {
	// APIKey is the worldtides.info credential sent with every request.
	APIKey string

	// BaseURL overrides the API base URL, mainly for tests.
	BaseURL string

	// Timeout bounds each HTTP request. Zero means the transport default.
	Timeout time.Duration

	// Transport replaces the built-in HTTP transport. When set, BaseURL and
	// Timeout are ignored.
	Transport client.Interface
}

// Client is the entry point for tide data requests. Build one per API key
// and reuse it; it is safe for concurrent use and holds no per-request
// state.
type Client struct {
	apiKey string
	repo   *repository
}

// New creates a Client from the given config.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, NewRequestError("api key must not be empty")
	}

	transport := cfg.Transport
	if transport == nil {
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = defaultBaseURL
		}
		transport = client.New(client.Options{
			BaseURL: baseURL,
			Timeout: cfg.Timeout,
		})
	}

	return &Client{
		apiKey: cfg.APIKey,
		repo:   newRepository(newHTTPGateway(transport)),
	}, nil
}

// GetTideExtremes requests the tide extremes (highs and lows) between date
// and days days after it, for the location at lat/lon given as decimal
// degree strings. The call returns immediately; the callback receives the
// outcome exactly once.
func (c *Client) GetTideExtremes(ctx context.Context, date time.Time, days int, lat, lon string, callback Callback[models.TideExtremes]) {
	if err := validateWindow(days); err != nil {
		callback(Failure[models.TideExtremes](err))
		return
	}
	c.repo.extremes(ctx, formatRequestDate(date), days, lat, lon, c.apiKey, callback)
}

// GetTideHeights requests the predicted height curve between date and days
// days after it. Same contract as GetTideExtremes.
func (c *Client) GetTideHeights(ctx context.Context, date time.Time, days int, lat, lon string, callback Callback[models.TideHeights]) {
	if err := validateWindow(days); err != nil {
		callback(Failure[models.TideHeights](err))
		return
	}
	c.repo.heights(ctx, formatRequestDate(date), days, lat, lon, c.apiKey, callback)
}

// GetTides requests any combination of tide data kinds in a single API call.
// The kinds are sent in the given order and the returned Tides carries a
// non-nil field for each kind the response included. An empty kind set is
// rejected through the callback before anything is sent.
func (c *Client) GetTides(ctx context.Context, dataTypes []models.TideDataType, date time.Time, days int, lat, lon string, callback Callback[models.Tides]) {
	if len(dataTypes) == 0 {
		callback(Failure[models.Tides](NewRequestError("at least one tide data type must be requested")))
		return
	}
	if err := validateWindow(days); err != nil {
		callback(Failure[models.Tides](err))
		return
	}
	c.repo.tides(ctx, dataTypes, formatRequestDate(date), days, lat, lon, c.apiKey, callback)
}

func validateWindow(days int) error {
	if days < 1 {
		return NewRequestError("days must be a positive number of days")
	}
	return nil
}
