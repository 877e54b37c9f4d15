package worldtides

import (
	"context"
	"errors"
	"time"

	"github.com/bbernstein/worldtides-go/internal/metrics"
	"github.com/bbernstein/worldtides-go/models"
	"github.com/rs/zerolog/log"
)

// repository orchestrates one gateway operation per request: it fetches the
// wire record, maps it into the domain model and delivers a single Result to
// the caller's callback. It holds no per-request state and is safe to share
// across any number of concurrent callers.
type repository struct {
	gw gateway
}

func newRepository(gw gateway) *repository {
	return &repository{gw: gw}
}

func (r *repository) extremes(ctx context.Context, date string, days int, lat, lon, apiKey string, callback Callback[models.TideExtremes]) {
	dispatch("extremes", callback, func() (models.TideExtremes, error) {
		resp, err := r.gw.fetchExtremes(ctx, date, days, lat, lon, apiKey)
		if err != nil {
			return models.TideExtremes{}, err
		}
		return resp.toTideExtremes()
	})
}

func (r *repository) heights(ctx context.Context, date string, days int, lat, lon, apiKey string, callback Callback[models.TideHeights]) {
	dispatch("heights", callback, func() (models.TideHeights, error) {
		resp, err := r.gw.fetchHeights(ctx, date, days, lat, lon, apiKey)
		if err != nil {
			return models.TideHeights{}, err
		}
		return resp.toTideHeights()
	})
}

func (r *repository) tides(ctx context.Context, dataTypes []models.TideDataType, date string, days int, lat, lon, apiKey string, callback Callback[models.Tides]) {
	endpoint := combinedEndpoint(dataTypes)
	dispatch("tides", callback, func() (models.Tides, error) {
		resp, err := r.gw.fetchTides(ctx, endpoint, date, days, lat, lon, apiKey)
		if err != nil {
			return models.Tides{}, err
		}
		if resp.Status != 0 && resp.Error != "" {
			log.Debug().Int("status", resp.Status).Str("error", resp.Error).Msg("api reported an error in the response body")
		}
		return resp.toTides()
	})
}

// dispatch runs one request on its own goroutine and invokes the callback
// exactly once with either the mapped value or the classified failure. Every
// exit path of run ends in a delivery; there is no other way out.
func dispatch[T any](kind string, callback Callback[T], run func() (T, error)) {
	metrics.CountRequest(kind)
	go func() {
		start := time.Now()
		value, err := run()
		metrics.ObserveDuration(kind, time.Since(start))
		if err != nil {
			metrics.CountFailure(kind, failureReason(err))
			log.Debug().Err(err).Str("kind", kind).Msg("tide request failed")
			callback(Failure[T](err))
			return
		}
		callback(Success(value))
	}()
}

// failureReason buckets an error for the failure counter.
func failureReason(err error) string {
	var transportErr *TransportError
	var responseErr *ResponseError
	var requestErr *RequestError
	var dateErr *DateParseError
	var typeErr *models.UnknownTideTypeError

	switch {
	case errors.As(err, &transportErr):
		return "transport"
	case errors.As(err, &responseErr):
		return "response"
	case errors.As(err, &requestErr):
		return "request"
	case errors.As(err, &dateErr), errors.As(err, &typeErr):
		return "mapping"
	default:
		return "unknown"
	}
}
