package worldtides

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/bbernstein/worldtides-go/models"
	"github.com/bbernstein/worldtides-go/pkg/http/client"
	"github.com/rs/zerolog/log"
)

// gateway declares the network operations against the worldtides API. Each
// issues one outbound request and returns either a decoded wire record or a
// classified error (*TransportError or *ResponseError).
type gateway interface {
	fetchExtremes(ctx context.Context, date string, days int, lat, lon, apiKey string) (*tideExtremesResponse, error)
	fetchHeights(ctx context.Context, date string, days int, lat, lon, apiKey string) (*tideHeightsResponse, error)
	fetchTides(ctx context.Context, endpoint, date string, days int, lat, lon, apiKey string) (*tidesResponse, error)
}

// httpGateway implements gateway over the injected transport.
type httpGateway struct {
	httpClient client.Interface
}

func newHTTPGateway(httpClient client.Interface) *httpGateway {
	return &httpGateway{httpClient: httpClient}
}

func (g *httpGateway) fetchExtremes(ctx context.Context, date string, days int, lat, lon, apiKey string) (*tideExtremesResponse, error) {
	return fetch[tideExtremesResponse](ctx, g.httpClient, endpointFor(models.DataTypeExtremes), date, days, lat, lon, apiKey)
}

func (g *httpGateway) fetchHeights(ctx context.Context, date string, days int, lat, lon, apiKey string) (*tideHeightsResponse, error) {
	return fetch[tideHeightsResponse](ctx, g.httpClient, endpointFor(models.DataTypeHeights), date, days, lat, lon, apiKey)
}

func (g *httpGateway) fetchTides(ctx context.Context, endpoint, date string, days int, lat, lon, apiKey string) (*tidesResponse, error) {
	return fetch[tidesResponse](ctx, g.httpClient, endpoint, date, days, lat, lon, apiKey)
}

// endpointFor builds the single-kind endpoint, e.g. "v2?extremes".
func endpointFor(dataType models.TideDataType) string {
	return "v2?" + dataType.QueryFlag()
}

// combinedEndpoint joins the query flags of the requested data types in
// caller order, e.g. "v2?heights&extremes". No re-sorting, no de-duplication.
func combinedEndpoint(dataTypes []models.TideDataType) string {
	flags := make([]string, len(dataTypes))
	for i, dt := range dataTypes {
		flags[i] = dt.QueryFlag()
	}
	return "v2?" + strings.Join(flags, "&")
}

// buildPath appends the common query parameters to an endpoint that already
// carries its data-type flags. The flags are valueless, so the query string
// is assembled by hand rather than through url.Values.
func buildPath(endpoint, date string, days int, lat, lon, apiKey string) string {
	return fmt.Sprintf("/%s&date=%s&days=%d&lat=%s&lon=%s&key=%s",
		endpoint,
		url.QueryEscape(date),
		days,
		url.QueryEscape(lat),
		url.QueryEscape(lon),
		url.QueryEscape(apiKey),
	)
}

func fetch[T any](ctx context.Context, httpClient client.Interface, endpoint, date string, days int, lat, lon, apiKey string) (*T, error) {
	path := buildPath(endpoint, date, days, lat, lon, apiKey)
	log.Debug().Str("endpoint", endpoint).Str("date", date).Int("days", days).Msg("fetching tide data")

	resp, err := httpClient.Get(ctx, path)
	if err != nil {
		return nil, NewTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, NewResponseError(resp.StatusCode, "response is not successful", nil)
	}
	if len(resp.Body) == 0 {
		return nil, NewResponseError(resp.StatusCode, "response is successful but has no body", nil)
	}

	var record T
	if err := json.Unmarshal(resp.Body, &record); err != nil {
		return nil, NewResponseError(resp.StatusCode, "decoding response body", err)
	}

	return &record, nil
}
