package worldtides

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bbernstein/worldtides-go/models"
)

// fakeGateway satisfies gateway with canned results per operation.
type fakeGateway struct {
	extremesResp *tideExtremesResponse
	heightsResp  *tideHeightsResponse
	tidesResp    *tidesResponse
	err          error

	mu            sync.Mutex
	tidesEndpoint string
}

func (f *fakeGateway) fetchExtremes(_ context.Context, _ string, _ int, _, _, _ string) (*tideExtremesResponse, error) {
	return f.extremesResp, f.err
}

func (f *fakeGateway) fetchHeights(_ context.Context, _ string, _ int, _, _, _ string) (*tideHeightsResponse, error) {
	return f.heightsResp, f.err
}

func (f *fakeGateway) fetchTides(_ context.Context, endpoint, _ string, _ int, _, _, _ string) (*tidesResponse, error) {
	f.mu.Lock()
	f.tidesEndpoint = endpoint
	f.mu.Unlock()
	return f.tidesResp, f.err
}

func TestRepositoryDeliversExactlyOnce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		gw          *fakeGateway
		wantSuccess bool
	}{
		{
			name: "success path",
			gw: &fakeGateway{
				extremesResp: &tideExtremesResponse{Status: 200, Extremes: []extremeRecord{
					{Dt: 1, Date: "2021-02-17T05:37+0000", Height: 1.0, Type: "High"},
				}},
			},
			wantSuccess: true,
		},
		{
			name: "gateway failure path",
			gw:   &fakeGateway{err: NewTransportError(errors.New("connection refused"))},
		},
		{
			name: "mapping failure path",
			gw: &fakeGateway{
				extremesResp: &tideExtremesResponse{Status: 200, Extremes: []extremeRecord{
					{Dt: 1, Date: "bogus", Height: 1.0, Type: "High"},
				}},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := newRepository(tt.gw)

			var deliveries atomic.Int32
			done := make(chan Result[models.TideExtremes], 2)
			repo.extremes(context.Background(), "2021-02-17", 1, "0", "0", "k", func(r Result[models.TideExtremes]) {
				deliveries.Add(1)
				done <- r
			})

			result := <-done
			assert.Equal(t, tt.wantSuccess, result.IsSuccess())
			assert.Equal(t, int32(1), deliveries.Load())

			select {
			case <-done:
				t.Fatal("outcome delivered more than once")
			default:
			}
		})
	}
}

func TestRepositoryComposesCombinedEndpoint(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{tidesResp: &tidesResponse{Status: 200}}
	repo := newRepository(gw)

	done := make(chan Result[models.Tides], 1)
	kinds := []models.TideDataType{models.DataTypeExtremes, models.DataTypeHeights}
	repo.tides(context.Background(), kinds, "2021-02-17", 1, "0", "0", "k", func(r Result[models.Tides]) {
		done <- r
	})
	<-done

	gw.mu.Lock()
	defer gw.mu.Unlock()
	assert.Equal(t, "v2?extremes&heights", gw.tidesEndpoint)
}

func TestRepositoryMapsHeights(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{
		heightsResp: &tideHeightsResponse{Status: 200, Heights: []heightRecord{
			{Dt: 1613540259, Date: "2021-02-17T05:37+0000", Height: 0.485},
		}},
	}
	repo := newRepository(gw)

	done := make(chan Result[models.TideHeights], 1)
	repo.heights(context.Background(), "2021-02-17", 1, "0", "0", "k", func(r Result[models.TideHeights]) {
		done <- r
	})

	heights, err := (<-done).Get()
	require.NoError(t, err)
	require.Len(t, heights.Heights, 1)
	assert.InDelta(t, 0.485, heights.Heights[0].Height, 1e-9)
}

func TestFailureReason(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "transport",
			err:  NewTransportError(errors.New("dial tcp: refused")),
			want: "transport",
		},
		{
			name: "response",
			err:  NewResponseError(408, "response is not successful", nil),
			want: "response",
		},
		{
			name: "request validation",
			err:  NewRequestError("no kinds"),
			want: "request",
		},
		{
			name: "date mapping",
			err:  NewDateParseError("bogus", errors.New("cannot parse")),
			want: "mapping",
		},
		{
			name: "tide type mapping",
			err:  models.NewUnknownTideTypeError("Mid"),
			want: "mapping",
		},
		{
			name: "anything else",
			err:  errors.New("unexpected"),
			want: "unknown",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, failureReason(tt.err))
		})
	}
}
