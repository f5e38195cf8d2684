package offer

import (
	"context"
	"errors"
	"testing"

	"github.com/phsants/usetravel-service/internal/app/dto"
	"github.com/phsants/usetravel-service/internal/pkg/travelapi"
	"github.com/stretchr/testify/assert"
)

type stubItineraryFetcher struct {
	itineraries map[string]travelapi.Itinerary
	failing     map[string]bool
}

func (s stubItineraryFetcher) FetchItinerary(_ context.Context, _, executionID string) (travelapi.Itinerary, error) {
	if s.failing[executionID] {
		return travelapi.Itinerary{}, errors.New("upstream timeout")
	}

	return s.itineraries[executionID], nil
}

func TestCountConnections_Closure(t *testing.T) {
	leg := func(flight string) travelapi.FlightLeg {
		return travelapi.FlightLeg{FlightNumber: flight}
	}

	countRequest := func(itinerary travelapi.Itinerary, want int) func(t *testing.T) {
		return func(t *testing.T) {
			got := CountConnections(itinerary)
			assert.Equal(t, want, got)
		}
	}

	t.Run("single_leg_each_way_is_direct", countRequest(travelapi.Itinerary{
		Outbound: []travelapi.FlightLeg{leg("AD4050")},
		Return:   []travelapi.FlightLeg{leg("AD4051")},
	}, 0))

	t.Run("stops_sum_across_directions", countRequest(travelapi.Itinerary{
		Outbound: []travelapi.FlightLeg{leg("AD4050"), leg("AD2210"), leg("AD1177")},
		Return:   []travelapi.FlightLeg{leg("AD4051")},
	}, 2))

	t.Run("missing_return_contributes_zero", countRequest(travelapi.Itinerary{
		Outbound: []travelapi.FlightLeg{leg("AD4050"), leg("AD2210")},
	}, 1))

	t.Run("empty_itinerary", countRequest(travelapi.Itinerary{}, 0))
}

func TestClassifyConnections_Closure(t *testing.T) {
	classifyRequest := func(count int, want string) func(t *testing.T) {
		return func(t *testing.T) {
			got := ClassifyConnections(count)
			assert.Equal(t, want, got)
		}
	}

	t.Run("direct", classifyRequest(0, dto.ConnectionDirect))
	t.Run("one_stop", classifyRequest(1, dto.ConnectionWithStops))
	t.Run("many_stops", classifyRequest(3, dto.ConnectionWithStops))
}

func TestEnrich_FailureIsolation(t *testing.T) {
	enrichRequest := func(workers int) func(t *testing.T) {
		return func(t *testing.T) {
			offers := []dto.Offer{
				{ID: "1", ExecutionID: "exec-1"},
				{ID: "2", ExecutionID: "exec-2"},
				{ID: "3", ExecutionID: "exec-3"},
				{ID: "4", ExecutionID: "exec-4"},
				{ID: "5", ExecutionID: "exec-5"},
			}

			fetcher := stubItineraryFetcher{
				itineraries: map[string]travelapi.Itinerary{
					"exec-1": {Outbound: []travelapi.FlightLeg{{FlightNumber: "AD1"}}},
					"exec-2": {Outbound: []travelapi.FlightLeg{{FlightNumber: "AD1"}, {FlightNumber: "AD2"}}},
					"exec-4": {Outbound: []travelapi.FlightLeg{{FlightNumber: "AD1"}}},
					"exec-5": {Outbound: []travelapi.FlightLeg{{FlightNumber: "AD1"}}},
				},
				failing: map[string]bool{"exec-3": true},
			}

			failures := Enrich(context.Background(), fetcher, "token", offers, workers)

			assert.Equal(t, 1, failures)

			// only the failed offer reads Desconhecido
			assert.Equal(t, dto.ConnectionUnknown, offers[2].ConnectionType)
			assert.Equal(t, 0, offers[2].Connections)

			assert.Equal(t, dto.ConnectionDirect, offers[0].ConnectionType)
			assert.Equal(t, dto.ConnectionWithStops, offers[1].ConnectionType)
			assert.Equal(t, 1, offers[1].Connections)
			assert.Equal(t, dto.ConnectionDirect, offers[3].ConnectionType)
			assert.Equal(t, dto.ConnectionDirect, offers[4].ConnectionType)
		}
	}

	t.Run("sequential", enrichRequest(1))
	t.Run("worker_pool", enrichRequest(4))
	t.Run("more_workers_than_offers", enrichRequest(16))
}

func TestEnrich_EmptySet(t *testing.T) {
	failures := Enrich(context.Background(), stubItineraryFetcher{}, "token", nil, 4)
	assert.Equal(t, 0, failures)
}
