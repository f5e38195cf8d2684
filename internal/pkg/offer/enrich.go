package offer

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/phsants/usetravel-service/internal/app/dto"
	"github.com/phsants/usetravel-service/internal/pkg/travelapi"
)

// ItineraryFetcher loads the flight legs behind one execution id.
type ItineraryFetcher interface {
	FetchItinerary(ctx context.Context, token, executionID string) (travelapi.Itinerary, error)
}

// CountConnections derives the connection count from an itinerary.
// Each present leg list contributes its length minus one; a missing or
// empty list contributes zero, never minus one.
func CountConnections(itinerary travelapi.Itinerary) int {
	count := 0
	if len(itinerary.Outbound) > 0 {
		count += len(itinerary.Outbound) - 1
	}
	if len(itinerary.Return) > 0 {
		count += len(itinerary.Return) - 1
	}

	return count
}

// ClassifyConnections maps a connection count to its display type.
func ClassifyConnections(count int) string {
	if count == 0 {
		return dto.ConnectionDirect
	}

	return dto.ConnectionWithStops
}

// Enrich augments every offer in place with connection metadata from the
// per-offer itinerary lookup. Failures are isolated: a failed lookup
// marks only that offer as Desconhecido and never fails the batch.
// Returns the number of failed lookups.
func Enrich(ctx context.Context, fetcher ItineraryFetcher, token string,
	offers []dto.Offer, workers int,
) int {
	if len(offers) == 0 {
		return 0
	}

	if workers <= 1 {
		failures := 0
		for i := range offers {
			if !enrichOne(ctx, fetcher, token, &offers[i]) {
				failures++
			}
		}
		return failures
	}

	if workers > len(offers) {
		workers = len(offers)
	}

	var (
		failures  atomic.Int64
		waitGroup sync.WaitGroup
	)

	jobs := make(chan int)

	waitGroup.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer waitGroup.Done()
			for i := range jobs {
				if !enrichOne(ctx, fetcher, token, &offers[i]) {
					failures.Add(1)
				}
			}
		}()
	}

	for i := range offers {
		jobs <- i
	}
	close(jobs)

	waitGroup.Wait()

	return int(failures.Load())
}

func enrichOne(ctx context.Context, fetcher ItineraryFetcher, token string,
	record *dto.Offer,
) bool {
	itinerary, err := fetcher.FetchItinerary(ctx, token, record.ExecutionID)
	if err != nil {
		slog.WarnContext(ctx, "failed to enrich offer with connections",
			slog.String("hotel", record.HotelName),
			slog.String("execution_id", record.ExecutionID),
			slog.String("error", err.Error()))

		record.Connections = 0
		record.ConnectionType = dto.ConnectionUnknown

		return false
	}

	record.Connections = CountConnections(itinerary)
	record.ConnectionType = ClassifyConnections(record.Connections)

	return true
}
