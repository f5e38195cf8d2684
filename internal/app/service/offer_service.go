package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phsants/usetravel-service/internal/app/dto"
	"github.com/phsants/usetravel-service/internal/pkg/export"
	"github.com/phsants/usetravel-service/internal/pkg/offer"
	"github.com/phsants/usetravel-service/internal/pkg/session"
	"github.com/phsants/usetravel-service/internal/pkg/travelapi"
)

// OfferFetcher is the upstream surface the pipeline needs: the primary
// offers fetch and the per-offer itinerary lookup.
type OfferFetcher interface {
	SearchOffers(ctx context.Context, token string, criteria dto.OfferSearchRequest) ([]travelapi.RawOffer, error)
	FetchItinerary(ctx context.Context, token, executionID string) (travelapi.Itinerary, error)
}

type OfferCacher interface {
	GetLockKey(req dto.OfferSearchRequest) string
	GetCacheKey(req dto.OfferSearchRequest) string
	AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key string) error
	GetOffers(ctx context.Context, key string) ([]dto.Offer, error)
	GetMetadata(ctx context.Context, key string) (dto.Metadata, error)
	SetOffers(ctx context.Context,
		key string,
		offers []dto.Offer,
		metadata dto.Metadata,
		expiration time.Duration,
	) error
}

// OfferService runs the offer collection pipeline: fetch, normalize,
// enrich, then filter/rank/sort/paginate the cached view.
type OfferService struct {
	Upstream          OfferFetcher
	Cache             OfferCacher
	CacheExpiration   time.Duration
	LockTimeout       time.Duration
	EnrichmentWorkers int
}

func NewOfferService(upstream OfferFetcher, cache OfferCacher,
	cacheExpiration, lockTimeout time.Duration, enrichmentWorkers int,
) *OfferService {
	return &OfferService{
		Upstream:          upstream,
		Cache:             cache,
		CacheExpiration:   cacheExpiration,
		LockTimeout:       lockTimeout,
		EnrichmentWorkers: enrichmentWorkers,
	}
}

// SearchOffers returns the requested page of the filtered-and-sorted
// offer view. An empty view is a valid answer; only fetch failures are
// errors.
func (s *OfferService) SearchOffers(
	ctx context.Context,
	req dto.OfferSearchRequest,
) (dto.SearchOffersResponse, error) {
	view, metadata, err := s.collectView(ctx, req)
	if err != nil {
		return dto.SearchOffersResponse{}, err
	}

	return dto.SearchOffersResponse{
		Criteria: req,
		Metadata: metadata,
		Offers:   offer.Paginate(view, req.Page, req.PageSize),
	}, nil
}

// ExportOffers renders the full filtered-and-sorted view (pagination
// never applies to reports) in the requested format.
func (s *OfferService) ExportOffers(
	ctx context.Context,
	req dto.OfferExportRequest,
) (dto.ExportFile, error) {
	view, _, err := s.collectView(ctx, req.OfferSearchRequest)
	if err != nil {
		return dto.ExportFile{}, err
	}

	if len(view) == 0 {
		return dto.ExportFile{}, ErrNoOffersFound
	}

	switch req.Format {
	case dto.ExportFormatPDF:
		content, err := export.ToPDF(view, time.Now())
		if err != nil {
			return dto.ExportFile{}, fmt.Errorf("export pdf: %w", err)
		}

		return dto.ExportFile{
			Filename:    "ofertas_viagens.pdf",
			ContentType: "application/pdf",
			Content:     content,
		}, nil
	default:
		content, err := export.ToSpreadsheet(view)
		if err != nil {
			return dto.ExportFile{}, fmt.Errorf("export spreadsheet: %w", err)
		}

		return dto.ExportFile{
			Filename:    "ofertas_viagens.xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Content:     content,
		}, nil
	}
}

// collectView loads the normalized, enriched result set (from cache
// when possible) and applies the local filter/rank/sort steps.
func (s *OfferService) collectView(ctx context.Context,
	req dto.OfferSearchRequest,
) ([]dto.Offer, dto.Metadata, error) {
	sess, err := session.FromContext(ctx)
	if err != nil {
		return nil, dto.Metadata{}, err
	}

	var (
		offers   []dto.Offer
		metadata dto.Metadata
	)

	startTime := time.Now()
	cacheHit := false

	cacheKey := s.Cache.GetCacheKey(req)
	lockKey := s.Cache.GetLockKey(req)

	// A cached view is only usable together with its metadata; a partial
	// read counts as a miss so the counters stay coherent with the view.
	offers, err = s.Cache.GetOffers(ctx, cacheKey)
	if err == nil {
		metadata, err = s.Cache.GetMetadata(ctx, cacheKey)
		if err == nil {
			cacheHit = true
		} else {
			slog.WarnContext(ctx, "offer cache missing metadata", slog.String("error", err.Error()))
		}
	} else {
		slog.DebugContext(ctx, "offer cache miss", slog.String("error", err.Error()))
	}

	if !cacheHit {
		// One fetch-and-enrich cycle per criteria; concurrent identical
		// requests race for the lock and only one fills the cache.
		raws, err := s.Upstream.SearchOffers(ctx, sess.Token, req)
		if err != nil {
			return nil, dto.Metadata{}, fmt.Errorf("failed to fetch offers: %w", err)
		}

		offers = offer.FromRawAll(raws)
		failures := offer.Enrich(ctx, s.Upstream, sess.Token, offers, s.EnrichmentWorkers)

		metadata = dto.Metadata{
			TotalBeforeFilter:  len(offers),
			EnrichmentFailures: failures,
		}

		acquired, err := s.Cache.AcquireLock(ctx, lockKey, s.LockTimeout)
		if err != nil {
			return nil, dto.Metadata{}, fmt.Errorf("failed to acquire lock: %w", err)
		}
		defer s.Cache.ReleaseLock(ctx, lockKey)

		if acquired {
			if err := s.Cache.SetOffers(ctx, cacheKey, offers, metadata, s.CacheExpiration); err != nil {
				return nil, dto.Metadata{}, fmt.Errorf("failed to set offers to cache: %w", err)
			}
		}
	}

	filtered := offer.Filter(offers, req)
	ranked := offer.Rank(filtered)
	view := offer.Sort(ranked, req.SortOption)

	metadata.TotalResults = len(view)
	metadata.SearchTimeMs = int(time.Since(startTime).Milliseconds())
	metadata.CacheHit = cacheHit

	return view, metadata, nil
}
