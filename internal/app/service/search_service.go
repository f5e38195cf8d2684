package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/phsants/usetravel-service/internal/app/dto"
	"github.com/phsants/usetravel-service/internal/pkg/session"
	"github.com/phsants/usetravel-service/internal/pkg/travelapi"
)

// SearchWriter is the upstream surface for pesquisas and the city
// catalog behind the form's typeahead.
type SearchWriter interface {
	ListCities(ctx context.Context, token string) ([]travelapi.City, error)
	CreateSearch(ctx context.Context, token string, form dto.SearchForm) error
	ListSearches(ctx context.Context, token string) ([]dto.SavedSearch, error)
	GetSearch(ctx context.Context, token string, id int64) (dto.SavedSearchDetail, error)
	UpdateSearch(ctx context.Context, token string, id int64, form dto.SearchForm) error
	DeleteSearch(ctx context.Context, token string, id int64) error
}

// SearchService owns the scheduled recurring searches: form validation,
// submission and the agendamentos listing.
type SearchService struct {
	Upstream     SearchWriter
	CityCacheTTL time.Duration

	mu             sync.Mutex
	cities         []dto.CityOption
	citiesLoadedAt time.Time
}

func NewSearchService(upstream SearchWriter, cityCacheTTL time.Duration) *SearchService {
	return &SearchService{
		Upstream:     upstream,
		CityCacheTTL: cityCacheTTL,
	}
}

// CreateSearch validates the whole form, then coerces the occupancy
// floors and persists it upstream. Validation failures never reach the
// network.
func (s *SearchService) CreateSearch(ctx context.Context, form dto.SearchForm) error {
	if err := form.Validate(); err != nil {
		return err
	}

	sess, err := session.FromContext(ctx)
	if err != nil {
		return err
	}

	form.CoerceOccupancy()

	if err := s.Upstream.CreateSearch(ctx, sess.Token, form); err != nil {
		return fmt.Errorf("persist search: %w", err)
	}

	return nil
}

// UpdateSearch re-runs full validation before replacing a pesquisa.
func (s *SearchService) UpdateSearch(ctx context.Context, id int64, form dto.SearchForm) error {
	if err := form.Validate(); err != nil {
		return err
	}

	sess, err := session.FromContext(ctx)
	if err != nil {
		return err
	}

	form.CoerceOccupancy()

	if err := s.Upstream.UpdateSearch(ctx, sess.Token, id, form); err != nil {
		return fmt.Errorf("persist search update: %w", err)
	}

	return nil
}

func (s *SearchService) ListSearches(ctx context.Context) (dto.ListSearchesResponse, error) {
	sess, err := session.FromContext(ctx)
	if err != nil {
		return dto.ListSearchesResponse{}, err
	}

	searches, err := s.Upstream.ListSearches(ctx, sess.Token)
	if err != nil {
		return dto.ListSearchesResponse{}, fmt.Errorf("list searches: %w", err)
	}

	return dto.ListSearchesResponse{Searches: searches}, nil
}

func (s *SearchService) GetSearch(ctx context.Context, id int64) (dto.SavedSearchDetail, error) {
	sess, err := session.FromContext(ctx)
	if err != nil {
		return dto.SavedSearchDetail{}, err
	}

	detail, err := s.Upstream.GetSearch(ctx, sess.Token, id)
	if err != nil {
		return dto.SavedSearchDetail{}, fmt.Errorf("get search: %w", err)
	}

	return detail, nil
}

func (s *SearchService) DeleteSearch(ctx context.Context, id int64) error {
	sess, err := session.FromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.Upstream.DeleteSearch(ctx, sess.Token, id); err != nil {
		return fmt.Errorf("delete search: %w", err)
	}

	return nil
}

// CityOptions serves the typeahead: the catalog is fetched once and
// cached in memory, then filtered by case-insensitive substring as the
// user types.
func (s *SearchService) CityOptions(ctx context.Context, query string) (dto.ListCitiesResponse, error) {
	sess, err := session.FromContext(ctx)
	if err != nil {
		return dto.ListCitiesResponse{}, err
	}

	catalog, err := s.cityCatalog(ctx, sess.Token)
	if err != nil {
		return dto.ListCitiesResponse{}, err
	}

	if query == "" {
		return dto.ListCitiesResponse{Cities: catalog}, nil
	}

	needle := strings.ToLower(query)
	matches := make([]dto.CityOption, 0, len(catalog))
	for _, city := range catalog {
		if strings.Contains(strings.ToLower(city.Name), needle) {
			matches = append(matches, city)
		}
	}

	return dto.ListCitiesResponse{Cities: matches}, nil
}

func (s *SearchService) cityCatalog(ctx context.Context, token string) ([]dto.CityOption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cities != nil && time.Since(s.citiesLoadedAt) < s.CityCacheTTL {
		return s.cities, nil
	}

	cities, err := s.Upstream.ListCities(ctx, token)
	if err != nil {
		if s.cities != nil {
			// stale list beats a broken typeahead
			return s.cities, nil
		}
		return nil, fmt.Errorf("load city catalog: %w", err)
	}

	options := make([]dto.CityOption, len(cities))
	for i, city := range cities {
		options[i] = dto.CityOption{ID: city.ID, Name: city.Name}
	}
	sort.Slice(options, func(i, j int) bool { return options[i].Name < options[j].Name })

	s.cities = options
	s.citiesLoadedAt = time.Now()

	return s.cities, nil
}
