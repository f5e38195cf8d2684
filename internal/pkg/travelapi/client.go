package travelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis_rate/v10"

	"github.com/phsants/usetravel-service/internal/app/dto"
	"github.com/phsants/usetravel-service/internal/pkg/utils"
)

const (
	offersPath   = "/api/hoteis"
	flightsPath  = "/api/voos"
	citiesPath   = "/api/cidades"
	searchesPath = "/api/pesquisas"
	searchPath   = "/api/pesquisa"

	limiterKey = "limit:travelapi"
)

// Config for the upstream travel API client.
type Config struct {
	BaseURL      string
	Timeout      time.Duration
	MaxRetries   int
	RateLimitRPS int
	Limiter      *redis_rate.Limiter
}

// Client talks to the upstream travel API. All storage (offers,
// itineraries, cities, pesquisas) lives behind it; this service only
// reads, enriches and forwards.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	maxRetries   int
	rateLimitRPS int
	limiter      *redis_rate.Limiter
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:   &http.Client{Timeout: timeout},
		maxRetries:   cfg.MaxRetries,
		rateLimitRPS: cfg.RateLimitRPS,
		limiter:      cfg.Limiter,
	}
}

// SearchOffers fetches raw offer records. Multi-valued constraints are
// repeated as separate parameters, never comma-joined, so city and hotel
// names containing commas stay unambiguous.
func (c *Client) SearchOffers(ctx context.Context, token string,
	criteria dto.OfferSearchRequest,
) ([]RawOffer, error) {
	params := url.Values{}

	for _, origin := range criteria.Origins {
		params.Add("origem", origin)
	}
	for _, destination := range criteria.Destinations {
		params.Add("destino", destination)
	}
	for _, hotel := range criteria.HotelNames {
		params.Add("nome_hotel", hotel)
	}

	if criteria.PriceMin != nil {
		params.Set("preco_min", strconv.FormatFloat(*criteria.PriceMin, 'f', -1, 64))
	}
	if criteria.PriceMax != nil {
		params.Set("preco_max", strconv.FormatFloat(*criteria.PriceMax, 'f', -1, 64))
	}

	if criteria.Connection != nil {
		value := "conexao"
		if *criteria.Connection == dto.ConnectionDirect {
			value = "direto"
		}
		params.Set("conexoes", value)
	}

	if criteria.DateStart != "" {
		params.Set("data_inicio", utils.ToISODate(criteria.DateStart))
	}
	if criteria.DateEnd != "" {
		params.Set("data_fim", utils.ToISODate(criteria.DateEnd))
	}

	endpoint := c.baseURL + offersPath
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var offers []RawOffer
	if err := c.getJSON(ctx, token, endpoint, &offers); err != nil {
		return nil, fmt.Errorf("search offers: %w", err)
	}

	return offers, nil
}

// FetchItinerary loads the outbound and return legs behind one offer.
func (c *Client) FetchItinerary(ctx context.Context, token string,
	executionID string,
) (Itinerary, error) {
	if executionID == "" {
		return Itinerary{}, fmt.Errorf("fetch itinerary: %w",
			errors.New("empty execution id"))
	}

	endpoint := c.baseURL + flightsPath + "/" + url.PathEscape(executionID)

	var itinerary Itinerary
	if err := c.getJSON(ctx, token, endpoint, &itinerary); err != nil {
		return Itinerary{}, fmt.Errorf("fetch itinerary %s: %w", executionID, err)
	}

	return itinerary, nil
}

// ListCities loads the city catalog used by the search form typeahead.
func (c *Client) ListCities(ctx context.Context, token string) ([]City, error) {
	var cities []City
	if err := c.getJSON(ctx, token, c.baseURL+citiesPath, &cities); err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}

	return cities, nil
}

// CreateSearch persists a new scheduled search upstream.
func (c *Client) CreateSearch(ctx context.Context, token string, form dto.SearchForm) error {
	if err := c.sendJSON(ctx, token, http.MethodPost, c.baseURL+searchesPath, form, nil); err != nil {
		return fmt.Errorf("create search: %w", err)
	}

	return nil
}

// ListSearches returns every persisted pesquisa for the caller.
func (c *Client) ListSearches(ctx context.Context, token string) ([]dto.SavedSearch, error) {
	var envelope savedSearchEnvelope
	if err := c.getJSON(ctx, token, c.baseURL+searchesPath, &envelope); err != nil {
		return nil, fmt.Errorf("list searches: %w", err)
	}

	if !envelope.Success {
		return nil, fmt.Errorf("list searches: %w", ErrUnexpectedResponse)
	}

	var searches []dto.SavedSearch
	if err := json.Unmarshal(envelope.Data, &searches); err != nil {
		return nil, fmt.Errorf("list searches: decode data: %w", err)
	}

	return searches, nil
}

// searchDetailEnvelope mirrors the upstream detail shape: the pesquisa
// scalar fields plus a flattened origin/destination pair list.
type searchDetailEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Search        dto.SavedSearchDetail `json:"pesquisa"`
		RoutePairings []routePairing        `json:"origensDestinos"`
	} `json:"data"`
}

type routePairing struct {
	Origin        string `json:"origem"`
	Destination   string `json:"destino"`
	HotelName     string `json:"nome_hotel"`
	CheapestHotel bool   `json:"hotel_por_preco"`
}

// GetSearch loads one pesquisa with its route rows rebuilt as form rows.
func (c *Client) GetSearch(ctx context.Context, token string, id int64) (dto.SavedSearchDetail, error) {
	endpoint := fmt.Sprintf("%s%s/%d", c.baseURL, searchPath, id)

	var envelope searchDetailEnvelope
	if err := c.getJSON(ctx, token, endpoint, &envelope); err != nil {
		return dto.SavedSearchDetail{}, fmt.Errorf("get search %d: %w", id, err)
	}

	if !envelope.Success {
		return dto.SavedSearchDetail{}, fmt.Errorf("get search %d: %w", id, ErrUnexpectedResponse)
	}

	detail := envelope.Data.Search
	detail.ID = id
	detail.Origins = detail.Origins[:0]
	detail.Destinations = detail.Destinations[:0]

	for _, pair := range envelope.Data.RoutePairings {
		detail.Origins = append(detail.Origins, dto.OriginEntry{Name: pair.Origin})
		detail.Destinations = append(detail.Destinations, dto.DestinationEntry{
			Name:          pair.Destination,
			Hotel:         pair.HotelName,
			CheapestHotel: pair.CheapestHotel,
		})
	}

	return detail, nil
}

// UpdateSearch replaces one pesquisa upstream.
func (c *Client) UpdateSearch(ctx context.Context, token string, id int64, form dto.SearchForm) error {
	endpoint := fmt.Sprintf("%s%s/%d", c.baseURL, searchPath, id)
	if err := c.sendJSON(ctx, token, http.MethodPut, endpoint, form, nil); err != nil {
		return fmt.Errorf("update search %d: %w", id, err)
	}

	return nil
}

// DeleteSearch removes one pesquisa upstream.
func (c *Client) DeleteSearch(ctx context.Context, token string, id int64) error {
	endpoint := fmt.Sprintf("%s%s/%d", c.baseURL, searchPath, id)
	if err := c.sendJSON(ctx, token, http.MethodDelete, endpoint, nil, nil); err != nil {
		return fmt.Errorf("delete search %d: %w", id, err)
	}

	return nil
}

// getJSON performs an idempotent read with rate limiting and retries.
// Transport errors and 5xx answers retry with exponential backoff.
func (c *Client) getJSON(ctx context.Context, token, endpoint string, target interface{}) error {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := c.allow(ctx); err != nil {
			return err
		}

		err := c.doJSON(ctx, token, http.MethodGet, endpoint, nil, target)
		if err == nil {
			return nil
		}

		lastErr = err
		if !retriable(err) {
			return err
		}

		slog.WarnContext(ctx, "upstream call failed",
			slog.String("endpoint", endpoint),
			slog.Int("attempt", attempt+1),
			slog.String("error", err.Error()))

		if attempt < c.maxRetries {
			// Exponential backoff: 200ms * 2^attempt
			backoff := time.Duration(200*(1<<attempt)) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return fmt.Errorf("context cancelled or timeout: %w", ctx.Err())
			}
		}
	}

	return fmt.Errorf("%w: %w", ErrRetryExceeded, lastErr)
}

// sendJSON performs a non-idempotent write; no retries.
func (c *Client) sendJSON(ctx context.Context, token, method, endpoint string,
	body, target interface{},
) error {
	if err := c.allow(ctx); err != nil {
		return err
	}

	return c.doJSON(ctx, token, method, endpoint, body, target)
}

func (c *Client) allow(ctx context.Context) error {
	if c.limiter == nil || c.rateLimitRPS <= 0 {
		return nil
	}

	res, err := c.limiter.Allow(ctx, limiterKey, redis_rate.PerSecond(c.rateLimitRPS))
	if err != nil {
		return fmt.Errorf("failed to rate limit: %w", err)
	}

	if res.Allowed == 0 {
		return ErrRateLimitExceeded
	}

	return nil
}

type statusError struct {
	status int
}

func (e statusError) Error() string {
	return fmt.Sprintf("status %d", e.status)
}

func retriable(err error) bool {
	var sErr statusError
	if errors.As(err, &sErr) {
		return sErr.status >= http.StatusInternalServerError
	}

	// Anything that never produced a status line is a transport failure.
	return !errors.Is(err, ErrUnexpectedResponse)
}

func (c *Client) doJSON(ctx context.Context, token, method, endpoint string,
	body, target interface{},
) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck

		if resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("%w: %w", statusError{status: resp.StatusCode}, ErrUnexpectedResponse)
		}

		return fmt.Errorf("status %d: %w", resp.StatusCode, ErrUnexpectedResponse)
	}

	if target == nil {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return nil
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		return fmt.Errorf("content type %q: %w", contentType, ErrUnexpectedResponse)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decode response: %w", ErrUnexpectedResponse)
	}

	return nil
}
