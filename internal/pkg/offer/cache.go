package offer

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/phsants/usetravel-service/internal/app/dto"
)

type RedisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// Cache holds normalized, enriched result sets so repeated dashboard
// actions (re-sort, re-page, export) don't refetch and re-enrich.
type Cache struct {
	redis RedisClient
}

func NewCache(redis RedisClient) *Cache {
	return &Cache{
		redis: redis,
	}
}

// cacheableCriteria is the subset of the request that shapes the
// upstream fetch. Sort and page are applied after the cache, so they
// never fragment it.
type cacheableCriteria struct {
	Origins      []string `json:"origens"`
	Destinations []string `json:"destinos"`
	HotelNames   []string `json:"nomes_hoteis"`
	PriceMin     *float64 `json:"preco_min"`
	PriceMax     *float64 `json:"preco_max"`
	Connection   *string  `json:"conexoes"`
	DateStart    string   `json:"data_inicio"`
	DateEnd      string   `json:"data_fim"`
}

func criteriaDigest(req dto.OfferSearchRequest) string {
	payload, _ := json.Marshal(cacheableCriteria{ //nolint:errchkjson
		Origins:      req.Origins,
		Destinations: req.Destinations,
		HotelNames:   req.HotelNames,
		PriceMin:     req.PriceMin,
		PriceMax:     req.PriceMax,
		Connection:   req.Connection,
		DateStart:    req.DateStart,
		DateEnd:      req.DateEnd,
	})

	return fmt.Sprintf("%x", sha256.Sum256(payload))
}

func (c *Cache) GetLockKey(req dto.OfferSearchRequest) string {
	return "ofertas:lock:" + criteriaDigest(req)
}

func (c *Cache) GetCacheKey(req dto.OfferSearchRequest) string {
	return "ofertas:cache:" + criteriaDigest(req)
}

func (c *Cache) AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error) {
	return c.redis.SetNX(ctx, key, "1", timeout).Result()
}

func (c *Cache) ReleaseLock(ctx context.Context, key string) error {
	return c.redis.Del(ctx, key).Err()
}

func (c *Cache) SetOffers(ctx context.Context,
	key string,
	offers []dto.Offer,
	metadata dto.Metadata,
	expiration time.Duration,
) error {
	data, err := json.Marshal(offers)
	if err != nil {
		return fmt.Errorf("failed to marshal offers: %w", err)
	}

	err = c.redis.Set(ctx, key, data, expiration).Err()
	if err != nil {
		return fmt.Errorf("failed to set offers: %w", err)
	}

	metadataBytes, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	err = c.redis.Set(ctx, key+":metadata", metadataBytes, expiration).Err()
	if err != nil {
		return fmt.Errorf("failed to set metadata: %w", err)
	}

	return nil
}

func (c *Cache) GetOffers(ctx context.Context, key string) ([]dto.Offer, error) {
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}

	var offers []dto.Offer
	if err := json.Unmarshal(data, &offers); err != nil {
		return nil, err
	}

	return offers, nil
}

func (c *Cache) GetMetadata(ctx context.Context, key string) (dto.Metadata, error) {
	metadataBytes, err := c.redis.Get(ctx, key+":metadata").Bytes()
	if err != nil {
		return dto.Metadata{}, err
	}

	var metadata dto.Metadata
	if err := json.Unmarshal(metadataBytes, &metadata); err != nil {
		return dto.Metadata{}, err
	}

	return metadata, nil
}
