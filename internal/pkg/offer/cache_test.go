package offer

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/phsants/usetravel-service/internal/app/dto"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

func TestCache_Keys(t *testing.T) {
	c := &Cache{}

	origins := dto.OfferSearchRequest{Origins: []string{"São Paulo"}}
	sorted := dto.OfferSearchRequest{
		Origins:    []string{"São Paulo"},
		SortOption: &dto.SortOption{Field: "preco_total_pacote", Order: "desc"},
		Page:       3,
		PageSize:   20,
	}
	other := dto.OfferSearchRequest{Origins: []string{"Campinas"}}

	t.Run("sort_and_page_never_fragment_the_cache", func(t *testing.T) {
		if c.GetCacheKey(origins) != c.GetCacheKey(sorted) {
			t.Fatal("same fetch criteria must share one cache entry")
		}
	})

	t.Run("different_criteria_different_keys", func(t *testing.T) {
		if c.GetCacheKey(origins) == c.GetCacheKey(other) {
			t.Fatal("distinct fetch criteria must not collide")
		}
	})

	t.Run("lock_and_cache_namespaces_differ", func(t *testing.T) {
		if c.GetLockKey(origins) == c.GetCacheKey(origins) {
			t.Fatal("lock key must not shadow the cache key")
		}
	})
}

func TestCache_AcquireLock_Closure(t *testing.T) {
	acquireLockRequest := func(key string, timeout time.Duration, mockSetup func(m *MockRedisClient), want bool) func(t *testing.T) {
		return func(t *testing.T) {
			m := NewMockRedisClient(t)
			mockSetup(m)
			c := NewCache(m)

			got, err := c.AcquireLock(context.Background(), key, timeout)
			if err != nil {
				t.Fatalf("AcquireLock returned error: %v", err)
			}
			if got != want {
				t.Fatalf("expected %v, got %v", want, got)
			}
		}
	}

	t.Run("lock_acquired", acquireLockRequest("test-key", 5*time.Second, func(m *MockRedisClient) {
		m.On("SetNX", mock.Anything, "test-key", "1", 5*time.Second).Return(redis.NewBoolResult(true, nil))
	}, true))

	t.Run("lock_not_acquired", acquireLockRequest("test-key", 5*time.Second, func(m *MockRedisClient) {
		m.On("SetNX", mock.Anything, "test-key", "1", 5*time.Second).Return(redis.NewBoolResult(false, nil))
	}, false))
}

func TestCache_SetOffers_Closure(t *testing.T) {
	setOffersRequest := func(key string, offers []dto.Offer, meta dto.Metadata, exp time.Duration, mockSetup func(m *MockRedisClient)) func(t *testing.T) {
		return func(t *testing.T) {
			m := NewMockRedisClient(t)
			mockSetup(m)
			c := NewCache(m)

			err := c.SetOffers(context.Background(), key, offers, meta, exp)
			if err != nil {
				t.Fatalf("SetOffers returned error: %v", err)
			}
		}
	}

	offers := []dto.Offer{{ID: "1"}}
	meta := dto.Metadata{TotalResults: 1}

	t.Run("success", setOffersRequest("test-cache", offers, meta, 10*time.Minute, func(m *MockRedisClient) {
		m.On("Set", mock.Anything, "test-cache", mock.Anything, 10*time.Minute).Return(redis.NewStatusResult("OK", nil))
		m.On("Set", mock.Anything, "test-cache:metadata", mock.Anything, 10*time.Minute).Return(redis.NewStatusResult("OK", nil))
	}))
}

func TestCache_GetOffers_Closure(t *testing.T) {
	getOffersRequest := func(key string, mockSetup func(m *MockRedisClient), want []dto.Offer, wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			m := NewMockRedisClient(t)
			mockSetup(m)
			c := NewCache(m)

			got, err := c.GetOffers(context.Background(), key)
			if (err != nil) != wantErr {
				t.Fatalf("GetOffers error = %v, wantErr %v", err, wantErr)
			}
			if !wantErr {
				diff := cmp.Diff(want, got)
				if diff != "" {
					t.Fatalf("GetOffers mismatch (-want +got):\n%s", diff)
				}
			}
		}
	}

	offers := []dto.Offer{{ID: "1"}}
	t.Run("success", getOffersRequest("test-cache", func(m *MockRedisClient) {
		m.On("Get", mock.Anything, "test-cache").Return(redis.NewStringResult(`[{"id":"1"}]`, nil))
	}, offers, false))

	t.Run("cache_miss", getOffersRequest("test-cache", func(m *MockRedisClient) {
		m.On("Get", mock.Anything, "test-cache").Return(redis.NewStringResult("", redis.Nil))
	}, nil, true))
}

func TestCache_ReleaseLock(t *testing.T) {
	m := NewMockRedisClient(t)
	m.On("Del", mock.Anything, "lock-key").Return(redis.NewIntResult(1, nil))

	c := NewCache(m)
	if err := c.ReleaseLock(context.Background(), "lock-key"); err != nil {
		t.Fatalf("ReleaseLock returned error: %v", err)
	}
}
