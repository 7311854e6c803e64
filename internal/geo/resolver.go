// Package geo is the address-resolution collaborator. The ordering core
// treats its output as an opaque delivery-address string; failures collapse
// to a coordinates fallback, never an error surfaced to the cart.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

type Resolver interface {
	Resolve(ctx context.Context, lat, lng float64) string
}

// FallbackAddress is what the original client showed when reverse geocoding
// failed: the raw coordinates as a string.
func FallbackAddress(lat, lng float64) string {
	return fmt.Sprintf("Current Location: %.4f, %.4f", lat, lng)
}

// HTTPResolver reverse-geocodes against a nominatim-style endpoint that
// answers {"display_name": "..."}. Any failure falls back to coordinates.
type HTTPResolver struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPResolver(baseURL string) *HTTPResolver {
	return &HTTPResolver{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (r *HTTPResolver) Resolve(ctx context.Context, lat, lng float64) string {
	url := fmt.Sprintf("%s/reverse?format=json&lat=%f&lon=%f", r.BaseURL, lat, lng)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return FallbackAddress(lat, lng)
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return FallbackAddress(lat, lng)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return FallbackAddress(lat, lng)
	}

	var payload struct {
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.DisplayName == "" {
		return FallbackAddress(lat, lng)
	}
	return payload.DisplayName
}

// CachedResolver memoizes resolved addresses in Redis so repeated lookups of
// the same spot skip the network round trip.
type CachedResolver struct {
	Next Resolver
	rdb  *redis.Client
	ttl  time.Duration
}

func NewCachedResolver(next Resolver, rdb *redis.Client, ttl time.Duration) *CachedResolver {
	return &CachedResolver{Next: next, rdb: rdb, ttl: ttl}
}

func cacheKey(lat, lng float64) string {
	return fmt.Sprintf("geocode:%.4f:%.4f", lat, lng)
}

func (r *CachedResolver) Resolve(ctx context.Context, lat, lng float64) string {
	key := cacheKey(lat, lng)
	if cached, err := r.rdb.Get(ctx, key).Result(); err == nil && cached != "" {
		return cached
	}

	address := r.Next.Resolve(ctx, lat, lng)
	_ = r.rdb.Set(ctx, key, address, r.ttl).Err()
	return address
}
