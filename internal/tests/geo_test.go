package tests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dineout/internal/geo"

	"github.com/stretchr/testify/assert"
)

type countingResolver struct {
	address string
	calls   int
}

func (r *countingResolver) Resolve(ctx context.Context, lat, lng float64) string {
	r.calls++
	return r.address
}

func TestHTTPResolver_Resolve(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"display_name":"Ermou 15, Athens, Greece"}`))
	}))
	defer server.Close()

	resolver := geo.NewHTTPResolver(server.URL)
	address := resolver.Resolve(context.Background(), 37.9685, 23.7319)
	assert.Equal(t, "Ermou 15, Athens, Greece", address)
}

func TestHTTPResolver_FallbackOnFailure(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server_error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "bad_payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			},
		},
		{
			name: "empty_display_name",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"display_name":""}`))
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			server := httptest.NewServer(testCase.handler)
			defer server.Close()

			resolver := geo.NewHTTPResolver(server.URL)
			address := resolver.Resolve(context.Background(), 37.9685, 23.7319)
			assert.Equal(t, geo.FallbackAddress(37.9685, 23.7319), address)
		})
	}
}

func TestHTTPResolver_FallbackWhenUnreachable(t *testing.T) {
	resolver := geo.NewHTTPResolver("http://127.0.0.1:1")
	address := resolver.Resolve(context.Background(), 1.5, 2.5)
	assert.Equal(t, "Current Location: 1.5000, 2.5000", address)
}

func TestCachedResolver_MemoizesResults(t *testing.T) {
	rdb := setupTestRedis(t)
	next := &countingResolver{address: "Ermou 15, Athens"}
	resolver := geo.NewCachedResolver(next, rdb, time.Hour)
	ctx := context.Background()

	assert.Equal(t, "Ermou 15, Athens", resolver.Resolve(ctx, 37.9685, 23.7319))
	assert.Equal(t, "Ermou 15, Athens", resolver.Resolve(ctx, 37.9685, 23.7319))
	assert.Equal(t, 1, next.calls)

	// a different spot misses the cache
	resolver.Resolve(ctx, 38.0000, 23.7319)
	assert.Equal(t, 2, next.calls)
}
