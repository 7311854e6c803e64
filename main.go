package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"dineout/internal/analytics"
	httpapi "dineout/internal/api/http"
	"dineout/internal/cart"
	"dineout/internal/catalog"
	"dineout/internal/config"
	"dineout/internal/geo"
	"dineout/internal/service"
	"dineout/internal/storage"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()

	var rdb *redis.Client
	if cfg.RedisHost != "" {
		rdb = config.MustInitRedis(cfg)
		defer rdb.Close()
	}

	var publisher service.OrderPublisher
	if cfg.KafkaBroker != "" {
		writer := config.NewKafkaWriter(cfg)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	var popularity httpapi.PopularityReader
	if cfg.KafkaBroker != "" && rdb != nil {
		store := storage.NewPopularityStore(rdb)
		popularity = store

		reader := config.NewKafkaReader(cfg)
		defer reader.Close()
		consumer := analytics.NewConsumer(reader, store)
		go consumer.Start(context.Background())
	}

	var resolver geo.Resolver
	if cfg.GeocoderURL != "" {
		resolver = geo.NewHTTPResolver(cfg.GeocoderURL)
		if rdb != nil {
			resolver = geo.NewCachedResolver(resolver, rdb, 24*time.Hour)
		}
	}

	orders := service.NewOrderService(publisher)
	handler := httpapi.NewHandler(catalog.Default(), cart.NewSessions(), orders, popularity, resolver)

	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	logger.Info().Str("addr", cfg.Addr).Msg("DineOut service starting")
	if err := http.ListenAndServe(cfg.Addr, cors.Default().Handler(r)); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
