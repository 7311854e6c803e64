package config

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

// Load reads an optional .env file and returns the service configuration.
// Every external collaborator is optional: an empty broker or redis host
// disables that integration instead of failing startup.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:        getEnv("ADDR", ":8080"),
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		KafkaTopic:  getEnv("KAFKA_TOPIC", "orders"),
		KafkaGroup:  getEnv("KAFKA_GROUP", "dineout-analytics"),
		RedisHost:   os.Getenv("REDIS_HOST"),
		RedisPort:   getEnv("REDIS_PORT", "6379"),
		GeocoderURL: os.Getenv("GEOCODER_URL"),
	}
}

type Config struct {
	Addr        string
	KafkaBroker string
	KafkaTopic  string
	KafkaGroup  string
	RedisHost   string
	RedisPort   string
	GeocoderURL string
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func MustInitRedis(cfg Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisHost + ":" + cfg.RedisPort,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaWriter(cfg Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBroker),
		Topic:    cfg.KafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
}

func NewKafkaReader(cfg Config) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.KafkaBroker},
		Topic:   cfg.KafkaTopic,
		GroupID: cfg.KafkaGroup,
	})
}
