package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "STOREFRONT_BASE_URL", "REQUEST_TIMEOUT", "KAFKA_BROKERS", "REDIS_ADDR", "DATABASE_URL", "CACHE_TTL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Backend.RequestTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Redis.CacheTTL)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, "checkout-signals", cfg.Kafka.TopicSignals)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STOREFRONT_BASE_URL", "https://store.example.com")
	t.Setenv("REQUEST_TIMEOUT", "5")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("CHECKOUT_ID", "abc")

	cfg := Load()

	assert.Equal(t, "https://store.example.com", cfg.Backend.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Backend.RequestTimeout)
	assert.Equal(t, 90*time.Second, cfg.Redis.CacheTTL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "abc", cfg.Session.CheckoutID)
}

func TestGetDurationInvalid(t *testing.T) {
	t.Setenv("SOME_TIMEOUT", "soon")
	assert.Equal(t, time.Minute, getDuration("SOME_TIMEOUT", time.Minute))
}
