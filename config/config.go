package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Backend  BackendConfig
	Session  SessionConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Observ   ObservabilityConfig
}

type ServerConfig struct {
	Port     string
	Env      string
	LogLevel string
}

// BackendConfig locates the storefront and payment gateway APIs
type BackendConfig struct {
	BaseURL        string
	PaymentHost    string
	RequestTimeout time.Duration
}

type SessionConfig struct {
	CheckoutID string
	Locale     string
}

// DatabaseConfig points at the notification journal; an empty URL disables it
type DatabaseConfig struct {
	URL string
}

// RedisConfig configures the catalog cache; an empty Addr disables it
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	CacheTTL time.Duration
}

// KafkaConfig configures the signal journal and notification topics; no
// brokers disables both
type KafkaConfig struct {
	Brokers            []string
	TopicSignals       string
	TopicNotifications string
	ConsumerGroup      string
}

type ObservabilityConfig struct {
	JaegerEndpoint string
	ServiceName    string
}

func Load() *Config {
	_ = godotenv.Load()

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	cfg := &Config{
		Server: ServerConfig{
			Port:     getEnv("PORT", "8080"),
			Env:      getEnv("ENV", "development"),
			LogLevel: getEnv("LOG_LEVEL", ""),
		},
		Backend: BackendConfig{
			BaseURL:        getEnv("STOREFRONT_BASE_URL", "http://localhost:3000"),
			PaymentHost:    getEnv("PAYMENT_HOST", "http://localhost:3001"),
			RequestTimeout: getDuration("REQUEST_TIMEOUT", 30*time.Second),
		},
		Session: SessionConfig{
			CheckoutID: getEnv("CHECKOUT_ID", ""),
			Locale:     getEnv("LOCALE", ""),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
			CacheTTL: getDuration("CACHE_TTL", 10*time.Minute),
		},
		Kafka: KafkaConfig{
			Brokers:            splitList(getEnv("KAFKA_BROKERS", "")),
			TopicSignals:       getEnv("KAFKA_TOPIC_SIGNALS", "checkout-signals"),
			TopicNotifications: getEnv("KAFKA_TOPIC_NOTIFICATIONS", "checkout-notifications"),
			ConsumerGroup:      getEnv("KAFKA_CONSUMER_GROUP", "checkout-sdk-group"),
		},
		Observ: ObservabilityConfig{
			JaegerEndpoint: getEnv("JAEGER_ENDPOINT", ""),
			ServiceName:    getEnv("SERVICE_NAME", "checkout-sdk"),
		},
	}

	log.Printf("Config loaded: env=%s, port=%s", cfg.Server.Env, cfg.Server.Port)
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getDuration accepts Go durations ("15s") or whole seconds ("15")
func getDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	if d, err := time.ParseDuration(val); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(val); err == nil {
		return time.Duration(secs) * time.Second
	}
	log.Printf("Invalid duration for %s: %q, using %s", key, val, defaultVal)
	return defaultVal
}

func splitList(val string) []string {
	var items []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
