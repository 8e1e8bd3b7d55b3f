package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/danieltechTI/ReiBurguer/internal/database"

	"go.uber.org/zap"
)

type Config struct {
	Port string
	DB   DB
	JWT  JWT
	Cart Cart

	Kafka    Kafka
	Shipping Shipping

	// Destination number for the WhatsApp confirmation deep link.
	WhatsAppNumber string
}

type DB struct {
	database.Config
}

type JWT struct {
	Secret    string
	Issuer    string
	Audience  string
	AccessExp time.Duration
}

// Cart selects the cart store backend: "memory" (default) or "redis".
type Cart struct {
	Backend    string
	RedisAddr  string
	RedisPass  string
	RedisDB    int
	TTLSeconds int
}

type Kafka struct {
	Enabled bool
	Brokers []string
	Topic   string
}

type Shipping struct {
	APIURL  string
	Timeout time.Duration
}

func Load(log *zap.Logger) *Config {
	return &Config{
		Port: getEnv("APP_PORT", log),
		DB: DB{
			Config: database.Config{
				Host:     getEnv("DB_HOST", log),
				Port:     getEnv("DB_PORT", log),
				User:     getEnv("DB_USER", log),
				Password: getEnv("DB_PASSWORD", log),
				Name:     getEnv("DB_NAME", log),
				SSLMode:  getEnv("DB_SSLMODE", log),
			},
		},
		JWT: JWT{
			Secret:    getEnv("JWT_SECRET", log),
			Issuer:    getEnvDefault("JWT_ISSUER", "reiburguer"),
			Audience:  getEnvDefault("JWT_AUDIENCE", "reiburguer-api"),
			AccessExp: parseDurationDefault(os.Getenv("ACCESS_EXP"), 24*time.Hour),
		},
		Cart: Cart{
			Backend:    getEnvDefault("CART_BACKEND", "memory"),
			RedisAddr:  os.Getenv("REDIS_ADDR"),
			RedisPass:  os.Getenv("REDIS_PASSWORD"),
			RedisDB:    atoiDefault(os.Getenv("REDIS_DB"), 0),
			TTLSeconds: atoiDefault(os.Getenv("CART_TTL_SECONDS"), 86400),
		},
		Kafka: Kafka{
			Enabled: os.Getenv("KAFKA_ENABLED") == "true",
			Brokers: splitAndTrim(os.Getenv("KAFKA_BROKERS")),
			Topic:   getEnvDefault("KAFKA_TOPIC_ORDERS", "storefront.orders"),
		},
		Shipping: Shipping{
			APIURL:  os.Getenv("SHIPPING_API_URL"),
			Timeout: parseDurationDefault(os.Getenv("SHIPPING_API_TIMEOUT"), 3*time.Second),
		},
		WhatsAppNumber: getEnvDefault("WHATSAPP_NUMBER", "5533987062406"),
	}
}

func getEnv(key string, log *zap.Logger) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	log.Error("required environment variable is not set", zap.String("key", key))
	panic("missing required environment variable: " + key)
}

func getEnvDefault(key, def string) string {
	if val, exists := os.LookupEnv(key); exists && val != "" {
		return val
	}
	return def
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func parseDurationDefault(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := []string{}
	for _, p := range strings.Split(s, ",") {
		pt := strings.TrimSpace(p)
		if pt != "" {
			parts = append(parts, pt)
		}
	}
	return parts
}
