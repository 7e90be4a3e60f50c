package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ProfileStaleAfter is the staleness window beyond which a voluntary session
// refresh re-fetches the profile instead of trusting cached data.
var ProfileStaleAfter = 5 * time.Minute

// Server captures process-level configuration.
type Server struct {
	Addr          string
	LogLevel      string
	JWTSigningKey string

	Redis RedisConfig
	Kafka KafkaConfig

	// PostgresURL enables the postgres-backed stores when set; the in-memory
	// stores are used otherwise.
	PostgresURL string
}

// RedisConfig holds connection settings for the shared Redis client.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig holds settings for the Kafka role-change channel.
type KafkaConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("CLUBHUB_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	kafkaTopic := os.Getenv("KAFKA_ROLE_TOPIC")
	if kafkaTopic == "" {
		kafkaTopic = "userRoleChanged"
	}

	var brokers []string
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		brokers = splitAndTrim(v)
	}

	return Server{
		Addr:          addr,
		LogLevel:      os.Getenv("LOG_LEVEL"),
		JWTSigningKey: jwtSigningKey,
		PostgresURL:   os.Getenv("POSTGRES_URL"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Kafka: KafkaConfig{
			Brokers: brokers,
			Topic:   kafkaTopic,
			GroupID: os.Getenv("KAFKA_GROUP_ID"),
		},
	}
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
