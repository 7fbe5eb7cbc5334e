package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseURL   string
	RedisURL      string
	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int

	JSearchAPIKey  string
	JSearchBaseURL string

	JobCacheTTLMinutes int
	FeedRefreshMinutes int
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisURL:      getEnv("REDIS_URL", "redis://localhost:6379/0"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:     getEnv("JWT_ISSUER", "jobswipe"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60),

		JSearchAPIKey:  os.Getenv("JSEARCH_API_KEY"),
		JSearchBaseURL: getEnv("JSEARCH_BASE_URL", "https://jsearch.p.rapidapi.com"),

		JobCacheTTLMinutes: getEnvInt("JOB_CACHE_TTL_MINUTES", 15),
		FeedRefreshMinutes: getEnvInt("FEED_REFRESH_MINUTES", 30),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
