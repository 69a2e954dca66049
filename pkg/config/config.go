package config

import (
	"os"
	"strconv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPPort int

	// CatalogBaseURL is the remote catalog API root.
	CatalogBaseURL string

	// RedisAddr enables Redis-backed cart storage when set; empty means
	// carts live in process memory only.
	RedisAddr string
}

func Load() Config {
	return Config{
		AppEnv:         getEnv("APP_ENV", "dev"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		HTTPPort:       getEnvInt("HTTP_PORT", 8080),
		CatalogBaseURL: getEnv("CATALOG_BASE_URL", "https://fakestoreapi.com"),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}
