package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config reads a key from the environment, loading .env once on first use.
func Config(key string) string {
	godotenv.Load(".env")
	return os.Getenv(key)
}

// ConfigOr reads a key and falls back to def when unset.
func ConfigOr(key, def string) string {
	if v := Config(key); v != "" {
		return v
	}
	return def
}
