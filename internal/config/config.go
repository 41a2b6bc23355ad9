package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds client runtime configuration.
type Config struct {
	Env       string
	BaseURL   string
	Email     string
	Password  string
	TokenFile string
}

// Load reads environment variables and .env (if present).
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Env:       getEnv("APP_ENV", "development"),
		BaseURL:   getEnv("API_BASE_URL", "https://grace-tailor-backend.vercel.app/api"),
		Email:     os.Getenv("LOGIN_EMAIL"),
		Password:  os.Getenv("LOGIN_PASSWORD"),
		TokenFile: getEnv("TOKEN_FILE", defaultTokenFile()),
	}

	if cfg.BaseURL == "" {
		return cfg, errors.New("API_BASE_URL is required")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".grace-tailor-token"
	}
	return filepath.Join(home, ".grace-tailor", "token")
}
