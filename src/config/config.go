package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Port        string
	DatabaseURL string

	// Hugging Face inference settings. An empty HFAPIKey is valid: the
	// classifier then runs on local fallback rules only.
	HFAPIKey string
	HFModel  string
	HFAPIURL string

	// Empty JWTSecret disables auth; requests then carry the uid in the body.
	JWTSecret      string
	AllowedOrigins []string

	LogLevel  string
	LogFormat string
}

func Load() Config {
	// Load .env file if present
	_ = godotenv.Load()

	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		HFAPIKey:       getEnv("HF_API_KEY", ""),
		HFModel:        getEnv("HF_MODEL", "facebook/bart-large-mnli"),
		HFAPIURL:       getEnv("HF_API_URL", ""),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	if cfg.HFAPIKey == "" {
		log.Warn("HF_API_KEY is not set, classification will use fallback rules only")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
