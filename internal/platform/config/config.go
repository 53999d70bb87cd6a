package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultBaseCurrency        = "UAH"
	defaultRateRefreshInterval = time.Hour
	defaultRateStaleAfter      = 6 * time.Hour
	defaultRateFetchTimeout    = 10 * time.Second
	defaultChatTimeout         = 60 * time.Second
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	// Payroll
	BaseCurrency string

	// Exchange rates
	RateSourceURLs      []string
	RateRefreshInterval time.Duration
	RateStaleAfter      time.Duration
	RateFetchTimeout    time.Duration

	// Chat assistant (OpenAI-compatible API)
	ChatAPIURL    string
	ChatAPIKey    string
	ChatModel     string
	ChatTimeout   time.Duration
	ChatRateLimit string

	// HTTP
	CORSAllowedOrigins []string

	// Analytics
	PosthogAPIKey   string
	PosthogEndpoint string
}

// ChatEnabled reports whether the chat assistant has an endpoint and a key.
func (c *Config) ChatEnabled() bool {
	return c.ChatAPIURL != "" && c.ChatAPIKey != ""
}

// UsesDatabase reports whether Postgres repositories should be used instead of in-memory ones.
func (c *Config) UsesDatabase() bool {
	return c.DatabaseURL != ""
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("BASE_CURRENCY", defaultBaseCurrency)
	viper.SetDefault("RATE_SOURCE_URLS", "")
	viper.SetDefault("RATE_REFRESH_INTERVAL", defaultRateRefreshInterval.String())
	viper.SetDefault("RATE_STALE_AFTER", defaultRateStaleAfter.String())
	viper.SetDefault("RATE_FETCH_TIMEOUT", defaultRateFetchTimeout.String())
	viper.SetDefault("CHAT_API_URL", "")
	viper.SetDefault("CHAT_API_KEY", "")
	viper.SetDefault("CHAT_MODEL", "gpt-4o-mini")
	viper.SetDefault("CHAT_TIMEOUT", defaultChatTimeout.String())
	viper.SetDefault("CHAT_RATE_LIMIT", "20-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Using in-memory storage.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	cfg.BaseCurrency = strings.ToUpper(strings.TrimSpace(viper.GetString("BASE_CURRENCY")))
	if cfg.BaseCurrency == "" {
		cfg.BaseCurrency = defaultBaseCurrency
	}

	cfg.RateSourceURLs = splitList(viper.GetString("RATE_SOURCE_URLS"))
	if len(cfg.RateSourceURLs) == 0 {
		log.Println("Warning: RATE_SOURCE_URLS not set. Exchange rates can only be loaded from storage.")
	}
	cfg.RateRefreshInterval = durationOrDefault("RATE_REFRESH_INTERVAL", defaultRateRefreshInterval)
	cfg.RateStaleAfter = durationOrDefault("RATE_STALE_AFTER", defaultRateStaleAfter)
	cfg.RateFetchTimeout = durationOrDefault("RATE_FETCH_TIMEOUT", defaultRateFetchTimeout)

	cfg.ChatAPIURL = strings.TrimRight(viper.GetString("CHAT_API_URL"), "/")
	cfg.ChatAPIKey = viper.GetString("CHAT_API_KEY")
	cfg.ChatModel = viper.GetString("CHAT_MODEL")
	cfg.ChatTimeout = durationOrDefault("CHAT_TIMEOUT", defaultChatTimeout)
	cfg.ChatRateLimit = viper.GetString("CHAT_RATE_LIMIT")
	if !cfg.ChatEnabled() {
		log.Println("Warning: CHAT_API_URL or CHAT_API_KEY not set. Chat assistant is disabled.")
	}

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = viper.GetString("POSTHOG_ENDPOINT")

	return cfg, nil
}

// durationOrDefault parses key as a duration; missing, invalid or non-positive values fall back to def.
func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
