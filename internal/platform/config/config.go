package config

import (
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultPageBodyHeight = 1000

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	DatabaseURL   string
	RunMigrations bool
	LogLevel      slog.Level

	// Supabase issues the session JWTs that guard /api/v1.
	SupabaseURL       string
	SupabaseJWTSecret string

	// Google OAuth client used for code exchange and token refresh.
	GoogleClientID        string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret    string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL     string `mapstructure:"GOOGLE_REDIRECT_URL"`
	GoogleTokenRefreshURL string `mapstructure:"GOOGLE_TOKEN_REFRESH_URL"`
	GoogleAPITimeout      time.Duration
	TokenEncryptionKey    string

	FrontendBaseURL string `mapstructure:"FRONTEND_BASE_URL"`
	RateLimit       string
	PosthogAPIKey   string
	PageBodyHeight  int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SUPABASE_URL", "")
	viper.SetDefault("SUPABASE_JWT_SECRET", "")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "postmessage")
	viper.SetDefault("GOOGLE_TOKEN_REFRESH_URL", "")
	viper.SetDefault("GOOGLE_API_TIMEOUT", "30s")
	viper.SetDefault("TOKEN_ENCRYPTION_KEY", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:5173")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("PAGE_BODY_HEIGHT", defaultPageBodyHeight)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RunMigrations = viper.GetBool("RUN_MIGRATIONS")

	cfg.DatabaseURL = viper.GetString("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: DATABASE_URL environment variable not set.")
	}

	cfg.LogLevel = parseLogLevel(viper.GetString("LOG_LEVEL"))

	cfg.SupabaseURL = viper.GetString("SUPABASE_URL")
	cfg.SupabaseJWTSecret = viper.GetString("SUPABASE_JWT_SECRET")
	if cfg.SupabaseJWTSecret == "" {
		log.Println("Warning: SUPABASE_JWT_SECRET not set. Every authenticated request will be rejected.")
	}

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	cfg.GoogleTokenRefreshURL = viper.GetString("GOOGLE_TOKEN_REFRESH_URL")

	// Log warnings for missing critical OAuth ENV variables
	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google OAuth will not function.")
	}
	if cfg.GoogleClientSecret == "" && cfg.GoogleTokenRefreshURL == "" {
		log.Println("Warning: neither GOOGLE_CLIENT_SECRET nor GOOGLE_TOKEN_REFRESH_URL set. Google token refresh will not function.")
	}

	timeoutStr := viper.GetString("GOOGLE_API_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 30 * time.Second
		log.Printf("Warning: Invalid value for GOOGLE_API_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout.String())
	}
	cfg.GoogleAPITimeout = timeout

	cfg.TokenEncryptionKey = viper.GetString("TOKEN_ENCRYPTION_KEY")
	if cfg.TokenEncryptionKey == "" {
		log.Println("Warning: TOKEN_ENCRYPTION_KEY not set. Google tokens are stored unencrypted.")
	}

	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	cfg.PageBodyHeight = viper.GetInt("PAGE_BODY_HEIGHT")
	if cfg.PageBodyHeight <= 0 {
		log.Printf("Warning: Invalid value for PAGE_BODY_HEIGHT (%d). Defaulting to %d.\n", cfg.PageBodyHeight, defaultPageBodyHeight)
		cfg.PageBodyHeight = defaultPageBodyHeight
	}

	return cfg, nil
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
