package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	RedisURL     string
	Port         string
	IsProduction bool

	JWTSecret string
	JWTIssuer string
	// Sessions from a password login are shorter lived than OTP or OAuth ones.
	JWTExpiryDuration           time.Duration
	OtpTokenExpiryDuration      time.Duration
	OtpRememberMeExpiryDuration time.Duration
	OAuthTokenExpiryDuration    time.Duration

	// One-time codes
	OtpLoginExpiry         time.Duration
	OtpPasswordResetExpiry time.Duration

	// Outbound email
	ResendAPIKey string
	FromEmail    string

	// External OAuth Providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`
	OAuthStateTTL      time.Duration

	FrontendBaseURL    string `mapstructure:"FRONTEND_BASE_URL"`
	CORSAllowedOrigins []string

	PosthogAPIKey string

	// Points awarded to a finder when their claim is accepted.
	ClaimRewardPoints int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "foundly-backend")
	viper.SetDefault("JWT_EXPIRY_DURATION", "168h")
	viper.SetDefault("OTP_TOKEN_EXPIRY_DURATION", "360h")
	viper.SetDefault("OTP_REMEMBER_ME_EXPIRY_DURATION", "720h")
	viper.SetDefault("OAUTH_TOKEN_EXPIRY_DURATION", "720h")
	viper.SetDefault("OTP_LOGIN_EXPIRY", "5m")
	viper.SetDefault("OTP_PASSWORD_RESET_EXPIRY", "10m")
	viper.SetDefault("RESEND_API_KEY", "")
	viper.SetDefault("FROM_EMAIL", "Foundly <noreply@foundly.app>")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("OAUTH_STATE_TTL", "5m")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("CLAIM_REWARD_POINTS", 10)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	cfg.RedisURL = viper.GetString("REDIS_URL")
	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.JWTExpiryDuration = parseDurationOr("JWT_EXPIRY_DURATION", 168*time.Hour)
	cfg.OtpTokenExpiryDuration = parseDurationOr("OTP_TOKEN_EXPIRY_DURATION", 360*time.Hour)
	cfg.OtpRememberMeExpiryDuration = parseDurationOr("OTP_REMEMBER_ME_EXPIRY_DURATION", 720*time.Hour)
	cfg.OAuthTokenExpiryDuration = parseDurationOr("OAUTH_TOKEN_EXPIRY_DURATION", 720*time.Hour)
	cfg.OtpLoginExpiry = parseDurationOr("OTP_LOGIN_EXPIRY", 5*time.Minute)
	cfg.OtpPasswordResetExpiry = parseDurationOr("OTP_PASSWORD_RESET_EXPIRY", 10*time.Minute)
	cfg.OAuthStateTTL = parseDurationOr("OAUTH_STATE_TTL", 5*time.Minute)

	cfg.ResendAPIKey = viper.GetString("RESEND_API_KEY")
	if cfg.ResendAPIKey == "" {
		log.Println("Warning: RESEND_API_KEY not set. Outbound email will be logged, not sent.")
	}
	cfg.FromEmail = viper.GetString("FROM_EMAIL")

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" || cfg.GoogleRedirectURL == "" {
		log.Println("Warning: Google OAuth environment variables not fully set. Google login will not function.")
	}

	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.ClaimRewardPoints = viper.GetInt("CLAIM_REWARD_POINTS")

	return cfg, nil
}

func parseDurationOr(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}
