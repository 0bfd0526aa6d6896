package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	CORSOrigin   string
	IsProduction bool

	// Token config: separate secrets and lifetimes for the two token kinds.
	AccessTokenSecret          string
	AccessTokenExpiryDuration  time.Duration
	RefreshTokenSecret         string
	RefreshTokenExpiryDuration time.Duration
	JWTIssuer                  string

	// Media store (S3-compatible) config.
	S3Endpoint      string
	S3Region        string
	S3AccessKey     string
	S3SecretKey     string
	S3Bucket        string
	S3PublicBaseURL string

	PosthogAPIKey string
}

// LoadConfig loads configuration from environment variables and a .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("CORS_ORIGIN", "*")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ACCESS_TOKEN_SECRET", "insecure-access-secret-change-me")
	viper.SetDefault("ACCESS_TOKEN_EXPIRY_DURATION", "1h")
	viper.SetDefault("REFRESH_TOKEN_SECRET", "insecure-refresh-secret-change-me")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "240h")
	viper.SetDefault("JWT_ISSUER", "clipstream-backend")
	viper.SetDefault("S3_ENDPOINT", "")
	viper.SetDefault("S3_REGION", "us-east-1")
	viper.SetDefault("S3_ACCESS_KEY", "")
	viper.SetDefault("S3_SECRET_KEY", "")
	viper.SetDefault("S3_BUCKET", "clipstream-media")
	viper.SetDefault("S3_PUBLIC_BASE_URL", "")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: DATABASE_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.CORSOrigin = viper.GetString("CORS_ORIGIN")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.AccessTokenSecret = viper.GetString("ACCESS_TOKEN_SECRET")
	if cfg.AccessTokenSecret == "insecure-access-secret-change-me" {
		log.Println("Warning: ACCESS_TOKEN_SECRET not set. Using default insecure secret. THIS IS NOT FOR PRODUCTION.")
	}

	accessExpiryStr := viper.GetString("ACCESS_TOKEN_EXPIRY_DURATION")
	accessExpiry, err := time.ParseDuration(accessExpiryStr)
	if err != nil {
		accessExpiry = time.Hour
		log.Printf("Warning: Invalid value for ACCESS_TOKEN_EXPIRY_DURATION (%q). Defaulting to %s.\n", accessExpiryStr, accessExpiry)
	}
	cfg.AccessTokenExpiryDuration = accessExpiry

	cfg.RefreshTokenSecret = viper.GetString("REFRESH_TOKEN_SECRET")
	if cfg.RefreshTokenSecret == "insecure-refresh-secret-change-me" {
		log.Println("Warning: REFRESH_TOKEN_SECRET not set. Using default insecure secret. THIS IS NOT FOR PRODUCTION.")
	}

	refreshExpiryStr := viper.GetString("REFRESH_TOKEN_EXPIRY_DURATION")
	refreshExpiry, err := time.ParseDuration(refreshExpiryStr)
	if err != nil {
		refreshExpiry = time.Hour * 24 * 10
		log.Printf("Warning: Invalid value for REFRESH_TOKEN_EXPIRY_DURATION (%q). Defaulting to %s.\n", refreshExpiryStr, refreshExpiry)
	}
	cfg.RefreshTokenExpiryDuration = refreshExpiry

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.S3Endpoint = viper.GetString("S3_ENDPOINT")
	cfg.S3Region = viper.GetString("S3_REGION")
	cfg.S3AccessKey = viper.GetString("S3_ACCESS_KEY")
	cfg.S3SecretKey = viper.GetString("S3_SECRET_KEY")
	cfg.S3Bucket = viper.GetString("S3_BUCKET")
	cfg.S3PublicBaseURL = viper.GetString("S3_PUBLIC_BASE_URL")
	if cfg.S3AccessKey == "" || cfg.S3SecretKey == "" {
		log.Println("Warning: S3 credentials not set. Media uploads will fail.")
	}

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}
