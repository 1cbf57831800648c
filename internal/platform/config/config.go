package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	MongoURI      string
	MongoDatabase string
	Port          string
	IsProduction  bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// ReminderCron is the daily reminder schedule in cron syntax.
	ReminderCron string

	// StoreTimeout bounds every store call; DispatchTimeout bounds each
	// outbound notification dispatch.
	StoreTimeout    time.Duration
	DispatchTimeout time.Duration

	ResendAPIKey string
	EmailFrom    string
}

// LoadConfig loads configuration from environment variables and a .env
// file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGODB_DATABASE", "expenseMaster")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "2h")
	viper.SetDefault("JWT_ISSUER", "expense-master-app")
	viper.SetDefault("REMINDER_CRON", "0 8 * * *")
	viper.SetDefault("STORE_TIMEOUT", "10s")
	viper.SetDefault("DISPATCH_TIMEOUT", "15s")
	viper.SetDefault("RESEND_API_KEY", "")
	viper.SetDefault("EMAIL_FROM", "reminders@expensemaster.app")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.MongoURI = viper.GetString("MONGODB_URI")
	cfg.MongoDatabase = viper.GetString("MONGODB_DATABASE")
	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTExpiryDuration = parseDurationOr("JWT_EXPIRY_DURATION", 2*time.Hour)
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.ReminderCron = viper.GetString("REMINDER_CRON")
	cfg.StoreTimeout = parseDurationOr("STORE_TIMEOUT", 10*time.Second)
	cfg.DispatchTimeout = parseDurationOr("DISPATCH_TIMEOUT", 15*time.Second)

	cfg.ResendAPIKey = viper.GetString("RESEND_API_KEY")
	cfg.EmailFrom = viper.GetString("EMAIL_FROM")
	if cfg.ResendAPIKey == "" {
		log.Println("Warning: RESEND_API_KEY not set. Event reminders will only be logged, not sent.")
	}

	return cfg, nil
}

func parseDurationOr(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		return fallback
	}
	return d
}
