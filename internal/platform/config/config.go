package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	// Bearer tokens are issued elsewhere; this service only verifies them.
	JWTSecret string
	JWTIssuer string

	RateLimit          string   // ulule/limiter formatted rate, e.g. "100-M"
	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	// RulesFile optionally points at a YAML rule table; empty uses the built-in table.
	RulesFile string `mapstructure:"RULES_FILE"`

	RedFlag RedFlagConfig
}

// RedFlagConfig holds the amount limits used by the red-flag scan.
type RedFlagConfig struct {
	LargeCash         decimal.Decimal
	CashCeiling       decimal.Decimal
	RoundNumberFloor  decimal.Decimal
	MissingInvoice    decimal.Decimal
	OneTimeVendor     decimal.Decimal
	MissingGSTIN      decimal.Decimal
	MinSequenceLength int
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
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "eagleeye")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RULES_FILE", "")
	viper.SetDefault("REDFLAG_LARGE_CASH", "10000")
	viper.SetDefault("REDFLAG_CASH_CEILING", "200000")
	viper.SetDefault("REDFLAG_ROUND_NUMBER_FLOOR", "50000")
	viper.SetDefault("REDFLAG_MISSING_INVOICE", "50000")
	viper.SetDefault("REDFLAG_ONE_TIME_VENDOR", "50000")
	viper.SetDefault("REDFLAG_MISSING_GSTIN", "250000")
	viper.SetDefault("REDFLAG_MIN_SEQUENCE_LENGTH", 3)

	// Environment variables override .env values, which override the defaults above.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	jwtSecret := viper.GetString("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtIssuer := viper.GetString("JWT_ISSUER")
	if jwtIssuer == "" {
		jwtIssuer = "eagleeye"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", jwtIssuer)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.JWTSecret = jwtSecret
	cfg.JWTIssuer = jwtIssuer
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.RulesFile = viper.GetString("RULES_FILE")

	cfg.RedFlag = RedFlagConfig{
		LargeCash:         decimalSetting("REDFLAG_LARGE_CASH", 10000),
		CashCeiling:       decimalSetting("REDFLAG_CASH_CEILING", 200000),
		RoundNumberFloor:  decimalSetting("REDFLAG_ROUND_NUMBER_FLOOR", 50000),
		MissingInvoice:    decimalSetting("REDFLAG_MISSING_INVOICE", 50000),
		OneTimeVendor:     decimalSetting("REDFLAG_ONE_TIME_VENDOR", 50000),
		MissingGSTIN:      decimalSetting("REDFLAG_MISSING_GSTIN", 250000),
		MinSequenceLength: viper.GetInt("REDFLAG_MIN_SEQUENCE_LENGTH"),
	}
	if cfg.RedFlag.MinSequenceLength < 2 {
		log.Printf("Warning: REDFLAG_MIN_SEQUENCE_LENGTH must be at least 2. Defaulting to 3.\n")
		cfg.RedFlag.MinSequenceLength = 3
	}

	return cfg, nil
}

// decimalSetting reads an amount, falling back to def when unset or malformed.
func decimalSetting(key string, def int64) decimal.Decimal {
	raw := strings.TrimSpace(viper.GetString(key))
	if raw == "" {
		return decimal.NewFromInt(def)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %d.\n", key, raw, def)
		return decimal.NewFromInt(def)
	}
	return d
}

func splitList(raw string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
