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
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Exchange rate source
	ExchangeRateAPIURL  string
	ExchangeRateTimeout time.Duration
	BaseCurrency        string

	// Kafka transaction ingestion
	KafkaBrokers []string
	KafkaTopic   string
	KafkaGroupID string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "ebanking-portal")
	viper.SetDefault("EXCHANGE_RATE_API_URL", "https://api.exchangerate-api.com/v4/latest")
	viper.SetDefault("EXCHANGE_RATE_TIMEOUT", "5s")
	viper.SetDefault("BASE_CURRENCY", "GBP")
	viper.SetDefault("KAFKA_BROKERS", "localhost:9092")
	viper.SetDefault("KAFKA_TOPIC", "transactions")
	viper.SetDefault("KAFKA_GROUP_ID", "transaction-group")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.ExchangeRateAPIURL = viper.GetString("EXCHANGE_RATE_API_URL")

	rateTimeoutStr := viper.GetString("EXCHANGE_RATE_TIMEOUT")
	rateTimeout, err := time.ParseDuration(rateTimeoutStr)
	if err != nil || rateTimeout <= 0 {
		rateTimeout = 5 * time.Second
		log.Printf("Warning: Invalid value for EXCHANGE_RATE_TIMEOUT ('%s'). Defaulting to %s.\n", rateTimeoutStr, rateTimeout.String())
	}
	cfg.ExchangeRateTimeout = rateTimeout

	cfg.BaseCurrency = viper.GetString("BASE_CURRENCY")

	cfg.KafkaBrokers = viper.GetStringSlice("KAFKA_BROKERS")
	cfg.KafkaTopic = viper.GetString("KAFKA_TOPIC")
	cfg.KafkaGroupID = viper.GetString("KAFKA_GROUP_ID")

	return cfg, nil
}
