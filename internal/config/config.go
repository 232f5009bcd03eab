// Package config loads runtime settings from the environment (and .env through
// godotenv/autoload in main).
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Port    string
	GinMode string

	JWTSecret string
	JWTTTL    time.Duration

	StorageDriver string
	DatabaseDSN   string

	AWSRegion            string
	AWSAccessKeyID       string
	AWSSecretAccessKey   string
	AWSSessionToken      string
	DynamoDBEndpoint     string
	UsersTable           string
	QuotesTable          string
	PaymentsTable        string
	ContactMessagesTable string

	PaymentConfirmationDelay time.Duration
	PaymentGatewayMock       bool
	MercadoPagoAccessToken   string
	MercadoPagoTestPayer     string

	RedisAddr          string
	RedisPassword      string
	ClientURLs         []string
	RateLimitPerMinute int
}

func Load() (Config, error) {
	cfg := Config{
		Port:                     getenvDefault("PORT", "8080"),
		GinMode:                  getenvDefault("GIN_MODE", "release"),
		JWTSecret:                os.Getenv("JWT_SECRET"),
		JWTTTL:                   getenvDuration("JWT_TTL", 7*24*time.Hour),
		StorageDriver:            strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageDynamoDB)),
		DatabaseDSN:              getenvDefault("DATABASE_DSN", "meshguard.db"),
		AWSRegion:                getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:           os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey:       os.Getenv("AWS_SECRET_ACCESS_KEY"),
		AWSSessionToken:          os.Getenv("AWS_SESSION_TOKEN"),
		DynamoDBEndpoint:         os.Getenv("DYNAMODB_ENDPOINT"),
		UsersTable:               getenvDefault("USERS_TABLE", "users"),
		QuotesTable:              getenvDefault("QUOTES_TABLE", "quotes"),
		PaymentsTable:            getenvDefault("PAYMENTS_TABLE", "payments"),
		ContactMessagesTable:     getenvDefault("CONTACT_MESSAGES_TABLE", "contact_messages"),
		PaymentConfirmationDelay: getenvDuration("PAYMENT_CONFIRMATION_DELAY", 3*time.Second),
		PaymentGatewayMock:       isMockEnabled(),
		MercadoPagoAccessToken:   os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		MercadoPagoTestPayer:     os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"),
		RedisAddr:                os.Getenv("REDIS_ADDR"),
		RedisPassword:            os.Getenv("REDIS_PASSWORD"),
		ClientURLs:               splitList(getenvDefault("CLIENT_URL", "http://localhost:3000")),
		RateLimitPerMinute:       getenvInt("RATE_LIMIT_PER_MINUTE", 20),
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.JWTSecret) == "" {
		problems = append(problems, "JWT_SECRET is required")
	}
	switch c.StorageDriver {
	case StorageDynamoDB, StorageSQLite, StoragePostgres:
	default:
		problems = append(problems, fmt.Sprintf("STORAGE_DRIVER %q is not one of dynamodb|sqlite|postgres", c.StorageDriver))
	}
	if c.StorageDriver == StoragePostgres && strings.TrimSpace(c.DatabaseDSN) == "" {
		problems = append(problems, "DATABASE_DSN is required for postgres")
	}
	if !c.PaymentGatewayMock && strings.TrimSpace(c.MercadoPagoAccessToken) == "" {
		problems = append(problems, "MERCADOPAGO_ACCESS_TOKEN is required when PAYMENT_GATEWAY_MOCK is off")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d >= 0 {
		return d
	}
	// Bare integers are seconds.
	if n, err := strconv.Atoi(v); err == nil && n >= 0 {
		return time.Duration(n) * time.Second
	}
	log.Printf("[config] invalid duration %s=%q, using %s", key, v, def)
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] invalid int %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

// isMockEnabled defaults to the simulated gateway unless PAYMENT_GATEWAY_MOCK
// (or MERCADOPAGO_MOCK) is explicitly switched off.
func isMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return true
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
