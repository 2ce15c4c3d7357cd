package env

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"ohppos.io/entities"
	"ohppos.io/infrastructure/logger"
)

const (
	MemoryCounterStore = "memory"
	RedisCounterStore  = "redis"

	DEFAULT_RATE_LIMIT_PER_MINUTE  = 60
	DEFAULT_SIMULATED_CARD_NUMBER  = "4242424242424242"
	DEFAULT_HEALTH_RATE_PER_SECOND = 5
	DEFAULT_PORT                   = "4242"
)

var ErrMissingSecretKey = errors.New("missing processor secret key for the active mode")

// Config is resolved once at start and handed to every component that needs it.
// Nothing reads the environment after Resolve returns.
type Config struct {
	Mode        entities.OperatingMode
	Credentials entities.Credentials

	APIKey  string
	APIKeys []string

	RateLimitPerMinute int
	RateLimitStore     string
	RedisAddr          string
	RedisPassword      string

	SimulateCard        bool
	SimulatedCardNumber string

	CORSAllowedOrigins  []string
	HealthRatePerSecond float64
	Port                string
	GinMode             string
}

// LoadEnv pulls a local .env file into the process environment when one exists.
// Variables already set in the environment win over the file.
func LoadEnv() error {
	return godotenv.Load()
}

func newSource() *viper.Viper {
	vip := viper.New()
	vip.AutomaticEnv()
	vip.SetDefault("POS_MODE", string(entities.TestMode))
	vip.SetDefault("RATE_LIMIT_PER_MINUTE", DEFAULT_RATE_LIMIT_PER_MINUTE)
	vip.SetDefault("RATE_LIMIT_STORE", MemoryCounterStore)
	vip.SetDefault("SIMULATE_CARD", false)
	vip.SetDefault("SIMULATED_CARD_NUMBER", DEFAULT_SIMULATED_CARD_NUMBER)
	vip.SetDefault("HEALTH_RATE_PER_SECOND", DEFAULT_HEALTH_RATE_PER_SECOND)
	vip.SetDefault("PORT", DEFAULT_PORT)
	vip.SetDefault("GIN_MODE", "release")
	return vip
}

// Resolve reads the process environment into a Config. It fails when the mode is not
// recognised or when the secret key for the selected mode is absent.
func Resolve() (*Config, error) {
	vip := newSource()

	mode, err := entities.ParseOperatingMode(vip.GetString("POS_MODE"))
	if err != nil {
		return nil, err
	}

	var credentials entities.Credentials
	if mode.IsProduction() {
		credentials = entities.Credentials{
			SecretKey:  strings.TrimSpace(vip.GetString("STRIPE_SECRET_KEY_LIVE")),
			LocationID: strings.TrimSpace(vip.GetString("STRIPE_LOCATION_ID_LIVE")),
			TerminalID: strings.TrimSpace(vip.GetString("STRIPE_TERMINAL_READER_ID")),
		}
	} else {
		credentials = entities.Credentials{
			SecretKey:  strings.TrimSpace(vip.GetString("STRIPE_SECRET_KEY_TEST")),
			LocationID: strings.TrimSpace(vip.GetString("STRIPE_LOCATION_ID_TEST")),
		}
	}
	if credentials.SecretKey == "" {
		return nil, fmt.Errorf("%w (mode=%s)", ErrMissingSecretKey, mode)
	}

	rateLimit := vip.GetInt("RATE_LIMIT_PER_MINUTE")
	if rateLimit < 1 {
		rateLimit = DEFAULT_RATE_LIMIT_PER_MINUTE
	}

	store := strings.ToLower(strings.TrimSpace(vip.GetString("RATE_LIMIT_STORE")))
	switch store {
	case MemoryCounterStore, RedisCounterStore:
	default:
		return nil, fmt.Errorf("unsupported rate limit store %q", store)
	}
	if store == RedisCounterStore && vip.GetString("REDIS_ADDR") == "" {
		return nil, errors.New("REDIS_ADDR is required when RATE_LIMIT_STORE=redis")
	}

	healthRate := vip.GetFloat64("HEALTH_RATE_PER_SECOND")
	if healthRate <= 0 {
		healthRate = DEFAULT_HEALTH_RATE_PER_SECOND
	}

	ginMode := strings.ToLower(strings.TrimSpace(vip.GetString("GIN_MODE")))
	switch ginMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("invalid gin mode used - %s", ginMode)
	}

	cardNumber := strings.TrimSpace(vip.GetString("SIMULATED_CARD_NUMBER"))
	if cardNumber == "" {
		cardNumber = DEFAULT_SIMULATED_CARD_NUMBER
	}

	return &Config{
		Mode:                mode,
		Credentials:         credentials,
		APIKey:              strings.TrimSpace(vip.GetString("POS_API_KEY")),
		APIKeys:             ParseAPIKeys(vip.GetString("POS_API_KEYS")),
		RateLimitPerMinute:  rateLimit,
		RateLimitStore:      store,
		RedisAddr:           vip.GetString("REDIS_ADDR"),
		RedisPassword:       vip.GetString("REDIS_PASSWORD"),
		SimulateCard:        vip.GetBool("SIMULATE_CARD"),
		SimulatedCardNumber: cardNumber,
		CORSAllowedOrigins:  splitList(vip.GetString("CORS_ALLOWED_ORIGINS")),
		HealthRatePerSecond: healthRate,
		Port:                vip.GetString("PORT"),
		GinMode:             ginMode,
	}, nil
}

// ParseAPIKeys splits a comma, whitespace or newline delimited list of secrets.
func ParseAPIKeys(raw string) []string {
	return splitList(raw)
}

func splitList(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// LogSummary reports the resolved configuration. Secrets are reduced to their class or count.
func (c *Config) LogSummary() {
	logger.Info("configuration resolved",
		logger.LoggerOptions{Key: "mode", Data: c.Mode},
		logger.LoggerOptions{Key: "keyClass", Data: c.Credentials.KeyClass()},
		logger.LoggerOptions{Key: "location", Data: c.Credentials.LocationID},
		logger.LoggerOptions{Key: "readerConfigured", Data: c.Credentials.TerminalID != ""},
		logger.LoggerOptions{Key: "apiKeys", Data: c.APIKeyCount()},
		logger.LoggerOptions{Key: "rateLimitPerMinute", Data: c.RateLimitPerMinute},
		logger.LoggerOptions{Key: "rateLimitStore", Data: c.RateLimitStore},
		logger.LoggerOptions{Key: "simulateCard", Data: c.SimulateCard && !c.Mode.IsProduction()},
	)
	if c.APIKeyCount() == 0 {
		logger.Warning("no POS API keys configured, every gated request will be refused")
	}
}

func (c *Config) APIKeyCount() int {
	count := len(c.APIKeys)
	if c.APIKey != "" {
		count++
	}
	return count
}
