package startup

import (
	"ohppos.io/infrastructure/env"
	"ohppos.io/infrastructure/logger"
	"ohppos.io/infrastructure/payments"
	payment_types "ohppos.io/infrastructure/payments/types"
	"ohppos.io/infrastructure/ratelimit"
)

type Services struct {
	Processor    payment_types.PaymentProcessor
	CounterStore ratelimit.CounterStore
	redisStore   *ratelimit.RedisStore
}

// Used to start services such as the processor client and the rate limit store.
func StartServices(config *env.Config) *Services {
	services := &Services{
		Processor: payments.InitialisePaymentProcessor(config.Credentials),
	}
	switch config.RateLimitStore {
	case env.RedisCounterStore:
		services.redisStore = ratelimit.NewRedisStore(config.RedisAddr, config.RedisPassword)
		services.CounterStore = services.redisStore
		logger.Info("rate limit counters stored in redis", logger.LoggerOptions{
			Key:  "addr",
			Data: config.RedisAddr,
		})
	default:
		services.CounterStore = ratelimit.NewMemoryStore(ratelimit.DEFAULT_WINDOW)
	}
	return services
}

// Used to clean up after services that have been shutdown.
func CleanUpServices(services *Services) {
	if services.redisStore != nil {
		if err := services.redisStore.Close(); err != nil {
			logger.Warning("error closing redis client", logger.LoggerOptions{
				Key:  "error",
				Data: err,
			})
		}
	}
	logger.Sync()
}
