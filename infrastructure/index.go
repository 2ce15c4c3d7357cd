package infrastructure

import (
	"ohppos.io/infrastructure/env"
	"ohppos.io/infrastructure/logger"
	startup "ohppos.io/infrastructure/startUp"
)

func StartServer(config *env.Config) {
	services := startup.StartServices(config)
	defer startup.CleanUpServices(services)

	var server serverInterface = &ginServer{
		config:    config,
		processor: services.Processor,
		store:     services.CounterStore,
	}
	if err := server.Start(); err != nil {
		logger.Error("server stopped with error", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
	}
}
