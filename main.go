package main

import (
	"ohppos.io/infrastructure"
	"ohppos.io/infrastructure/env"
	"ohppos.io/infrastructure/logger"
)

func main() {
	loadErr := env.LoadEnv()
	config, err := env.Resolve()
	if err != nil {
		logger.InitializeLogger(true)
		logger.Fatal("refusing to start with invalid configuration", logger.LoggerOptions{
			Key:  "error",
			Data: err.Error(),
		})
	}
	logger.InitializeLogger(config.GinMode == "release")
	if loadErr != nil {
		logger.Info("no .env file loaded, using process environment")
	}
	config.LogSummary()
	infrastructure.StartServer(config)
}
