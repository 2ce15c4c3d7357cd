package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger starts as a no-op so packages can log before InitializeLogger runs (tests mostly).
var Logger = zap.NewNop()

// InitializeLogger builds the process logger. release selects the JSON production encoder.
func InitializeLogger(release bool) {
	var config zap.Config
	if release {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	built, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	Logger = built
}

func Sync() {
	_ = Logger.Sync()
}
