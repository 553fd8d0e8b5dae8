// Package main is the entry point for the eCFR sync service.
package main

import (
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ttbdata/ecfr-sync/cmd/ecfr-sync/app"
	"github.com/ttbdata/ecfr-sync/internal/config"
)

// getLogLevel parses the ECFR_LOG_LEVEL environment variable.
// Defaults to info if unset or invalid.
func getLogLevel() zapcore.Level {
	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	levelStr := v.GetString("LOG_LEVEL")
	if levelStr == "" {
		levelStr = os.Getenv("LOG_LEVEL")
	}

	switch strings.ToLower(levelStr) {
	case "debug":
		return zapcore.DebugLevel
	case "info", "":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func main() {
	// Structured JSON logging on stderr keeps stdout clean for commands
	// that output data (e.g. version --format json).
	logCfg := zap.NewProductionConfig()
	logCfg.Level = zap.NewAtomicLevelAt(getLogLevel())
	logCfg.OutputPaths = []string{"stderr"}

	logger, err := logCfg.Build()
	if err != nil {
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := app.NewRootCmd(logger).Execute(); err != nil {
		os.Exit(1)
	}
}
