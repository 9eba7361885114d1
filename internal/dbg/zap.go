// Package dbg builds the zap logger used by the campaign binaries.
package dbg

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewCampaignLogger returns the logger for one verification campaign. A
// tracing campaign gets a console logger with the debug level enabled so
// every library call shows up; otherwise output is JSON at info level
// for unattended runs.
func NewCampaignLogger(tracing bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if tracing {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableCaller = true

	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
