package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"navalduel/internal/config"
)

// New builds the operational logger. Battle narration never goes through it.
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	zc := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(cfg.Level)),
		Encoding:         encoding(cfg.Format),
		EncoderConfig:    encoderConfig(),
		OutputPaths:      []string{cfg.Output},
		ErrorOutputPaths: []string{"stderr"},
	}
	log, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log, nil
}

// NewWithWriter logs to w instead of a named stream.
func NewWithWriter(cfg config.LoggingConfig, w io.Writer) *zap.Logger {
	enc := zapcore.NewConsoleEncoder(encoderConfig())
	if cfg.Format == "json" {
		enc = zapcore.NewJSONEncoder(encoderConfig())
	}
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), ParseLevel(cfg.Level)))
}

// ParseLevel falls back to info for anything it does not know.
func ParseLevel(s string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(s)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

func encoding(format string) string {
	if format == "json" {
		return "json"
	}
	return "console"
}

func encoderConfig() zapcore.EncoderConfig {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "time"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.EncodeDuration = zapcore.StringDurationEncoder
	return ec
}
