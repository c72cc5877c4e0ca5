// Package logging builds the zap loggers used by the listgen CLI.
package logging

import (
	"fmt"
	"io"
	"strings"

	zaplogfmt "github.com/sykesm/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
	FormatLogfmt  = "logfmt"
)

// New builds a sugared logger writing to w at level in the given format.
func New(w io.Writer, level, format string) (*zap.SugaredLogger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	encoder, err := newEncoder(format)
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), lvl)
	return zap.New(core).Named("listgen").Sugar(), nil
}

// ParseLevel accepts zap level names; empty means info.
func ParseLevel(level string) (zapcore.Level, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return zapcore.InfoLevel, nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("logging: invalid level %q: %w", level, err)
	}
	return lvl, nil
}

func newEncoder(format string) (zapcore.Encoder, error) {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatConsole:
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(cfg), nil
	case FormatJSON:
		return zapcore.NewJSONEncoder(cfg), nil
	case FormatLogfmt:
		return zaplogfmt.NewEncoder(cfg), nil
	default:
		return nil, fmt.Errorf("logging: unknown format %q", format)
	}
}
