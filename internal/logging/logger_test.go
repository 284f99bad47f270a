package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/faizmokh/dashdo/internal/config"
)

func TestNewHonorsLevel(t *testing.T) {
	logger, err := New(config.LoggerConfig{Level: "debug", Encoding: "json"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("debug level should be enabled")
	}

	quiet, err := New(config.LoggerConfig{Level: "error", Encoding: "console"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if quiet.Core().Enabled(zapcore.WarnLevel) {
		t.Fatalf("warn level should be disabled at error")
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(config.LoggerConfig{Level: "chatty", Encoding: "console"}); err == nil {
		t.Fatalf("New expected error for unknown level")
	}
}
