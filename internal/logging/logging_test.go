// Package logging - Logger setup tests
package logging

import (
	"testing"
)

func TestInitializeJSONDefault(t *testing.T) {
	if err := Initialize(DefaultConfig()); err != nil {
		t.Fatalf("Initialize(default): %v", err)
	}
	if Logger == nil {
		t.Fatal("Logger not set after Initialize")
	}
	if DefaultConfig().Format != "json" {
		t.Errorf("default format = %q, want json", DefaultConfig().Format)
	}
}

func TestInitializeConsoleFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format = "console"
	if err := Initialize(cfg); err != nil {
		t.Fatalf("Initialize(console): %v", err)
	}
	if Logger == nil {
		t.Fatal("Logger not set")
	}
}

func TestInitializeUnknownLevelFallsBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "shouting"
	if err := Initialize(cfg); err != nil {
		t.Fatalf("unknown level must fall back, not fail: %v", err)
	}
	if !Logger.Core().Enabled(0) { // zapcore.InfoLevel
		t.Error("info level not enabled after fallback")
	}
}
