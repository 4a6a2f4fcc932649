package main

import (
	"context"
	"log/slog"
	"testing"
)

func TestSetupLoggerLevels(t *testing.T) {
	tests := []struct {
		env   string
		debug bool
	}{
		{"dev", true},
		{"staging", true},
		{"prod", false},
		{"unknown", true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			log := setupLogger(tt.env)
			if got := log.Enabled(context.Background(), slog.LevelDebug); got != tt.debug {
				t.Errorf("debug enabled = %v, want %v", got, tt.debug)
			}
			if !log.Enabled(context.Background(), slog.LevelInfo) {
				t.Error("info disabled")
			}
		})
	}
}
