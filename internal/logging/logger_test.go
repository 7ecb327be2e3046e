//-------------------------------------------------------------------------
//
// pgEdge Pizza Analytics
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package logging

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestInitLevel(t *testing.T) {
	defer Init(Config{Level: "info", Pretty: true})

	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		// Unknown levels fall back to info.
		{"verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		Init(Config{Level: tt.level})
		if got := Logger.GetLevel(); got != tt.want {
			t.Errorf("Init(%q): level = %s, want %s", tt.level, got, tt.want)
		}
	}
}
