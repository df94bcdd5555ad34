package logging

import (
	"testing"

	"github.com/charmbracelet/log"
)

// TestParseLevel verifies level parsing including the quiet default
func TestParseLevel(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want log.Level
	}{
		{"debug", "debug", log.DebugLevel},
		{"info", "info", log.InfoLevel},
		{"warn", "warn", log.WarnLevel},
		{"error", "error", log.ErrorLevel},
		{"mixed_case", " Debug ", log.DebugLevel},
		{"empty_defaults_to_warn", "", log.WarnLevel},
		{"garbage_defaults_to_warn", "loud", log.WarnLevel},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseLevel(tc.in); got != tc.want {
				t.Errorf("Expected level %v for %q, got %v", tc.want, tc.in, got)
			}
		})
	}
}

// TestNew verifies component tagging and env level pickup
func TestNew(t *testing.T) {
	t.Setenv(EnvLevel, "debug")

	logger := New("engine")
	if logger == nil {
		t.Fatal("Expected non-nil logger")
	}
	if got := logger.GetPrefix(); got != "engine" {
		t.Errorf("Expected prefix %q, got %q", "engine", got)
	}
	if got := logger.GetLevel(); got != log.DebugLevel {
		t.Errorf("Expected debug level, got %v", got)
	}
}
