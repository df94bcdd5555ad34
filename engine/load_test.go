package engine

import (
	"testing"
	"time"
)

// TestLoadDefaults verifies Load without environment matches the defaults
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Mode != ModeFrequency {
		t.Errorf("Expected mode %q, got %q", ModeFrequency, cfg.Mode)
	}
	if cfg.Floor.ShortMax != 6 {
		t.Errorf("Expected short max 6, got %d", cfg.Floor.ShortMax)
	}
	if cfg.Naming.Timeout != 3*time.Second {
		t.Errorf("Expected 3s naming timeout, got %v", cfg.Naming.Timeout)
	}
	if len(cfg.Overrides.Stems) == 0 {
		t.Error("Expected the default color vocabulary to survive loading")
	}
}

// TestLoadEnvironmentOverrides verifies the env mapping scheme: the first
// part after the prefix selects the section, the rest names the field
func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("COLOR_SENTENCE_MODE", "anchor")
	t.Setenv("COLOR_SENTENCE_FLOOR_SHORT_MAX", "4")
	t.Setenv("COLOR_SENTENCE_FREQUENCY_DENOMINATOR", "letters")
	t.Setenv("COLOR_SENTENCE_NAMING_TIMEOUT", "5s")
	t.Setenv("COLOR_SENTENCE_SPEECH_ENABLED", "true")
	t.Setenv("COLOR_SENTENCE_ANCHOR_SATURATION", "0.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Mode != ModeAnchor {
		t.Errorf("Expected anchor mode, got %q", cfg.Mode)
	}
	if cfg.Floor.ShortMax != 4 {
		t.Errorf("Expected short max 4, got %d", cfg.Floor.ShortMax)
	}
	if cfg.Frequency.Denominator != DenomLetters {
		t.Errorf("Expected letters denominator, got %q", cfg.Frequency.Denominator)
	}
	if cfg.Naming.Timeout != 5*time.Second {
		t.Errorf("Expected 5s naming timeout, got %v", cfg.Naming.Timeout)
	}
	if !cfg.Speech.Enabled {
		t.Error("Expected speech enabled")
	}
	if cfg.Anchor.Saturation != 0.5 {
		t.Errorf("Expected saturation 0.5, got %v", cfg.Anchor.Saturation)
	}
	if cfg.Floor.LongMin != 30 {
		t.Errorf("Expected untouched long min 30, got %d", cfg.Floor.LongMin)
	}
}

// TestLoadRejectsInvalidEnvironment verifies validation guards the load
func TestLoadRejectsInvalidEnvironment(t *testing.T) {
	t.Setenv("COLOR_SENTENCE_MODE", "spiral")
	if _, err := Load(); err == nil {
		t.Fatal("Expected load to fail for an unknown mode")
	}
}

// TestTransformEnvKey verifies the section mapping convention
func TestTransformEnvKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"COLOR_SENTENCE_MODE", "mode"},
		{"COLOR_SENTENCE_FLOOR_SHORT_MAX", "floor.short_max"},
		{"COLOR_SENTENCE_FREQUENCY_R_LO", "frequency.r_lo"},
		{"COLOR_SENTENCE_NAMING_BASE_URL", "naming.base_url"},
		{"COLOR_SENTENCE_", ""},
	}

	for _, tt := range tests {
		if got, _ := transformEnvKey(tt.in, "x"); got != tt.want {
			t.Errorf("Expected %q for %s, got %q", tt.want, tt.in, got)
		}
	}
}
