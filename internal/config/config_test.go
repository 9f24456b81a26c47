package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.ContextTimeout != 30*time.Minute {
		t.Errorf("expected default context timeout 30m, got %s", cfg.ContextTimeout)
	}
	if cfg.GeminiTimeout != 8*time.Second {
		t.Errorf("expected default gemini timeout 8s, got %s", cfg.GeminiTimeout)
	}
	if cfg.NLUMinConfidence != 0.7 {
		t.Errorf("expected default NLU min confidence 0.7, got %f", cfg.NLUMinConfidence)
	}
	if cfg.GeminiEnabled {
		t.Error("gemini fallback should be disabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CONTEXT_TIMEOUT", "10m")
	t.Setenv("ENABLE_GEMINI_FALLBACK", "true")
	t.Setenv("NLU_MIN_CONFIDENCE", "0.55")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.ContextTimeout != 10*time.Minute {
		t.Errorf("expected context timeout 10m, got %s", cfg.ContextTimeout)
	}
	if !cfg.GeminiEnabled {
		t.Error("expected gemini fallback enabled")
	}
	if cfg.NLUMinConfidence != 0.55 {
		t.Errorf("expected NLU min confidence 0.55, got %f", cfg.NLUMinConfidence)
	}
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("CONTEXT_TIMEOUT", "not-a-duration")
	t.Setenv("GEMINI_MAX_OUTPUT_TOKENS", "lots")

	cfg := Load()

	if cfg.ContextTimeout != 30*time.Minute {
		t.Errorf("invalid duration should fall back to default, got %s", cfg.ContextTimeout)
	}
	if cfg.GeminiMaxTokens != 320 {
		t.Errorf("invalid int should fall back to default, got %d", cfg.GeminiMaxTokens)
	}
}
