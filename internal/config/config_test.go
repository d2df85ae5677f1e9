package config

import "testing"

// clearEnv blanks every variable Load reads so the test does not inherit
// values from the caller's environment. Load treats empty as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_PORT", "DATABASE_PATH", "GEMINI_API_KEY", "GEMINI_MODEL",
		"MEMORY_TURNS", "MAX_UPLOAD_BYTES", "BASE_IMAGE", "PIP_VERSION",
		"STREAMLIT_PORT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg := Load()

	if cfg.HTTPPort != "3000" {
		t.Errorf("HTTPPort = %q, want 3000", cfg.HTTPPort)
	}
	if cfg.StreamlitPort != 8501 {
		t.Errorf("StreamlitPort = %d, want 8501", cfg.StreamlitPort)
	}
	if cfg.BaseImage != "python:3.10-slim" {
		t.Errorf("BaseImage = %q", cfg.BaseImage)
	}
	if cfg.PipVersion != "23.3.2" {
		t.Errorf("PipVersion = %q", cfg.PipVersion)
	}
	if cfg.MemoryTurns != 20 {
		t.Errorf("MemoryTurns = %d, want 20", cfg.MemoryTurns)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("MEMORY_TURNS", "5")
	t.Setenv("STREAMLIT_PORT", "9000")

	cfg := Load()
	if cfg.HTTPPort != "8080" {
		t.Errorf("HTTPPort = %q, want 8080", cfg.HTTPPort)
	}
	if cfg.MemoryTurns != 5 {
		t.Errorf("MemoryTurns = %d, want 5", cfg.MemoryTurns)
	}
	if cfg.StreamlitPort != 9000 {
		t.Errorf("StreamlitPort = %d, want 9000", cfg.StreamlitPort)
	}
}

func TestLoadBadIntFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("MEMORY_TURNS", "lots")
	if got := Load().MemoryTurns; got != 20 {
		t.Errorf("MemoryTurns = %d, want default 20", got)
	}
}
