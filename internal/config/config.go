package config

import (
	"os"
	"strconv"
)

type Config struct {
	HTTPPort     string
	DatabasePath string

	GeminiAPIKey string
	GeminiModel  string
	MemoryTurns  int

	MaxUploadBytes int64

	BaseImage     string
	PipVersion    string
	StreamlitPort int
}

func Load() *Config {
	return &Config{
		HTTPPort:       getEnv("HTTP_PORT", "3000"),
		DatabasePath:   getEnv("DATABASE_PATH", "resumeai.db"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    os.Getenv("GEMINI_MODEL"),
		MemoryTurns:    getEnvInt("MEMORY_TURNS", 20),
		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_BYTES", 10<<20)),
		BaseImage:      getEnv("BASE_IMAGE", "python:3.10-slim"),
		PipVersion:     getEnv("PIP_VERSION", "23.3.2"),
		StreamlitPort:  getEnvInt("STREAMLIT_PORT", 8501),
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}
