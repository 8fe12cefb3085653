package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Frontend
	CORSOrigin  string
	FrontendDir string

	// Completion API
	LLMProvider    string
	LLMAPIKey      string
	GroqBaseURL    string
	ModelID        string
	LLMTemperature float64

	// Tracing
	OTLPEndpoint string
	ServiceName  string
}

// Load reads the process environment (and .env when present). It panics when
// the credential for the selected provider or the model id is missing.
func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	provider := strings.ToLower(getEnvOrDefault("LLM_PROVIDER", ProviderGroq))

	var apiKey string
	switch provider {
	case ProviderGroq:
		apiKey = mustGetEnv("GROQ_API_KEY")
	case ProviderGemini:
		apiKey = mustGetEnv("GEMINI_API_KEY")
	default:
		panic(fmt.Sprintf("unsupported LLM_PROVIDER %q (want %q or %q)", provider, ProviderGroq, ProviderGemini))
	}

	cfg := &Config{
		Port:           getEnvOrDefault("PORT", "3000"),
		Env:            getEnvOrDefault("ENV", "development"),
		CORSOrigin:     getEnvOrDefault("CORS_ORIGIN", "*"),
		FrontendDir:    getEnvOrDefault("FRONTEND_DIR", ""),
		LLMProvider:    provider,
		LLMAPIKey:      apiKey,
		GroqBaseURL:    getEnvOrDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		ModelID:        mustGetEnv("MODEL_API"),
		LLMTemperature: getEnvAsFloatOrDefault("LLM_TEMPERATURE", 0),
		OTLPEndpoint:   getEnvOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		ServiceName:    getEnvOrDefault("OTEL_SERVICE_NAME", "scaffold-backend"),
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsFloatOrDefault(key string, defaultVal float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultVal
	}
	return f
}
