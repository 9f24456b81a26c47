package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	Port          string
	Env           string
	PublicBaseURL string
	LogLevel      string

	// Twilio WhatsApp transport
	TwilioAccountSID   string
	TwilioAuthToken    string
	TwilioWhatsAppFrom string

	// Dialogflow NLU
	DialogflowProjectID       string
	DialogflowCredentialsFile string
	NLUTimeout                time.Duration
	NLUMinConfidence          float64

	// Gemini generative fallback
	GeminiAPIKey      string
	GeminiModel       string
	GeminiEnabled     bool
	GeminiTimeout     time.Duration
	GeminiMaxTokens   int
	GeminiTemperature float64

	// Conversation state
	ContextTimeout time.Duration
	RedisAddr      string
	RedisPassword  string
	RedisTLS       bool
	UseMemoryState bool

	// Lead store
	LeadsFile string

	// Dashboard auth
	AdminJWTSecret     string
	CORSAllowedOrigins string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),

		TwilioAccountSID:   getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:    getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioWhatsAppFrom: getEnv("TWILIO_WHATSAPP_FROM", ""),

		DialogflowProjectID:       getEnv("DIALOGFLOW_PROJECT_ID", ""),
		DialogflowCredentialsFile: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		NLUTimeout:                getEnvAsDuration("NLU_TIMEOUT", 5*time.Second),
		NLUMinConfidence:          getEnvAsFloat("NLU_MIN_CONFIDENCE", 0.7),

		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiEnabled:     getEnvAsBool("ENABLE_GEMINI_FALLBACK", false),
		GeminiTimeout:     getEnvAsDuration("GEMINI_TIMEOUT", 8*time.Second),
		GeminiMaxTokens:   getEnvAsInt("GEMINI_MAX_OUTPUT_TOKENS", 320),
		GeminiTemperature: getEnvAsFloat("GEMINI_TEMPERATURE", 0.2),

		ContextTimeout: getEnvAsDuration("CONTEXT_TIMEOUT", 30*time.Minute),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisTLS:       getEnvAsBool("REDIS_TLS", false),
		UseMemoryState: getEnvAsBool("USE_MEMORY_STATE", true),

		LeadsFile: getEnv("LEADS_FILE", "data/franchise-leads.json"),

		AdminJWTSecret:     getEnv("ADMIN_JWT_SECRET", ""),
		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", ""),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
