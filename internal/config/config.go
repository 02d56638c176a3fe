package config

import (
	"errors"
	"os"
	"strconv"
)

// InferenceConfig holds settings for the multimodal inference backend.
type InferenceConfig struct {
	Provider    string
	APIKey      string
	Model       string
	DefaultMime string
	// TimeoutSec bounds a single backend call. Zero disables the timeout.
	TimeoutSec int
}

// TemplateConfig selects the instruction schema version served by default.
type TemplateConfig struct {
	Version string
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Port        string
	BodyLimitMB int
	// SwaggerEnabled mounts the Swagger UI under /swagger.
	SwaggerEnabled bool
	Inference      InferenceConfig
	Templates      TemplateConfig
	Log            LogConfig
}

// ErrAPIKeyRequired is returned by Validate when no inference API key is configured.
var ErrAPIKeyRequired = errors.New("GOOGLE_API_KEY is required")

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Port:           getEnv("PORT", "8080"),
		BodyLimitMB:    getEnvInt("BODY_LIMIT_MB", 10),
		SwaggerEnabled: getEnvBool("SWAGGER_ENABLED", true),
		Inference: InferenceConfig{
			Provider:    getEnv("INFERENCE_PROVIDER", "gemini"),
			APIKey:      getEnv("GOOGLE_API_KEY", ""),
			Model:       getEnv("INFERENCE_MODEL", "gemini-2.5-flash"),
			DefaultMime: getEnv("INFERENCE_DEFAULT_MIME", "image/jpeg"),
			TimeoutSec:  getEnvInt("INFERENCE_TIMEOUT_SEC", 0),
		},
		Templates: TemplateConfig{
			Version: getEnv("TEMPLATE_VERSION", "v1"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

// Validate checks the settings the process cannot start without.
func (c *AppConfig) Validate() error {
	if c.Inference.APIKey == "" {
		return ErrAPIKeyRequired
	}
	return nil
}

// BodyLimitBytes converts the configured body limit into bytes.
func (c *AppConfig) BodyLimitBytes() int {
	if c.BodyLimitMB <= 0 {
		return 10 * 1024 * 1024
	}
	return c.BodyLimitMB * 1024 * 1024
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
