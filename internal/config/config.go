package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	ErrEmptyEnvironmentVariable = errors.New("empty environment variable")
	ErrUnknownProvider          = errors.New("unknown completion provider")
)

const (
	ProviderOpenRouter = "openrouter"
	ProviderGemini     = "gemini"

	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

// Config holds all application configuration
type Config struct {
	Environment string
	Database    DatabaseConfig
	Completion  CompletionConfig
	Server      ServerConfig
}

// DatabaseConfig holds database connection settings. URL takes precedence
// over the individual parts.
type DatabaseConfig struct {
	URL      string
	Host     string
	Username string
	Password string
	Name     string
}

// CompletionConfig holds the language-model provider settings.
type CompletionConfig struct {
	Provider string

	OpenRouterAPIKey   string
	OpenRouterBaseURL  string
	OpenRouterModel    string
	OpenRouterReferer  string
	OpenRouterAppTitle string

	GoogleAIAPIKey string
	GeminiModel    string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port               int
	CORSAllowedOrigins []string
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != EnvironmentProduction {
		if err := godotenv.Load("env.local"); err != nil {
			log.Printf("Warning: env.local file not loaded: %v", err)
		}
	}
	return FromEnv()
}

// FromEnv builds the configuration from the current process environment.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Environment: getEnvWithDefault("GO_ENV", EnvironmentDevelopment),
	}

	// Database configuration
	var err error
	cfg.Database.URL = os.Getenv("DATABASE_URL")
	if cfg.Database.URL == "" {
		if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
			return nil, fmt.Errorf("DATABASE_URL or DB_* must be set: %w", err)
		}
		if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
			return nil, err
		}
		if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
			return nil, err
		}
		if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
			return nil, err
		}
	}

	// Completion provider configuration
	cfg.Completion.Provider = strings.ToLower(getEnvWithDefault("COMPLETION_PROVIDER", ProviderOpenRouter))
	cfg.Completion.OpenRouterBaseURL = getEnvWithDefault("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1")
	cfg.Completion.OpenRouterModel = getEnvWithDefault("OPENROUTER_MODEL", "openai/gpt-3.5-turbo")
	cfg.Completion.OpenRouterReferer = getEnvWithDefault("OPENROUTER_REFERER", "http://localhost:3000")
	cfg.Completion.OpenRouterAppTitle = getEnvWithDefault("OPENROUTER_APP_TITLE", "Chatbot Microservice")
	cfg.Completion.GeminiModel = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")

	switch cfg.Completion.Provider {
	case ProviderOpenRouter:
		if cfg.Completion.OpenRouterAPIKey, err = requireEnv("OPENROUTER_API_KEY"); err != nil {
			return nil, err
		}
	case ProviderGemini:
		if cfg.Completion.GoogleAIAPIKey, err = requireEnv("GOOGLE_AI_API_KEY"); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Completion.Provider)
	}

	// Server configuration
	serverPort := getEnvWithDefault("SERVER_PORT", "3000")
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.Server.CORSAllowedOrigins = append(cfg.Server.CORSAllowedOrigins, origin)
			}
		}
	}

	return cfg, nil
}

// IsDevelopment reports whether the service runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvironmentDevelopment
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
