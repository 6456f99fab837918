// Package config provides configuration for the orchestrator.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the orchestrator configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Database
	DatabaseURL string

	// LLM provider settings
	LLMProvider     string
	OpenAIModel     string
	AnthropicAPIKey string
	AnthropicModel  string
	LLMMaxRetries   int

	// Execution settings
	AgentTimeout           time.Duration
	TerminalWriteRetries   int
	TerminalWriteBaseDelay time.Duration
	DefaultTenantID        string

	// Policy
	PolicyPath string

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		HTTPPort:               getEnvInt("HTTP_PORT", 8080),
		DatabaseURL:            getEnv("DATABASE_URL", "file:orchestrator.db?cache=shared&mode=rwc"),
		LLMProvider:            getEnv("LLM_PROVIDER", "openai"),
		OpenAIModel:            getEnv("OPENAI_MODEL", ""),
		AnthropicAPIKey:        getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModel:         getEnv("ANTHROPIC_MODEL", ""),
		LLMMaxRetries:          getEnvInt("LLM_MAX_RETRIES", 2),
		AgentTimeout:           time.Duration(getEnvInt("AGENT_TIMEOUT_MS", 120000)) * time.Millisecond,
		TerminalWriteRetries:   getEnvInt("TERMINAL_WRITE_RETRIES", 2),
		TerminalWriteBaseDelay: time.Duration(getEnvInt("TERMINAL_WRITE_BASE_DELAY_MS", 1000)) * time.Millisecond,
		DefaultTenantID:        getEnv("DEFAULT_TENANT_ID", "default"),
		PolicyPath:             getEnv("POLICY_PATH", ""),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
