package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// ⭐ SSOT: all environment variables are read here and nowhere else
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Market data provider
	Yahoo YahooConfig

	// Outbound HTTP
	HTTP HTTPConfig

	// Analysis pipeline
	Analysis AnalysisConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// YahooConfig holds Yahoo Finance chart API configuration
type YahooConfig struct {
	BaseURL string
}

// HTTPConfig holds outbound HTTP client configuration
type HTTPConfig struct {
	Timeout      time.Duration
	MaxRetries   int
	RetryEnabled bool
}

// AnalysisConfig holds the analysis pipeline parameters
type AnalysisConfig struct {
	WindowDays   int      // trailing history window
	RiskFreeRate float64  // annual risk-free rate for excess returns
	Benchmarks   []string // benchmark candidates, tried in order
}

// Load reads configuration from environment variables
// ⭐ SSOT: this is the only function that calls os.Getenv()
func Load() (*Config, error) {
	// Try multiple paths for .env file
	loadEnvFile()

	cfg := &Config{
		// Server
		Port: getEnv("PORT", "5000"),
		Env:  getEnv("ENV", "development"),

		// Market data provider
		Yahoo: YahooConfig{
			BaseURL: getEnv("YAHOO_BASE_URL", "https://query1.finance.yahoo.com"),
		},

		// Outbound HTTP
		HTTP: HTTPConfig{
			Timeout:      getEnvAsDuration("HTTP_TIMEOUT", "30s"),
			MaxRetries:   getEnvAsInt("HTTP_MAX_RETRIES", 3),
			RetryEnabled: getEnvAsBool("HTTP_RETRY_ENABLED", true),
		},

		// Analysis pipeline
		Analysis: AnalysisConfig{
			WindowDays:   getEnvAsInt("ANALYSIS_WINDOW_DAYS", 365),
			RiskFreeRate: getEnvAsFloat("RISK_FREE_RATE", 0.02),
			Benchmarks:   getEnvAsSlice("BENCHMARK_SYMBOLS", []string{"^IXIC", "^GSPC"}),
		},

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "debug"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	// Validate environment
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Yahoo.BaseURL == "" {
		return fmt.Errorf("YAHOO_BASE_URL is required")
	}

	if c.Analysis.WindowDays <= 0 {
		return fmt.Errorf("ANALYSIS_WINDOW_DAYS must be positive")
	}

	if len(c.Analysis.Benchmarks) == 0 {
		return fmt.Errorf("BENCHMARK_SYMBOLS must list at least one symbol")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	// Try paths in order of priority
	paths := []string{
		".env",         // Current directory
		"backend/.env", // From project root
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
			filepath.Join(exeDir, "..", "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		// Fallback to default
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}

// getEnvAsSlice reads a comma-separated list, trimming whitespace per item
func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			values = append(values, v)
		}
	}

	if len(values) == 0 {
		return defaultValue
	}

	return values
}
