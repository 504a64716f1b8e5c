package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultAPIURL is used when no backend URL is configured
const DefaultAPIURL = "http://localhost:4000/api"

type Config struct {
	Server  ServerConfig
	Session SessionConfig
	API     APIConfig
	UI      UIConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port string
	Host string
	Env  string
}

// Addr is the listen address
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// IsDevelopment reports whether the server runs in development mode
func (s ServerConfig) IsDevelopment() bool {
	return s.Env == "development"
}

type SessionConfig struct {
	Secret        string
	IdleTTL       time.Duration
	SweepInterval time.Duration
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
	// Demo serves a built-in sample catalog instead of calling BaseURL
	Demo bool
}

type UIConfig struct {
	// MessageTimeout clears success banners
	MessageTimeout time.Duration
	// AddedFeedbackTimeout clears the "added to cart" flag
	AddedFeedbackTimeout time.Duration
}

type LogConfig struct {
	Level string
}

// Load reads configuration from the environment. .env.local and .env are
// loaded first when present; variables already set win.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env.local", ".env"}
	}
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Host: getEnv("HOST", "localhost"),
			Env:  getEnv("ENV", "development"),
		},
		Session: SessionConfig{
			Secret:        getEnv("SESSION_SECRET", "your-secret-key-change-in-production"),
			IdleTTL:       getEnvAsDuration("SESSION_IDLE_TTL", 2*time.Hour),
			SweepInterval: getEnvAsDuration("SESSION_SWEEP_INTERVAL", time.Minute),
		},
		API: APIConfig{
			BaseURL: apiBaseURL(),
			Timeout: getEnvAsDuration("API_TIMEOUT", 10*time.Second),
			Demo:    getEnvAsBool("DEMO_MODE", false),
		},
		UI: UIConfig{
			MessageTimeout:       getEnvAsDuration("MESSAGE_TIMEOUT", 3*time.Second),
			AddedFeedbackTimeout: getEnvAsDuration("ADDED_FEEDBACK_TIMEOUT", 2*time.Second),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return config, nil
}

// apiBaseURL honours the variable names the browser builds used
func apiBaseURL() string {
	for _, key := range []string{"API_URL", "VITE_API_URL", "REACT_APP_API_URL"} {
		if value := os.Getenv(key); value != "" {
			return strings.TrimRight(value, "/")
		}
	}
	return DefaultAPIURL
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvAsDuration only accepts positive durations; zero or negative
// values fall back to the default.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			if d > 0 {
				return d
			}
			return defaultValue
		}
		// bare numbers are seconds
		if secs := getEnvAsInt(key, 0); secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}
