package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           int
	Hostname       string
	AllowedOrigins []string

	// StatsAPIURL overrides the public stats API host, mainly for tests.
	StatsAPIURL string
	// LibraryDir holds pre-fetched library game documents; empty disables
	// the file adapter.
	LibraryDir string
	// LibraryURL is the scorecard library's live-fetch endpoint; empty
	// disables the live library adapter.
	LibraryURL string
	// TemplatePath points at a sample game used for template customization
	// when every source misses; empty disables it.
	TemplatePath string

	RequestTimeout time.Duration
}

// load the config, with defaults if the .env file doesn't exist or values are not provided
func Load() (*Config, error) {
	// a missing .env file is fine; environment variables still apply
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT_", "8080"))
	if err != nil {
		return nil, err
	}

	timeout, err := time.ParseDuration(getEnv("REQUEST_TIMEOUT", "10s"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:           port,
		Hostname:       getEnv("HOSTNAME_", "localhost"),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		StatsAPIURL:    getEnv("STATS_API_URL", ""),
		LibraryDir:     getEnv("LIBRARY_DIR", ""),
		LibraryURL:     getEnv("LIBRARY_URL", ""),
		TemplatePath:   getEnv("TEMPLATE_PATH", ""),
		RequestTimeout: timeout,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
