package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all app configuration
type Config struct {
	// Server
	Env      string
	HTTPPort string

	// Explorer API keys, one per supported network
	EtherscanAPIKey   string
	PolygonscanAPIKey string
	ArbiscanAPIKey    string

	// Governance snapshot
	SnapshotGraphQLURL string

	// Outbound HTTP
	ClientTimeout int // seconds

	// App settings
	Debug bool
}

// LoadConfig loads configuration from environment variables, with optional .env file
func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := &Config{
		// Server
		Env:      getEnv("ENV", "local"),
		HTTPPort: getEnv("HTTP_PORT", "8080"),

		// Explorer API keys
		EtherscanAPIKey:   getEnv("ETHERSCAN_API_KEY", ""),
		PolygonscanAPIKey: getEnv("POLYGONSCAN_API_KEY", ""),
		ArbiscanAPIKey:    getEnv("ARBISCAN_API_KEY", ""),

		// Governance snapshot
		SnapshotGraphQLURL: getEnv("SNAPSHOT_GRAPHQL_URL", "https://hub.snapshot.org/graphql"),

		// Outbound HTTP
		ClientTimeout: getEnvAsInt("HTTP_CLIENT_TIMEOUT", 10),

		// App settings
		Debug: getEnvAsBool("DEBUG", false),
	}

	return cfg
}

// APIKeyFor returns the explorer API key configured for a network,
// or an empty string when the network has no key set.
func (c *Config) APIKeyFor(network string) string {
	switch network {
	case "ethereum":
		return c.EtherscanAPIKey
	case "polygon":
		return c.PolygonscanAPIKey
	case "arbitrum":
		return c.ArbiscanAPIKey
	}
	return ""
}

// Helper functions for parsing environment variables
func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	valStr := getEnv(key, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return defaultVal
}
