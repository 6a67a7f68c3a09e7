// Package config provides functionality for managing configuration options
// for the application using command-line flags, a .env file, and
// environment variables.
package config

import (
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string

	// DatabaseDSN holds the PostgreSQL connection string.
	DatabaseDSN string

	// GeminiAPIKey is the API key for the generative model endpoint.
	GeminiAPIKey string

	// GeminiModel names the model used for slide generation.
	GeminiModel string

	// JWTSecret signs session tokens.
	JWTSecret string

	// JWTTTLHours is the session token lifetime in hours.
	JWTTTLHours int
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Port, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.DatabaseDSN, "d", "", "db address")
	flag.StringVar(&options.GeminiModel, "m", "", "gemini model name")
}

// Parse parses command-line flags, loads .env if present, and applies
// environment overrides. Environment variables win over flags.
func Parse() *Options {
	flag.Parse()

	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	if addr := os.Getenv("SERVER_ADDRESS"); addr != "" {
		options.Port = addr
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		options.DatabaseDSN = dsn
	}
	options.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		options.GeminiModel = model
	}
	options.JWTSecret = os.Getenv("JWT_SECRET")

	options.JWTTTLHours = 72
	if ttl := os.Getenv("JWT_TTL_HOURS"); ttl != "" {
		if n, err := strconv.Atoi(ttl); err == nil && n > 0 {
			options.JWTTTLHours = n
		}
	}

	return options
}
