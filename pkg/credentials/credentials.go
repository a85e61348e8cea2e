package credentials

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// APIKeyEnv is the environment variable holding the provider API key.
const APIKeyEnv = "API_KEY"

// ErrMissingAPIKey is returned when no API key can be resolved.
var ErrMissingAPIKey = errors.New("API key missing: pass --api-key or set " + APIKeyEnv + " in the environment or a .env file")

// Resolve returns the API key to use for provider requests. An explicit
// non-empty value wins; otherwise a .env file in the working directory is
// loaded (variables already set in the environment are never overridden) and
// API_KEY is consulted. Resolve is meant to be called once at startup.
func Resolve(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded environment from .env")
	}

	if key := os.Getenv(APIKeyEnv); key != "" {
		return key, nil
	}

	return "", ErrMissingAPIKey
}
