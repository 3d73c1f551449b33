package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

func LoadEnv() error {
	// Try to load .env file if it exists (for local development)
	// In deployed environments the variables are set directly
	err := godotenv.Load()
	if err != nil {
		// .env file not found is not an error - the environment
		// variables may already be available in os.Getenv()
		return nil
	}
	return nil
}

// ValidateEnv checks that critical environment variables are set.
// Returns an error if any critical variable is missing.
func ValidateEnv() error {
	var missing []string

	// Critical variables - the gateway cannot function without these
	if os.Getenv("AUTH_API_URL") == "" {
		missing = append(missing, "AUTH_API_URL")
	}
	if os.Getenv("CLIENT_TOKEN_SECRET") == "" {
		missing = append(missing, "CLIENT_TOKEN_SECRET")
	}

	if len(missing) > 0 {
		return fmt.Errorf("critical environment variables not set: %v", missing)
	}

	// Non-critical variables - log warnings but don't fail
	if os.Getenv("CATALOG_API_URL") == "" {
		log.Println("WARNING: CATALOG_API_URL not set - product browsing will fail")
	}
	if os.Getenv("STORE_PATH") == "" {
		log.Println("WARNING: STORE_PATH not set - defaulting to ./suuq-store.db")
	}
	if os.Getenv("FRONTEND_URL") == "" {
		log.Println("WARNING: FRONTEND_URL not set - CORS may not work correctly")
	}

	return nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
