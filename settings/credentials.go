// Package settings resolves translation service credentials.
//
// Lookup order for the API token:
//  1. TXSYNC_TOKEN environment variable
//  2. TXSYNC_TOKEN entry in a .env file in the workspace root
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// TokenEnv is the environment variable carrying the service API token.
const TokenEnv = "TXSYNC_TOKEN"

// Token returns the translation service API token. The workspace .env file
// is loaded first if present; real environment variables win over it.
func Token(root string) (string, error) {
	envPath := filepath.Join(root, ".env")
	if _, err := os.Stat(envPath); err == nil {
		// godotenv.Load never overwrites variables already set.
		_ = godotenv.Load(envPath)
	}

	token := os.Getenv(TokenEnv)
	if token == "" {
		return "", fmt.Errorf("%s is not set (export it or add it to %s)", TokenEnv, envPath)
	}
	return token, nil
}
