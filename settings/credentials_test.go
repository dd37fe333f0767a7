package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestToken_FromEnvironment(t *testing.T) {
	t.Setenv(TokenEnv, "env-token")

	token, err := Token(t.TempDir())
	if err != nil {
		t.Fatalf("Token error: %v", err)
	}
	if token != "env-token" {
		t.Fatalf("unexpected token: %q", token)
	}
}

func TestToken_FromDotEnv(t *testing.T) {
	t.Setenv(TokenEnv, "")
	os.Unsetenv(TokenEnv)

	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ".env"), []byte(TokenEnv+"=file-token\n"), 0600); err != nil {
		t.Fatalf("writing .env: %v", err)
	}

	token, err := Token(root)
	if err != nil {
		t.Fatalf("Token error: %v", err)
	}
	if token != "file-token" {
		t.Fatalf("unexpected token: %q", token)
	}
}

func TestToken_MissingIsError(t *testing.T) {
	t.Setenv(TokenEnv, "")
	os.Unsetenv(TokenEnv)

	if _, err := Token(t.TempDir()); err == nil {
		t.Fatal("expected error when token unset")
	}
}
