package dotenv

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("missing file should be ignored: %v", err)
	}
}

func TestLoadDoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	body := []byte("TELEGRAM_CHAT_ID=from-file\nEXITMON_TEST_ONLY_KEY=loaded\n")
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}
	t.Setenv("TELEGRAM_CHAT_ID", "from-env")
	t.Setenv("EXITMON_TEST_ONLY_KEY", "")
	os.Unsetenv("EXITMON_TEST_ONLY_KEY")

	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := os.Getenv("TELEGRAM_CHAT_ID"); got != "from-env" {
		t.Fatalf("existing variable overridden: %q", got)
	}
	if got := os.Getenv("EXITMON_TEST_ONLY_KEY"); got != "loaded" {
		t.Fatalf("file variable not loaded: %q", got)
	}
}
