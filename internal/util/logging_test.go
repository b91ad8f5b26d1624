package util

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLogFileWritesEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	closer, err := SetupLogFile(path)
	if err != nil {
		t.Fatalf("SetupLogFile failed: %v", err)
	}
	LogError("save plan", errors.New("disk full"))
	LogError("ignored", nil)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	defer log.SetFlags(log.LstdFlags)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "save plan: disk full") {
		t.Fatalf("expected logged error, got %q", string(data))
	}
	if strings.Contains(string(data), "ignored") {
		t.Fatalf("nil errors should not be logged")
	}
}
