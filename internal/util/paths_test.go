package util

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultPathsHonorXDG(t *testing.T) {
	data := t.TempDir()
	docs := t.TempDir()
	t.Setenv("XDG_DATA_HOME", data)
	t.Setenv("XDG_DOCUMENTS_DIR", docs)

	p := DefaultPaths("marathon")
	if p.Data != filepath.Join(data, "marathon") {
		t.Fatalf("Data = %q", p.Data)
	}
	if p.Reports != filepath.Join(docs, "Marathon") {
		t.Fatalf("Reports = %q", p.Reports)
	}
}

func TestDocumentsDirReadsUserDirs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DOCUMENTS_DIR", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "cfg"))
	if err := os.MkdirAll(filepath.Join(home, "cfg"), 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	dirs := "# written by xdg-user-dirs-update\nXDG_DOCUMENTS_DIR=\"$HOME/Papers\"\n"
	if err := os.WriteFile(filepath.Join(home, "cfg", "user-dirs.dirs"), []byte(dirs), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if got := DocumentsDir(); got != filepath.Join(home, "Papers") {
		t.Fatalf("DocumentsDir = %q", got)
	}
}

func TestLookupUserDir(t *testing.T) {
	data := "# XDG_DOCUMENTS_DIR=\"ignored\"\nXDG_DESKTOP_DIR=\"$HOME/Desktop\"\nXDG_DOCUMENTS_DIR=\"$HOME/Docs\"\n"
	sc := func() *bufio.Scanner { return bufio.NewScanner(strings.NewReader(data)) }
	if got := lookupUserDir(sc(), "XDG_DOCUMENTS_DIR"); got != "$HOME/Docs" {
		t.Fatalf("lookupUserDir = %q", got)
	}
	if got := lookupUserDir(sc(), "XDG_MUSIC_DIR"); got != "" {
		t.Fatalf("expected empty for missing key, got %q", got)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if got := expandHome("~/runs"); got != filepath.Join(home, "runs") {
		t.Fatalf("expandHome(~) = %q", got)
	}
	if got := expandHome("$HOME/runs"); got != home+"/runs" {
		t.Fatalf("expandHome($HOME) = %q", got)
	}
	if got := expandHome("/srv/runs"); got != "/srv/runs" {
		t.Fatalf("absolute path changed: %q", got)
	}
}
