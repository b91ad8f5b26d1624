package util

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Paths are the per-user locations the app reads and writes.
type Paths struct {
	Data    string // database, log and config.yaml
	Reports string // PDF reports and backups
}

// DefaultPaths resolves XDG locations for app, falling back to the working
// directory when no home directory is known.
func DefaultPaths(app string) Paths {
	return Paths{Data: DataDir(app), Reports: ReportsDir(app)}
}

func DataDir(app string) string {
	return filepath.Join(xdgBase("XDG_DATA_HOME", ".local", "share"), app)
}

// ReportsDir is a capitalized app folder under the user's documents directory.
func ReportsDir(app string) string {
	if app == "" {
		return DocumentsDir()
	}
	return filepath.Join(DocumentsDir(), strings.ToUpper(app[:1])+app[1:])
}

// DocumentsDir honors XDG_DOCUMENTS_DIR from the environment or user-dirs.dirs.
func DocumentsDir() string {
	if dir := strings.TrimSpace(os.Getenv("XDG_DOCUMENTS_DIR")); dir != "" {
		return expandHome(dir)
	}
	userDirs := filepath.Join(xdgBase("XDG_CONFIG_HOME", ".config"), "user-dirs.dirs")
	if f, err := os.Open(userDirs); err == nil {
		defer f.Close()
		if dir := lookupUserDir(bufio.NewScanner(f), "XDG_DOCUMENTS_DIR"); dir != "" {
			return expandHome(dir)
		}
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, "Documents")
}

func xdgBase(env string, fallback ...string) string {
	if base := strings.TrimSpace(os.Getenv(env)); base != "" {
		return base
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

// lookupUserDir reads KEY="value" lines in the user-dirs.dirs format.
func lookupUserDir(sc *bufio.Scanner, key string) string {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		name, value, ok := strings.Cut(line, "=")
		if ok && name == key {
			return strings.Trim(value, `"`)
		}
	}
	return ""
}

func expandHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(home, rest)
	}
	return strings.ReplaceAll(path, "$HOME", home)
}
