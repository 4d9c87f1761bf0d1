package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/etymon/pkg/etymon/internalerr"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadApp(t *testing.T) {
	path := writeFile(t, "etymon.yaml", `
dataset_path: etymology_db.csv
cache_path: cache.db
online: true
timeout_seconds: 12
`)

	app, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if app.DatasetPath != "etymology_db.csv" || !app.Online || app.TimeoutSeconds != 12 {
		t.Errorf("app = %+v", app)
	}
}

func TestLoadAppMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load should fail for a missing file")
	}
}

func TestLoadAppNegativeTimeout(t *testing.T) {
	path := writeFile(t, "etymon.yaml", "timeout_seconds: -1\n")

	_, err := Load(path)
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadRoots(t *testing.T) {
	path := writeFile(t, "roots.yaml", `
roots:
  - pattern: quad
    origin: Latin 'quattuor' = four (quadrant, quadruple)
  - pattern: poly
    origin: Greek 'polus' = many (polygon, polyglot)
`)

	roots, err := LoadRoots(path)
	if err != nil {
		t.Fatalf("LoadRoots: %v", err)
	}
	if len(roots) != 2 {
		t.Fatalf("got %d roots, want 2", len(roots))
	}
	if roots["quad"] == "" || roots["poly"] == "" {
		t.Errorf("roots = %v", roots)
	}
}

func TestLoadRootsEmptyPattern(t *testing.T) {
	path := writeFile(t, "roots.yaml", `
roots:
  - pattern: ""
    origin: broken
`)

	_, err := LoadRoots(path)
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}
