package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cognicore/etymon/pkg/etymon/config"
	"github.com/cognicore/etymon/pkg/etymon/wikt"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// TestBuildEngine tests that buildEngine wires dataset, lexicon, and cache
func TestBuildEngine(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	dbPath := writeFile(t, tmpDir, "db.csv",
		"word,etymology,notes\nprestigious,From French.,grade8\n")
	rootsPath := writeFile(t, tmpDir, "roots.yaml",
		"roots:\n  - pattern: quad\n    origin: Latin four\n")
	cachePath := filepath.Join(tmpDir, "cache.db")

	engine, cleanup, err := buildEngine(ctx, dbPath, rootsPath, cachePath, wikt.DefaultBaseURL, wikt.DefaultTimeout)
	if err != nil {
		t.Fatalf("buildEngine failed: %v", err)
	}
	defer cleanup()

	if engine.Dataset().Len() != 1 {
		t.Errorf("dataset len = %d, want 1", engine.Dataset().Len())
	}
	if !engine.Lexicon().Has("quad") {
		t.Error("lexicon extension not loaded")
	}
	if !engine.Lexicon().Has("bio") {
		t.Error("built-in lexicon missing after extension")
	}
}

// TestBuildEngineMissingDatasetIsEmpty tests the missing-file behavior
func TestBuildEngineMissingDatasetIsEmpty(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	engine, cleanup, err := buildEngine(ctx, filepath.Join(tmpDir, "nope.csv"), "", "", wikt.DefaultBaseURL, wikt.DefaultTimeout)
	if err != nil {
		t.Fatalf("buildEngine failed: %v", err)
	}
	defer cleanup()

	if engine.Dataset().Len() != 0 {
		t.Errorf("dataset len = %d, want 0", engine.Dataset().Len())
	}
}

// TestBuildEngineBadRootsFile tests that buildEngine fails with a broken roots file
func TestBuildEngineBadRootsFile(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	_, _, err := buildEngine(ctx, filepath.Join(tmpDir, "db.csv"), filepath.Join(tmpDir, "nope.yaml"), "", wikt.DefaultBaseURL, wikt.DefaultTimeout)
	if err == nil {
		t.Error("buildEngine should fail with non-existent roots file")
	}
}

func TestApplyConfig(t *testing.T) {
	app := &config.App{
		DatasetPath:    "words.csv",
		CachePath:      "cache.db",
		Online:         true,
		TimeoutSeconds: 5,
	}

	dbPath, rootsPath, cachePath := "default.csv", "", ""
	online := false
	timeout := wikt.DefaultTimeout

	applyConfig(app, &dbPath, &rootsPath, &cachePath, &online, &timeout)

	if dbPath != "words.csv" || cachePath != "cache.db" || !online {
		t.Errorf("config not applied: db=%q cache=%q online=%v", dbPath, cachePath, online)
	}
	if timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", timeout)
	}
	if rootsPath != "" {
		t.Errorf("rootsPath = %q, want unchanged", rootsPath)
	}
}
