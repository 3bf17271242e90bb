package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Evaluator.MaxLoopIterations != 1_000_000 {
		t.Errorf("expected default MaxLoopIterations 1000000, got %d", cfg.Evaluator.MaxLoopIterations)
	}
	if cfg.Evaluator.MaxCallDepth != 1000 {
		t.Errorf("expected default MaxCallDepth 1000, got %d", cfg.Evaluator.MaxCallDepth)
	}
}

func TestLoadFullConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "evaluator:\n  maxLoopIterations: 500\n  maxCallDepth: 64\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Evaluator.MaxLoopIterations != 500 {
		t.Errorf("expected 500, got %d", cfg.Evaluator.MaxLoopIterations)
	}
	if cfg.Evaluator.MaxCallDepth != 64 {
		t.Errorf("expected 64, got %d", cfg.Evaluator.MaxCallDepth)
	}
}

func TestLoadPartialConfigFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "evaluator:\n  maxCallDepth: 32\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Evaluator.MaxLoopIterations != 1_000_000 {
		t.Errorf("expected default 1000000, got %d", cfg.Evaluator.MaxLoopIterations)
	}
	if cfg.Evaluator.MaxCallDepth != 32 {
		t.Errorf("expected 32, got %d", cfg.Evaluator.MaxCallDepth)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/config.yaml"); err == nil {
		t.Fatal("expected error loading nonexistent config file")
	}
}
