package config

import (
	"path/filepath"
	"testing"
)

func TestInitConfigCreatesDefaultFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if cfg.Solver.MaxSeeds != DefaultConfig().Solver.MaxSeeds {
		t.Fatalf("expected default MaxSeeds, got %d", cfg.Solver.MaxSeeds)
	}

	reloaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if reloaded.Solver.Concurrency != cfg.Solver.Concurrency {
		t.Fatalf("reloaded config diverged from saved config")
	}
}

func TestUpdatePersists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}

	newSeeds := 500
	if err := cfg.Update(path, &newSeeds, nil); err != nil {
		t.Fatalf("Update: %v", err)
	}

	reloaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if reloaded.Solver.MaxSeeds != newSeeds {
		t.Fatalf("Update did not persist: got %d, want %d", reloaded.Solver.MaxSeeds, newSeeds)
	}
}

func TestLoadWithPriorityFallsBackToDefaults(t *testing.T) {
	cfg, path := LoadWithPriority("")
	if path != "" {
		t.Fatalf("expected no config file to be found, got path %q", path)
	}
	if cfg.Solver.MaxSeeds != DefaultConfig().Solver.MaxSeeds {
		t.Fatalf("expected default config when nothing is found")
	}
}
