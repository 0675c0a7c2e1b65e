package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/signalsfoundry/passplan/internal/planner"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "passplan.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Strategy != planner.StrategyHeuristic {
		t.Fatalf("default strategy = %q, want heuristic", cfg.Strategy)
	}
	if cfg.ConflictBuffer() != planner.DefaultConflictBuffer {
		t.Fatalf("default buffer = %v, want %v", cfg.ConflictBuffer(), planner.DefaultConflictBuffer)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := writeConfig(t, `
strategy: ml
conflict_buffer_seconds: 90
max_total_passes: 40
scenario: /var/lib/passplan/scenario.json
interval: 10m
metrics_addr: ":9090"
log:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Strategy != planner.StrategyML {
		t.Fatalf("strategy = %q, want ml", cfg.Strategy)
	}
	if cfg.ConflictBuffer() != 90*time.Second {
		t.Fatalf("buffer = %v, want 90s", cfg.ConflictBuffer())
	}
	if cfg.MaxTotalPasses != 40 {
		t.Fatalf("max_total_passes = %d, want 40", cfg.MaxTotalPasses)
	}
	if cfg.Interval.AsDuration() != 10*time.Minute {
		t.Fatalf("interval = %v, want 10m", cfg.Interval.AsDuration())
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("unexpected log config: %+v", cfg.Log)
	}
}

func TestLoadRejectsUnknownStrategy(t *testing.T) {
	path := writeConfig(t, "strategy: quantum\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}

func TestLoadRejectsNegativeBuffer(t *testing.T) {
	path := writeConfig(t, "conflict_buffer_seconds: -5\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for negative buffer")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
