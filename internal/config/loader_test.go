package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEngineEmbeddedDefault(t *testing.T) {
	cfg, err := LoadEngine("")
	if err != nil {
		t.Fatalf("LoadEngine(\"\") returned error: %v", err)
	}

	if cfg.Grid.Width != 8 || cfg.Grid.Height != 8 {
		t.Errorf("default grid should be 8x8, got %dx%d", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Grid.PaletteSize != 5 {
		t.Errorf("default palette size should be 5, got %d", cfg.Grid.PaletteSize)
	}
	if cfg.Reveal.Threshold <= 0 || cfg.Reveal.Threshold > 1 {
		t.Errorf("default reveal threshold should be in (0, 1], got %f", cfg.Reveal.Threshold)
	}
	if cfg.Scoring.PointsPerToken != 10 {
		t.Errorf("default points per token should be 10, got %d", cfg.Scoring.PointsPerToken)
	}
}

func TestLoadEngineCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.yaml")
	custom := []byte(`
grid:
  width: 10
  height: 6
  palette_size: 4
reveal:
  threshold: 0.5
  pause_ticks: 20
`)
	if err := os.WriteFile(path, custom, 0o600); err != nil {
		t.Fatalf("cannot write temp config: %v", err)
	}

	cfg, err := LoadEngine(path)
	if err != nil {
		t.Fatalf("LoadEngine(custom) returned error: %v", err)
	}

	if cfg.Grid.Width != 10 || cfg.Grid.Height != 6 {
		t.Errorf("custom grid should be 10x6, got %dx%d", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Reveal.Threshold != 0.5 {
		t.Errorf("custom threshold should be 0.5, got %f", cfg.Reveal.Threshold)
	}
}

func TestLoadEngineMissingCustomPath(t *testing.T) {
	_, err := LoadEngine("/nonexistent/engine.yaml")
	if err == nil {
		t.Error("LoadEngine with missing custom path should return an error")
	}
}

func TestRevealPresets(t *testing.T) {
	tests := []struct {
		preset   RevealPreset
		expected float64
	}{
		{RevealQuick, 0.15},
		{RevealNormal, 0.35},
		{RevealFull, 1.0},
		{RevealPreset("unknown"), 0.35},
	}

	for _, tc := range tests {
		if got := ThresholdForPreset(tc.preset); got != tc.expected {
			t.Errorf("ThresholdForPreset(%q) = %f, expected %f", tc.preset, got, tc.expected)
		}
	}

	cfg := DefaultEngineConfig()
	ApplyRevealPreset(&cfg, RevealFull)
	if cfg.Reveal.Threshold != 1.0 {
		t.Errorf("ApplyRevealPreset(full) should set threshold to 1.0, got %f", cfg.Reveal.Threshold)
	}
}
