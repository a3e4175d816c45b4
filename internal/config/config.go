// Package config provides YAML-based tuning for the mosaic puzzle engine.
package config

// EngineConfig contains all tuning parameters for the puzzle engine.
// Every rate is a fixed per-tick increment: the engine is tick-attached,
// so changing the platform tick rate changes animation speed.
type EngineConfig struct {
	Grid      GridConfig     `yaml:"grid"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Fades     FadeConfig     `yaml:"fades"`
	Reveal    RevealConfig   `yaml:"reveal"`
	Scoring   ScoringConfig  `yaml:"scoring"`
	Particles ParticleConfig `yaml:"particles"`
}

// GridConfig defines board dimensions and the token palette size.
type GridConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	PaletteSize int `yaml:"palette_size"`
}

// PhysicsConfig defines falling-token parameters.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Velocity added per tick while falling
	SpawnOffset float64 `yaml:"spawn_offset"` // Rows above the grid where refills appear
}

// FadeConfig defines the per-tick animation increments.
type FadeConfig struct {
	TokenFadeIn    float64 `yaml:"token_fade_in"`    // Opacity gain for freshly spawned tokens
	Shrink         float64 `yaml:"shrink"`           // Scale loss for matched tokens
	TokenFadeOut   float64 `yaml:"token_fade_out"`   // Opacity drain during the final reveal
	OverlayFadeOut float64 `yaml:"overlay_fade_out"` // Grid overlay drain during the final reveal
	ColorFade      float64 `yaml:"color_fade"`       // Full-image fade-in during the final reveal
}

// RevealConfig defines when the final disclosure animation starts.
type RevealConfig struct {
	// Threshold is the fraction of cells (0..1] that must have been part
	// of a cleared match before the full image is revealed.
	Threshold float64 `yaml:"threshold"`

	// PauseTicks is the cooldown after a removal animation before
	// gravity resumes.
	PauseTicks int `yaml:"pause_ticks"`
}

// ScoringConfig defines score bookkeeping.
type ScoringConfig struct {
	PointsPerToken int `yaml:"points_per_token"`
}

// ParticleConfig defines the decorative snowfall shown after completion.
type ParticleConfig struct {
	Max          int     `yaml:"max"`            // Maximum live particles
	SpawnPerTick int     `yaml:"spawn_per_tick"` // Lazy spawn rate until Max is reached
	MinFall      float64 `yaml:"min_fall"`       // Fall speed range, percent of viewport per tick
	MaxFall      float64 `yaml:"max_fall"`
	MaxDrift     float64 `yaml:"max_drift"` // Horizontal drift bound, percent per tick
}

// RevealPreset represents a named reveal pacing.
type RevealPreset string

const (
	RevealQuick  RevealPreset = "quick"  // Image shows after a few matches
	RevealNormal RevealPreset = "normal" // Default pacing
	RevealFull   RevealPreset = "full"   // Every cell must be matched
)

// ThresholdForPreset returns the reveal threshold for a preset.
func ThresholdForPreset(preset RevealPreset) float64 {
	switch preset {
	case RevealQuick:
		return 0.15
	case RevealFull:
		return 1.0
	default:
		return 0.35
	}
}

// ApplyRevealPreset overrides the configured threshold with a preset value.
func ApplyRevealPreset(cfg *EngineConfig, preset RevealPreset) {
	cfg.Reveal.Threshold = ThresholdForPreset(preset)
}
