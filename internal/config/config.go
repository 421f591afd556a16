package config

// #region imports
import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/solsticedev/breakthrough/internal/director"
)

// #endregion

// #region engine-config

// EngineConfig is the env-tunable policy surface of the engine.
// Everything has a shipped default; BREAKTHROUGH_* variables overlay.
type EngineConfig struct {
	// DBPath is where the sqlite-backed history store lives.
	DBPath string `env:"BREAKTHROUGH_DB" envDefault:"breakthrough.db"`

	// Enabled is the kill switch: when false the host should skip
	// breakthrough sequences entirely.
	Enabled bool `env:"BREAKTHROUGH_ENABLED" envDefault:"true"`

	// SettleDelayMS is the settling → idle delay in milliseconds.
	SettleDelayMS int `env:"BREAKTHROUGH_SETTLE_MS" envDefault:"1200"`

	// FPS safe-mode policy knobs.
	FPSFloor      float64 `env:"BREAKTHROUGH_FPS_FLOOR" envDefault:"24"`
	FPSWindow     int     `env:"BREAKTHROUGH_FPS_WINDOW" envDefault:"10"`
	FPSMinSamples int     `env:"BREAKTHROUGH_FPS_MIN_SAMPLES" envDefault:"8"`
}

// #endregion

// #region load

// Load returns the defaults overlaid with environment variables.
func Load() (EngineConfig, error) {
	var cfg EngineConfig
	if err := env.Parse(&cfg); err != nil {
		return EngineConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// #endregion

// #region director-config

// DirectorConfig converts the engine policy into director terms.
func (c EngineConfig) DirectorConfig() director.Config {
	return director.Config{
		SettleDelay:   time.Duration(c.SettleDelayMS) * time.Millisecond,
		FPSWindow:     c.FPSWindow,
		FPSMinSamples: c.FPSMinSamples,
		FPSFloor:      c.FPSFloor,
	}
}

// #endregion
