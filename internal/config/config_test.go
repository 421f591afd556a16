package config

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Enabled {
		t.Error("engine should be enabled by default")
	}
	if cfg.SettleDelayMS != 1200 {
		t.Errorf("settle delay %d, want 1200", cfg.SettleDelayMS)
	}
	if cfg.FPSFloor != 24 {
		t.Errorf("fps floor %f, want 24", cfg.FPSFloor)
	}
}

func TestEnvOverlay(t *testing.T) {
	t.Setenv("BREAKTHROUGH_SETTLE_MS", "300")
	t.Setenv("BREAKTHROUGH_FPS_FLOOR", "30")
	t.Setenv("BREAKTHROUGH_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Enabled {
		t.Error("kill switch ignored")
	}
	if cfg.SettleDelayMS != 300 {
		t.Errorf("settle delay %d, want 300", cfg.SettleDelayMS)
	}

	dc := cfg.DirectorConfig()
	if dc.SettleDelay != 300*time.Millisecond {
		t.Errorf("director settle delay %v", dc.SettleDelay)
	}
	if dc.FPSFloor != 30 {
		t.Errorf("director fps floor %f", dc.FPSFloor)
	}
}
