package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	// Make sure ambient env does not leak into the defaults under test.
	for _, key := range []string{
		"PORT", "PDFTOC_API_KEY", "WORKER_COUNT", "MAX_QUEUE_SIZE",
		"MAX_UPLOAD_BYTES", "JOB_TTL", "MAX_LEVEL", "MIN_CHAR_COUNT",
		"ZONE_FRACTION", "REPEAT_THRESHOLD", "EDITOR",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8088" {
		t.Errorf("expected default port 8088, got %s", cfg.Port)
	}
	if cfg.WorkerCount != 4 || cfg.MaxQueueSize != 100 {
		t.Errorf("unexpected pool defaults: %+v", cfg)
	}
	if cfg.JobTTL != time.Hour {
		t.Errorf("expected 1h job TTL, got %v", cfg.JobTTL)
	}
	if cfg.MaxLevel != 0 {
		t.Errorf("expected unlimited depth by default, got %d", cfg.MaxLevel)
	}
	if cfg.ZoneFraction != 0.08 || cfg.RepeatThreshold != 0.3 || cfg.MinCharCount != 64 {
		t.Errorf("unexpected detection defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("WORKER_COUNT", "2")
	t.Setenv("MAX_LEVEL", "3")
	t.Setenv("ZONE_FRACTION", "0.12")
	t.Setenv("JOB_TTL", "30m")

	cfg := Load()
	if cfg.Port != "9000" || cfg.WorkerCount != 2 || cfg.MaxLevel != 3 {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
	if cfg.ZoneFraction != 0.12 {
		t.Errorf("expected zone fraction 0.12, got %v", cfg.ZoneFraction)
	}
	if cfg.JobTTL != 30*time.Minute {
		t.Errorf("expected 30m TTL, got %v", cfg.JobTTL)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("WORKER_COUNT", "not-a-number")
	t.Setenv("MAX_QUEUE_SIZE", "-5")

	cfg := Load()
	if cfg.WorkerCount != 4 || cfg.MaxQueueSize != 100 {
		t.Errorf("expected fallbacks for bad values, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	cfg := Load()

	bad := cfg
	bad.MaxLevel = -1
	if err := bad.Validate(); err == nil {
		t.Error("expected negative max level rejected")
	}

	bad = cfg
	bad.ZoneFraction = 0.6
	if err := bad.Validate(); err == nil {
		t.Error("expected zone fraction >= 0.5 rejected")
	}

	bad = cfg
	bad.RepeatThreshold = 1.5
	if err := bad.Validate(); err == nil {
		t.Error("expected repeat threshold > 1 rejected")
	}
}
