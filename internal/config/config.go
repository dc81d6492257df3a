package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth (optional; empty disables bearer auth)
	APIKey string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Job state
	JobTTL time.Duration

	// Detection defaults
	MaxLevel        int
	MinCharCount    int
	ZoneFraction    float64
	RepeatThreshold float64

	// Interactive edit
	Editor string
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8088"),

		APIKey: os.Getenv("PDFTOC_API_KEY"),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 100),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),

		MaxLevel:        envInt("MAX_LEVEL", 0),
		MinCharCount:    envInt("MIN_CHAR_COUNT", 64),
		ZoneFraction:    envFloat("ZONE_FRACTION", 0.08),
		RepeatThreshold: envFloat("REPEAT_THRESHOLD", 0.3),

		Editor: envOr("EDITOR", "vi"),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}
	if cfg.MinCharCount <= 0 {
		cfg.MinCharCount = 64
	}

	return cfg
}

func (c Config) Validate() error {
	if c.MaxLevel < 0 {
		return fmt.Errorf("MAX_LEVEL must be >= 0")
	}
	if c.ZoneFraction <= 0 || c.ZoneFraction >= 0.5 {
		return fmt.Errorf("ZONE_FRACTION must be in (0, 0.5)")
	}
	if c.RepeatThreshold <= 0 || c.RepeatThreshold > 1 {
		return fmt.Errorf("REPEAT_THRESHOLD must be in (0, 1]")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
