package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.APIPort != "8080" {
		t.Fatalf("APIPort = %q, want 8080", cfg.APIPort)
	}
	if cfg.MaxUploadBytes != 10<<20 {
		t.Fatalf("MaxUploadBytes = %d, want 10MiB", cfg.MaxUploadBytes)
	}
	if cfg.APIRateLimitRPS != 50 {
		t.Fatalf("APIRateLimitRPS = %v, want 50", cfg.APIRateLimitRPS)
	}
	if cfg.BackpressureWait != 100*time.Millisecond {
		t.Fatalf("BackpressureWait = %v, want 100ms", cfg.BackpressureWait)
	}
	if cfg.NATSEnabled {
		t.Fatal("NATSEnabled = true, want false by default")
	}
	if cfg.NATSSubject != "certificates.parsed" {
		t.Fatalf("NATSSubject = %q", cfg.NATSSubject)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("MAX_UPLOAD_BYTES", "1048576")
	t.Setenv("API_RATE_LIMIT_RPS", "5.5")
	t.Setenv("NATS_ENABLED", "true")

	cfg := Load()
	if cfg.APIPort != "9090" {
		t.Fatalf("APIPort = %q, want 9090", cfg.APIPort)
	}
	if cfg.MaxUploadBytes != 1048576 {
		t.Fatalf("MaxUploadBytes = %d, want 1048576", cfg.MaxUploadBytes)
	}
	if cfg.APIRateLimitRPS != 5.5 {
		t.Fatalf("APIRateLimitRPS = %v, want 5.5", cfg.APIRateLimitRPS)
	}
	if !cfg.NATSEnabled {
		t.Fatal("NATSEnabled = false, want true")
	}
}

func TestLoadFallsBackOnGarbage(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "lots")
	t.Setenv("API_RATE_LIMIT_BURST", "many")
	t.Setenv("NATS_ENABLED", "maybe")

	cfg := Load()
	if cfg.MaxUploadBytes != 10<<20 {
		t.Fatalf("MaxUploadBytes = %d, want default", cfg.MaxUploadBytes)
	}
	if cfg.APIRateLimitBurst != 100 {
		t.Fatalf("APIRateLimitBurst = %d, want default", cfg.APIRateLimitBurst)
	}
	if cfg.NATSEnabled {
		t.Fatal("NATSEnabled = true, want default false")
	}
}
