package config

import (
	"reflect"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"STORAGE_DRIVER", "SERVER_PORT", "JWT_TTL", "BCRYPT_COST", "REDIS_URL",
		"CACHE_TTL", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "LOG_LEVEL", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.StorageDriver != StoragePostgres {
		t.Errorf("StorageDriver = %q", cfg.StorageDriver)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("Addr = %q", cfg.Addr())
	}
	if cfg.JWTTTL != 24*time.Hour || cfg.CacheTTL != 2*time.Hour {
		t.Errorf("unexpected ttls %s %s", cfg.JWTTTL, cfg.CacheTTL)
	}
	if cfg.BcryptCost != 10 || cfg.RateLimitRPS != 20 || cfg.RateLimitBurst != 40 {
		t.Errorf("unexpected numeric defaults %+v", cfg)
	}
	if cfg.RedisURL != "" || cfg.CORSAllowedOrigins != nil {
		t.Errorf("expected cache and CORS list disabled by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Memory")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_TTL", "30m")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.local, ,http://b.local")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.StorageDriver != StorageMemory || cfg.Addr() != ":9090" {
		t.Errorf("unexpected driver/addr %q %q", cfg.StorageDriver, cfg.Addr())
	}
	if cfg.JWTTTL != 30*time.Minute || cfg.BcryptCost != 12 || cfg.RateLimitRPS != 2.5 {
		t.Errorf("unexpected overrides %+v", cfg)
	}
	want := []string{"http://a.local", "http://b.local"}
	if !reflect.DeepEqual(cfg.CORSAllowedOrigins, want) {
		t.Errorf("CORSAllowedOrigins = %v, want %v", cfg.CORSAllowedOrigins, want)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("BCRYPT_COST", "abc")
	t.Setenv("CACHE_TTL", "tomorrow")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BcryptCost != 10 || cfg.CacheTTL != 2*time.Hour {
		t.Errorf("expected defaults on parse errors, got %d %s", cfg.BcryptCost, cfg.CacheTTL)
	}
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "mongo")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestLoad_RejectsNonPositiveRateLimit(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("RATE_LIMIT_BURST", "-1")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative burst")
	}
}
