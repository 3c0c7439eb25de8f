package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("IDENTITY_BACKEND", "")
	t.Setenv("USER_POOL_ID", "ap-south-1_pool")
	t.Setenv("COGNITO_REGION", "")
	t.Setenv("REAPER_REQUIRE_TTL_EXPIRY", "")
	t.Setenv("REAPER_CONCURRENCY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.IdentityBackend != "cognito" || cfg.Cognito.Region != "ap-south-1" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Reaper.RequireTTLExpiry {
		t.Fatalf("expected ttl filter to be off by default")
	}
	if cfg.Reaper.Concurrency != 1 {
		t.Fatalf("expected sequential processing by default, got %d", cfg.Reaper.Concurrency)
	}
}

func TestLoad_RequiresPoolForCognito(t *testing.T) {
	t.Setenv("IDENTITY_BACKEND", "cognito")
	t.Setenv("USER_POOL_ID", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected validation error without a user pool id")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("IDENTITY_BACKEND", "memory")
	t.Setenv("USER_POOL_ID", "")
	t.Setenv("REAPER_REQUIRE_TTL_EXPIRY", "true")
	t.Setenv("REAPER_CONCURRENCY", "8")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.Reaper.RequireTTLExpiry || cfg.Reaper.Concurrency != 8 {
		t.Fatalf("unexpected reaper config: %+v", cfg.Reaper)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	t.Setenv("IDENTITY_BACKEND", "memory")
	t.Setenv("REAPER_CONCURRENCY", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected validation error for zero concurrency")
	}

	t.Setenv("REAPER_CONCURRENCY", "1")
	t.Setenv("REAPER_REQUIRE_TTL_EXPIRY", "sometimes")
	if _, err := Load(); err == nil {
		t.Fatalf("expected parse error for invalid bool")
	}
}

func TestLoad_SeedUsers(t *testing.T) {
	t.Setenv("IDENTITY_BACKEND", "memory")
	t.Setenv("REAPER_CONCURRENCY", "")
	t.Setenv("REAPER_REQUIRE_TTL_EXPIRY", "")
	t.Setenv("MEMORY_SEED_USERS", " abc-123, ,def-456 ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(cfg.SeedUsers) != 2 || cfg.SeedUsers[0] != "abc-123" || cfg.SeedUsers[1] != "def-456" {
		t.Fatalf("unexpected seed users: %v", cfg.SeedUsers)
	}
}
