package config

import (
	"fmt"
	"strings"

	"github.com/usersync/user-lifecycle/shared-libs/envconfig"
)

type Config struct {
	IdentityBackend string `validate:"required,oneof=cognito memory"`
	LocalAddr       string
	Cognito         CognitoConfig
	Reaper          ReaperConfig

	// SeedUsers pre-registers accounts in the memory backend for local runs.
	SeedUsers []string
}

type CognitoConfig struct {
	UserPoolID string `validate:"required_if=Enabled true"`
	Region     string `validate:"required"`
	Endpoint   string
	Enabled    bool
}

type ReaperConfig struct {
	// RequireTTLExpiry limits teardown to removals made by the DynamoDB TTL sweep.
	// Off by default: every removal is treated as an expiry.
	RequireTTLExpiry bool
	Concurrency      int `validate:"min=1"`
}

func Load() (Config, error) {
	requireTTL, err := envconfig.GetBool("REAPER_REQUIRE_TTL_EXPIRY", false)
	if err != nil {
		return Config{}, err
	}
	concurrency, err := envconfig.GetInt("REAPER_CONCURRENCY", 1)
	if err != nil {
		return Config{}, err
	}

	backend := envconfig.Get("IDENTITY_BACKEND", "cognito")
	cfg := Config{
		IdentityBackend: backend,
		LocalAddr:       envconfig.Get("LOCAL_INVOKE_ADDR", ""),
		SeedUsers:       splitList(envconfig.Get("MEMORY_SEED_USERS", "")),
		Cognito: CognitoConfig{
			UserPoolID: envconfig.Get("USER_POOL_ID", ""),
			Region:     envconfig.Get("COGNITO_REGION", "ap-south-1"),
			Endpoint:   envconfig.Get("COGNITO_ENDPOINT", ""),
			Enabled:    backend == "cognito",
		},
		Reaper: ReaperConfig{
			RequireTTLExpiry: requireTTL,
			Concurrency:      concurrency,
		},
	}
	if err := envconfig.Validate(cfg); err != nil {
		return cfg, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
