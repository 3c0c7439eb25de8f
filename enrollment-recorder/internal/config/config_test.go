package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATASTORE", "")
	t.Setenv("DYNAMODB_TABLE_NAME", "pending-users")
	t.Setenv("RECORD_TTL", "")
	t.Setenv("AWS_REGION", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DataStore != "dynamodb" {
		t.Fatalf("expected dynamodb store by default, got %s", cfg.DataStore)
	}
	if cfg.RecordTTL != DefaultRecordTTL {
		t.Fatalf("expected default ttl, got %s", cfg.RecordTTL)
	}
	if cfg.DynamoDB.Region != "us-east-1" {
		t.Fatalf("expected default region, got %s", cfg.DynamoDB.Region)
	}
}

func TestLoad_RequiresTableForDynamoDB(t *testing.T) {
	t.Setenv("DATASTORE", "dynamodb")
	t.Setenv("DYNAMODB_TABLE_NAME", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected validation error without a table name")
	}
}

func TestLoad_MemoryStoreNeedsNoTable(t *testing.T) {
	t.Setenv("DATASTORE", "memory")
	t.Setenv("DYNAMODB_TABLE_NAME", "")
	t.Setenv("RECORD_TTL", "10m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.RecordTTL != 10*time.Minute {
		t.Fatalf("expected ttl override, got %s", cfg.RecordTTL)
	}
}

func TestLoad_RejectsUnknownStore(t *testing.T) {
	t.Setenv("DATASTORE", "postgres")

	if _, err := Load(); err == nil {
		t.Fatalf("expected validation error for unknown store")
	}
}
