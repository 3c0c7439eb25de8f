package config

import (
	"fmt"
	"time"

	"github.com/usersync/user-lifecycle/shared-libs/envconfig"
)

// Default pending-expiry window applied to newly confirmed users.
const DefaultRecordTTL = 3 * time.Minute

type Config struct {
	DataStore string        `validate:"required,oneof=dynamodb firestore memory"`
	RecordTTL time.Duration `validate:"gt=0"`
	LocalAddr string
	DynamoDB  DynamoDBConfig
	Firestore FirestoreConfig
}

type DynamoDBConfig struct {
	TableName string `validate:"required_if=Enabled true"`
	Region    string `validate:"required"`
	Endpoint  string
	Enabled   bool
}

type FirestoreConfig struct {
	GCPProjectID string `validate:"required_if=Enabled true"`
	Database     string `validate:"required"`
	Collection   string `validate:"required"`
	Enabled      bool
}

func Load() (Config, error) {
	ttl, err := envconfig.GetDuration("RECORD_TTL", DefaultRecordTTL)
	if err != nil {
		return Config{}, err
	}

	store := envconfig.Get("DATASTORE", "dynamodb")
	cfg := Config{
		DataStore: store,
		RecordTTL: ttl,
		LocalAddr: envconfig.Get("LOCAL_INVOKE_ADDR", ""),
		DynamoDB: DynamoDBConfig{
			TableName: envconfig.Get("DYNAMODB_TABLE_NAME", ""),
			Region:    envconfig.Get("AWS_REGION", "us-east-1"),
			Endpoint:  envconfig.Get("DYNAMODB_ENDPOINT", ""),
			Enabled:   store == "dynamodb",
		},
		Firestore: FirestoreConfig{
			GCPProjectID: envconfig.Get("GCP_PROJECT_ID", ""),
			Database:     envconfig.Get("FIRESTORE_DATABASE", "(default)"),
			Collection:   envconfig.Get("FIRESTORE_COLLECTION", "pending_users"),
			Enabled:      store == "firestore",
		},
	}
	if err := envconfig.Validate(cfg); err != nil {
		return cfg, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
