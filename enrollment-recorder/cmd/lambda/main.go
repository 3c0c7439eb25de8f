package main

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/usersync/user-lifecycle/shared-libs/clients"
	"github.com/usersync/user-lifecycle/shared-libs/logging"
	sharedserver "github.com/usersync/user-lifecycle/shared-libs/server"

	"github.com/usersync/user-lifecycle/enrollment-recorder/internal/config"
	"github.com/usersync/user-lifecycle/enrollment-recorder/internal/enrollment"
)

const serviceName = "enrollment-recorder"

type confirmationEvent = events.CognitoEventUserPoolsPostConfirmation

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Errorf("config error: %w", err))
	}

	logger := logging.NewLogger(serviceName)
	logger.Info("configuration loaded", "dataStore", cfg.DataStore, "recordTtl", cfg.RecordTTL.String())

	recorder := enrollment.NewRecorder(newRepository(cfg), logger, enrollment.WithExpiryOffset(cfg.RecordTTL))

	if err := sharedserver.Start(ctx, sharedserver.Function[confirmationEvent, confirmationEvent]{
		Service:   serviceName,
		LocalAddr: cfg.LocalAddr,
		Handler:   recorder.Handle,
	}, logger); err != nil {
		panic(err)
	}
}

// newRepository wires the configured store. Clients are built on first use and
// shared by every invocation served by this process.
func newRepository(cfg config.Config) enrollment.Repository {
	switch cfg.DataStore {
	case "firestore":
		handle := clients.NewHandle(func(ctx context.Context) (*firestore.Client, error) {
			client, err := firestore.NewClientWithDatabase(ctx, cfg.Firestore.GCPProjectID, cfg.Firestore.Database)
			if err != nil {
				return nil, fmt.Errorf("firestore client: %w", err)
			}
			return client, nil
		})
		return enrollment.NewFirestoreRepository(handle.Get, cfg.Firestore.Collection)
	case "memory":
		return enrollment.NewMemoryRepository()
	default:
		handle := clients.NewHandle(func(ctx context.Context) (enrollment.PutItemAPI, error) {
			awsCfg, err := clients.LoadAWSConfig(ctx, cfg.DynamoDB.Region)
			if err != nil {
				return nil, err
			}
			return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
				if cfg.DynamoDB.Endpoint != "" {
					o.BaseEndpoint = aws.String(cfg.DynamoDB.Endpoint)
				}
			}), nil
		})
		return enrollment.NewDynamoRepository(handle.Get, cfg.DynamoDB.TableName)
	}
}
