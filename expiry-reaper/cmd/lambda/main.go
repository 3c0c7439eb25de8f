package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"

	"github.com/usersync/user-lifecycle/shared-libs/clients"
	"github.com/usersync/user-lifecycle/shared-libs/logging"
	sharedserver "github.com/usersync/user-lifecycle/shared-libs/server"

	"github.com/usersync/user-lifecycle/expiry-reaper/internal/config"
	"github.com/usersync/user-lifecycle/expiry-reaper/internal/teardown"
)

const serviceName = "expiry-reaper"

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Errorf("config error: %w", err))
	}

	logger := logging.NewLogger(serviceName)
	logger.Info("configuration loaded",
		"identityBackend", cfg.IdentityBackend,
		"requireTtlExpiry", cfg.Reaper.RequireTTLExpiry,
		"concurrency", cfg.Reaper.Concurrency,
	)

	reaper := teardown.NewReaper(newDirectory(cfg), logger,
		teardown.WithTTLExpiryFilter(cfg.Reaper.RequireTTLExpiry),
		teardown.WithConcurrency(cfg.Reaper.Concurrency),
	)

	if cfg.LocalAddr == "" {
		if err := sharedserver.Start(ctx, sharedserver.Function[events.DynamoDBEvent, struct{}]{
			Service: serviceName,
			Handler: func(ctx context.Context, event events.DynamoDBEvent) (struct{}, error) {
				return struct{}{}, reaper.Handle(ctx, event)
			},
		}, logger); err != nil {
			panic(err)
		}
		return
	}

	// Locally the batch report is returned so callers can see each entry's outcome.
	if err := sharedserver.Start(ctx, sharedserver.Function[events.DynamoDBEvent, teardown.Report]{
		Service:   serviceName,
		LocalAddr: cfg.LocalAddr,
		Handler: func(ctx context.Context, event events.DynamoDBEvent) (teardown.Report, error) {
			return reaper.Process(ctx, event), nil
		},
	}, logger); err != nil {
		panic(err)
	}
}

// newDirectory wires the configured identity backend. The Cognito client is
// built on first use and shared by every invocation served by this process.
func newDirectory(cfg config.Config) teardown.Directory {
	if cfg.IdentityBackend == "memory" {
		return teardown.NewMemoryDirectory(cfg.SeedUsers...)
	}

	handle := clients.NewHandle(func(ctx context.Context) (teardown.CognitoAPI, error) {
		awsCfg, err := clients.LoadAWSConfig(ctx, cfg.Cognito.Region)
		if err != nil {
			return nil, err
		}
		return cip.NewFromConfig(awsCfg, func(o *cip.Options) {
			if cfg.Cognito.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Cognito.Endpoint)
			}
		}), nil
	})
	return teardown.NewCognitoDirectory(handle.Get, cfg.Cognito.UserPoolID)
}
