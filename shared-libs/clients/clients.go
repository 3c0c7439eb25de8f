// Package clients builds cloud SDK clients once per process and hands them out
// across invocations.
package clients

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
)

// LoadAWSConfig resolves the default credential chain pinned to region.
func LoadAWSConfig(ctx context.Context, region string) (aws.Config, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	return cfg, nil
}

// Handle lazily builds a client on first use and reuses it afterwards.
// A failed build is not cached; the next Get tries again.
type Handle[T any] struct {
	mu     sync.Mutex
	build  func(context.Context) (T, error)
	client T
	ready  bool
}

// NewHandle returns a Handle that calls build the first time a client is requested.
func NewHandle[T any](build func(context.Context) (T, error)) *Handle[T] {
	return &Handle[T]{build: build}
}

// Get returns the shared client, building it if needed.
func (h *Handle[T]) Get(ctx context.Context) (T, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.ready {
		return h.client, nil
	}

	client, err := h.build(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	h.client = client
	h.ready = true
	return client, nil
}
