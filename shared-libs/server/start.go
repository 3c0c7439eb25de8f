package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/go-chi/chi/v5"
)

// Function describes one deployable handler.
type Function[E any, R any] struct {
	Service string
	// LocalAddr switches from the Lambda runtime to a local HTTP invoke server when set.
	LocalAddr string
	Handler   func(context.Context, E) (R, error)
}

// Start hands the function to the Lambda runtime, or serves it on LocalAddr
// under POST /invoke for local development.
func Start[E any, R any](ctx context.Context, fn Function[E, R], logger *slog.Logger) error {
	if fn.LocalAddr == "" {
		logger.Info("lambda runtime starting")
		lambda.StartWithOptions(fn.Handler, lambda.WithContext(ctx), lambda.WithEnableSIGTERM(func() {
			logger.Info("lambda runtime shutting down")
		}))
		return nil
	}

	router := NewRouter(fn.Service, func(r chi.Router) {
		r.Post("/invoke", Invoke(logger, fn.Handler))
	})

	srv := &http.Server{
		Addr:              fn.LocalAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	if err := Run(ctx, srv, logger); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
