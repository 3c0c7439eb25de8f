package logging

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
)

// NewLogger returns a slog logger configured for CloudWatch Logs JSON ingestion.
func NewLogger(service string) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{AddSource: true})
	return slog.New(handler).With(slog.String("service", service))
}

// WithRequestID attaches a request identifier to the logger context.
func WithRequestID(ctx context.Context, logger *slog.Logger, requestID string) *slog.Logger {
	return logger.With(slog.String("requestId", requestID))
}

// ForInvocation returns a logger scoped to the current function invocation.
// The Lambda request id is used when present, otherwise a random one is minted.
func ForInvocation(ctx context.Context, logger *slog.Logger) *slog.Logger {
	return WithRequestID(ctx, logger, RequestID(ctx))
}

// RequestID extracts the Lambda request id from ctx or generates a new one.
func RequestID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return uuid.NewString()
}
