package enrollment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"

	sharederrors "github.com/usersync/user-lifecycle/shared-libs/errors"
	"github.com/usersync/user-lifecycle/shared-libs/logging"
)

// Recorder copies confirmed users into the pending-expiry store.
type Recorder struct {
	repo   Repository
	logger *slog.Logger
	offset time.Duration
	now    func() time.Time
}

// Option customises a Recorder.
type Option func(*Recorder)

// WithExpiryOffset overrides DefaultExpiryOffset.
func WithExpiryOffset(offset time.Duration) Option {
	return func(r *Recorder) {
		if offset > 0 {
			r.offset = offset
		}
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) {
		r.now = now
	}
}

// NewRecorder creates a Recorder writing to repo.
func NewRecorder(repo Repository, logger *slog.Logger, opts ...Option) *Recorder {
	r := &Recorder{
		repo:   repo,
		logger: logger,
		offset: DefaultExpiryOffset,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Handle processes a Cognito post-confirmation event. The event is always
// returned unchanged with a nil error: failing here would abort the user's
// confirmation flow, so every problem is logged and swallowed.
func (r *Recorder) Handle(ctx context.Context, event events.CognitoEventUserPoolsPostConfirmation) (events.CognitoEventUserPoolsPostConfirmation, error) {
	logger := logging.ForInvocation(ctx, r.logger).With("triggerSource", event.TriggerSource)

	if event.TriggerSource != TriggerPostConfirmation {
		logger.Info("skipping event from unexpected trigger",
			"expected", TriggerPostConfirmation,
			"error", ErrUnexpectedTrigger,
		)
		return event, nil
	}

	// The sub is stored verbatim: it is the Cognito username the reaper deletes by.
	userID := event.Request.UserAttributes["sub"]
	if strings.TrimSpace(userID) == "" {
		err := sharederrors.Malformed("read user attributes", ErrMissingUserID)
		logger.Warn("skipping event with invalid user attributes",
			"userName", event.UserName,
			"userPoolId", event.UserPoolID,
			"kind", sharederrors.KindOf(err),
			"error", err,
		)
		return event, nil
	}

	if err := r.record(ctx, logger, userID, event.Request.UserAttributes["email"]); err != nil {
		logger.Error("failed to record confirmed user",
			"userId", userID,
			"kind", sharederrors.KindOf(err),
			"error", err,
		)
	}

	return event, nil
}

func (r *Recorder) record(ctx context.Context, logger *slog.Logger, userID, email string) error {
	now := r.now()
	record := NewRecord(userID, email, now, r.offset)

	logger.Info("recording confirmed user", "userId", userID, "expireAt", record.ExpireAt)

	if err := r.repo.Put(ctx, record); err != nil {
		return fmt.Errorf("put record %s: %w", userID, err)
	}

	logger.Info("confirmed user recorded", slog.Any("enrolled", record.Enrolled(now)))
	return nil
}
