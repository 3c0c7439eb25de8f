package teardown

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"golang.org/x/sync/errgroup"

	sharederrors "github.com/usersync/user-lifecycle/shared-libs/errors"
	lifecycle "github.com/usersync/user-lifecycle/shared-libs/events"
	"github.com/usersync/user-lifecycle/shared-libs/logging"
)

// Reaper tears down identities whose pending-expiry record was removed.
type Reaper struct {
	directory        Directory
	logger           *slog.Logger
	requireTTLExpiry bool
	concurrency      int
	now              func() time.Time
}

// Option customises a Reaper.
type Option func(*Reaper)

// WithTTLExpiryFilter only tears down identities whose record was removed by the
// store's TTL sweep. Off by default, so any removal triggers a teardown.
func WithTTLExpiryFilter(enabled bool) Option {
	return func(r *Reaper) {
		r.requireTTLExpiry = enabled
	}
}

// WithConcurrency bounds how many entries are handled at once. With 1 (the
// default) entries are handled strictly in delivery order.
func WithConcurrency(n int) Option {
	return func(r *Reaper) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Reaper) {
		r.now = now
	}
}

// NewReaper creates a Reaper calling into directory.
func NewReaper(directory Directory, logger *slog.Logger, opts ...Option) *Reaper {
	r := &Reaper{
		directory:   directory,
		logger:      logger,
		concurrency: 1,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Handle is the stream trigger entrypoint. It never returns an error: a failed
// entry is logged and skipped, and failing the batch would redeliver entries
// that were already torn down.
func (r *Reaper) Handle(ctx context.Context, event events.DynamoDBEvent) error {
	r.Process(ctx, event)
	return nil
}

// Process handles every entry of the batch and reports what happened to each.
func (r *Reaper) Process(ctx context.Context, event events.DynamoDBEvent) Report {
	logger := logging.ForInvocation(ctx, r.logger)
	logger.Info("received stream batch", "records", len(event.Records))

	outcomes := make([]Outcome, len(event.Records))

	// Plain Group: one entry's failure must not cancel the others.
	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for i, record := range event.Records {
		i, record := i, record
		g.Go(func() error {
			outcomes[i] = r.processRecord(ctx, logger, record)
			return nil
		})
	}
	_ = g.Wait()

	report := newReport(outcomes)
	logger.Info("stream batch processed",
		"deleted", report.Deleted,
		"disabled", report.Disabled,
		"failed", report.Failed,
		"skipped", report.Skipped,
	)
	return report
}

func (r *Reaper) processRecord(ctx context.Context, logger *slog.Logger, record events.DynamoDBEventRecord) Outcome {
	outcome := Outcome{EventID: record.EventID}
	logger = logger.With("eventId", record.EventID)

	if record.EventName != string(events.DynamoDBOperationTypeRemove) {
		outcome.Skipped = SkipNotRemoval
		return outcome
	}

	if r.requireTTLExpiry && !removedByTTL(record) {
		logger.Info("skipping removal not made by the ttl sweep", "userIdentity", record.UserIdentity)
		outcome.Skipped = SkipNotTTLExpiry
		return outcome
	}

	snapshot, err := decodeSnapshot(record.Change.OldImage)
	if err != nil {
		logger.Warn("skipping malformed removal entry",
			"kind", sharederrors.KindOf(err),
			"keys", record.Change.Keys,
			"error", err,
		)
		outcome.Skipped = SkipMalformed
		outcome.Err = err
		outcome.Error = err.Error()
		return outcome
	}

	outcome.UserID = snapshot.UserID
	logger = logger.With("userId", snapshot.UserID)
	logger.Info("processing expired user", "expireAt", snapshot.ExpireAt)

	outcome.State, outcome.Err = r.teardown(ctx, logger, snapshot.UserID)

	outcome.TornDown = &lifecycle.UserTornDown{UserID: snapshot.UserID, State: outcome.State, At: r.now().UTC()}
	if outcome.Err != nil {
		outcome.Error = outcome.Err.Error()
		logger.Error("failed to disable or delete user",
			slog.Any("tornDown", outcome.TornDown),
			"kind", sharederrors.KindOf(outcome.Err),
			"error", outcome.Err,
		)
		return outcome
	}

	logger.Info("user torn down", slog.Any("tornDown", outcome.TornDown))
	return outcome
}

// teardown disables and then deletes userID. Delete is only attempted after a
// successful disable. The returned state is the last one reached.
func (r *Reaper) teardown(ctx context.Context, logger *slog.Logger, userID string) (lifecycle.AccountState, error) {
	if err := r.directory.DisableUser(ctx, userID); err != nil {
		return lifecycle.StateTracked, fmt.Errorf("disable user %s: %w", userID, err)
	}
	logger.Info("user disabled")

	if err := r.directory.DeleteUser(ctx, userID); err != nil {
		return lifecycle.StateDisabled, fmt.Errorf("delete user %s: %w", userID, err)
	}
	logger.Info("user deleted")

	return lifecycle.StateDeleted, nil
}

func removedByTTL(record events.DynamoDBEventRecord) bool {
	identity := record.UserIdentity
	return identity != nil && identity.Type == "Service" && identity.PrincipalID == TTLPrincipal
}
