package teardown

import (
	"context"
	"errors"

	lifecycle "github.com/usersync/user-lifecycle/shared-libs/events"
)

// TTLPrincipal is the principal DynamoDB reports for deletions made by its TTL sweep.
const TTLPrincipal = "dynamodb.amazonaws.com"

var (
	// ErrMissingOldImage indicates a removal entry without a before snapshot.
	ErrMissingOldImage = errors.New("removal entry has no old image")
	// ErrMissingUserID indicates a snapshot without a usable userId attribute.
	ErrMissingUserID = errors.New("old image missing userId")
	// ErrUserNotFound is returned by directories that do not know the user.
	ErrUserNotFound = errors.New("user not found")
	// ErrNotDisabled is returned when deleting an account that was never disabled.
	ErrNotDisabled = errors.New("user must be disabled before deletion")
)

// Directory is the identity provider's account store, keyed by username.
type Directory interface {
	DisableUser(ctx context.Context, username string) error
	DeleteUser(ctx context.Context, username string) error
}

// SkipReason explains why an entry produced no identity calls.
type SkipReason string

const (
	SkipNotRemoval   SkipReason = "not_removal"
	SkipNotTTLExpiry SkipReason = "not_ttl_expiry"
	SkipMalformed    SkipReason = "malformed"
)

// Snapshot is the part of the removed record the reaper cares about.
type Snapshot struct {
	UserID   string
	Email    string
	ExpireAt int64
}

// Outcome is the result of one stream entry. TornDown is set whenever the
// identity calls were attempted and records the last state reached.
type Outcome struct {
	EventID  string                  `json:"eventId"`
	UserID   string                  `json:"userId,omitempty"`
	State    lifecycle.AccountState  `json:"state,omitempty"`
	Skipped  SkipReason              `json:"skipped,omitempty"`
	TornDown *lifecycle.UserTornDown `json:"tornDown,omitempty"`
	Err      error                   `json:"-"`
	Error    string                  `json:"error,omitempty"`
}

// Report summarises one batch.
type Report struct {
	Outcomes []Outcome `json:"outcomes"`
	Deleted  int       `json:"deleted"`
	Disabled int       `json:"disabled"`
	Failed   int       `json:"failed"`
	Skipped  int       `json:"skipped"`
}

func newReport(outcomes []Outcome) Report {
	report := Report{Outcomes: outcomes}
	for _, o := range outcomes {
		switch {
		case o.Skipped != "":
			report.Skipped++
		case o.State == lifecycle.StateDeleted:
			report.Deleted++
		case o.State == lifecycle.StateDisabled:
			// disabled but delete failed
			report.Disabled++
			report.Failed++
		default:
			report.Failed++
		}
	}
	return report
}
