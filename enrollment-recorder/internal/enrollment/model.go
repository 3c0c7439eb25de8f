package enrollment

import (
	"context"
	"errors"
	"time"

	"github.com/usersync/user-lifecycle/shared-libs/events"
)

// TriggerPostConfirmation is the Cognito trigger source emitted once a user completes signup verification.
const TriggerPostConfirmation = "PostConfirmation_ConfirmSignUp"

// DefaultExpiryOffset is how long a confirmed user is tracked before the store expires the record.
const DefaultExpiryOffset = 3 * time.Minute

// createdAtLayout is ISO-8601 with millisecond precision in UTC.
const createdAtLayout = "2006-01-02T15:04:05.000Z07:00"

var (
	// ErrMissingUserID indicates the confirmation event carried no subject claim.
	ErrMissingUserID = errors.New("user attributes missing sub")
	// ErrUnexpectedTrigger indicates an event from a trigger other than post-confirmation.
	ErrUnexpectedTrigger = errors.New("unexpected trigger source")
)

// Record is the pending-expiry row keyed by the identity provider's subject claim.
type Record struct {
	UserID    string `json:"userId" dynamodbav:"userId"`
	Email     string `json:"email,omitempty" dynamodbav:"email,omitempty"`
	CreatedAt string `json:"createdAt" dynamodbav:"createdAt"`
	ExpireAt  int64  `json:"expireAt" dynamodbav:"expireAt"`
}

// NewRecord shapes a record for userID created at now and expiring after offset.
func NewRecord(userID, email string, now time.Time, offset time.Duration) Record {
	return Record{
		UserID:    userID,
		Email:     email,
		CreatedAt: now.UTC().Format(createdAtLayout),
		ExpireAt:  now.Unix() + int64(offset/time.Second),
	}
}

// Enrolled describes the record as a lifecycle payload.
func (r Record) Enrolled(now time.Time) events.UserEnrolled {
	return events.UserEnrolled{
		UserID:     r.UserID,
		Email:      r.Email,
		EnrolledAt: now.UTC(),
		ExpiresAt:  time.Unix(r.ExpireAt, 0).UTC(),
	}
}

// Repository persists pending-expiry records.
type Repository interface {
	Put(ctx context.Context, record Record) error
}
