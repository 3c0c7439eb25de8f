package events

import "time"

// AccountState tracks where an identity sits in its confirm-to-teardown lifecycle.
type AccountState string

const (
	// StateUnconfirmed is an account that has not finished signup verification.
	StateUnconfirmed AccountState = "unconfirmed"
	// StateTracked is a confirmed account with a pending-expiry record in the store.
	StateTracked AccountState = "tracked"
	// StateDisabled is an account that was disabled but not deleted. It is terminal
	// when the delete call fails or the process stops between the two calls.
	StateDisabled AccountState = "disabled"
	// StateDeleted is an account removed from the identity provider.
	StateDeleted AccountState = "deleted"
)

// UserEnrolled describes the record written when a confirmed user starts being tracked.
type UserEnrolled struct {
	UserID     string    `json:"userId"`
	Email      string    `json:"email,omitempty"`
	EnrolledAt time.Time `json:"enrolledAt"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

// UserTornDown is emitted when the reaper finishes with an identity, whatever state it reached.
type UserTornDown struct {
	UserID string       `json:"userId"`
	State  AccountState `json:"state"`
	At     time.Time    `json:"at"`
}
