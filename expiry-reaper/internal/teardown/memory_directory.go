package teardown

import (
	"context"
	"fmt"
	"sync"

	sharederrors "github.com/usersync/user-lifecycle/shared-libs/errors"
	lifecycle "github.com/usersync/user-lifecycle/shared-libs/events"
)

// MemoryDirectory is an in-process identity store for local invoke runs and tests.
// Deleted accounts stay visible with StateDeleted.
type MemoryDirectory struct {
	mu       sync.RWMutex
	accounts map[string]lifecycle.AccountState
}

// NewMemoryDirectory seeds a directory with confirmed, tracked accounts.
func NewMemoryDirectory(usernames ...string) *MemoryDirectory {
	d := &MemoryDirectory{accounts: make(map[string]lifecycle.AccountState, len(usernames))}
	for _, username := range usernames {
		d.accounts[username] = lifecycle.StateTracked
	}
	return d
}

// Add registers username as a tracked account.
func (d *MemoryDirectory) Add(username string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.accounts[username] = lifecycle.StateTracked
}

// State returns the account state of username.
func (d *MemoryDirectory) State(username string) (lifecycle.AccountState, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	state, ok := d.accounts[username]
	return state, ok
}

func (d *MemoryDirectory) DisableUser(_ context.Context, username string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	state, ok := d.accounts[username]
	if !ok || state == lifecycle.StateDeleted {
		return sharederrors.Remote("disable user", fmt.Errorf("%s: %w", username, ErrUserNotFound))
	}
	d.accounts[username] = lifecycle.StateDisabled
	return nil
}

func (d *MemoryDirectory) DeleteUser(_ context.Context, username string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	state, ok := d.accounts[username]
	if !ok || state == lifecycle.StateDeleted {
		return sharederrors.Remote("delete user", fmt.Errorf("%s: %w", username, ErrUserNotFound))
	}
	if state != lifecycle.StateDisabled {
		return sharederrors.Remote("delete user", fmt.Errorf("%s: %w", username, ErrNotDisabled))
	}
	d.accounts[username] = lifecycle.StateDeleted
	return nil
}
