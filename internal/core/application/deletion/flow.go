// Package deletion implements the two-step user removal conversation:
// an admin proposes a deletion, then explicitly confirms or abandons it.
// Proposals live in memory; a restart simply drops unconfirmed ones.
package deletion

import (
	"context"
	"strings"
	"sync"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// Outcome reports how a confirmation step ended.
type Outcome string

const (
	// OutcomeDeleted means the user was removed.
	OutcomeDeleted Outcome = "deleted"
	// OutcomeAbandoned means the admin answered no.
	OutcomeAbandoned Outcome = "abandoned"
)

// Flow coordinates pending deletion proposals per admin. Safe for
// concurrent use.
type Flow struct {
	mu        sync.Mutex
	proposals map[int64]kernel.UserID // admin id -> proposed target

	handler commands.DeleteUserCommandHandler
}

// NewFlow creates a deletion flow over the delete-user command handler.
func NewFlow(handler commands.DeleteUserCommandHandler) *Flow {
	return &Flow{
		proposals: make(map[int64]kernel.UserID),
		handler:   handler,
	}
}

// Propose records the admin's intent to delete targetID. A new proposal
// replaces any earlier unconfirmed one by the same admin.
func (f *Flow) Propose(adminID, targetID kernel.UserID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}
	if err := targetID.Validate(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.proposals[adminID.Int64()] = targetID
	return nil
}

// Pending returns the target of the admin's unconfirmed proposal, if any.
func (f *Flow) Pending(adminID kernel.UserID) (kernel.UserID, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	targetID, ok := f.proposals[adminID.Int64()]
	return targetID, ok
}

// Confirm resolves the admin's pending proposal. Answer "yes" executes the
// deletion; "no" abandons it. Any other answer keeps the proposal pending.
func (f *Flow) Confirm(ctx context.Context, adminID kernel.UserID, answer string) (Outcome, error) {
	if err := adminID.Validate(); err != nil {
		return "", err
	}

	f.mu.Lock()
	targetID, ok := f.proposals[adminID.Int64()]
	f.mu.Unlock()

	if !ok {
		return "", errs.NewObjectNotFoundError("deletion proposal", adminID.Int64())
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "yes":
		cmd, err := commands.NewDeleteUserCommand(targetID)
		if err != nil {
			return "", err
		}
		if err := f.handler.Handle(ctx, cmd); err != nil {
			// The proposal stays pending so the admin can retry or abandon.
			return "", err
		}
		f.drop(adminID)
		return OutcomeDeleted, nil
	case "no":
		f.drop(adminID)
		return OutcomeAbandoned, nil
	default:
		return "", errs.NewValueIsInvalidError("answer")
	}
}

func (f *Flow) drop(adminID kernel.UserID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.proposals, adminID.Int64())
}
