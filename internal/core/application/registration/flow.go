// Package registration drives the multi-step role signup conversation.
//
// Each registering user walks a small state machine: pick a role, then for
// shops and couriers provide a name and a contact phone. Admin signup is
// immediate but restricted to the configured admin ids. Drafts live in
// memory until the terminal step persists the user, so an unfinished
// registration is lost on restart by design of the single-instance
// deployment.
package registration

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"dispatch/internal/core/application/events"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/timeutil"
)

// State identifies a step of the registration conversation.
type State string

const (
	StateAwaitingRole  State = "awaiting_role"
	StateAwaitingName  State = "awaiting_name"
	StateAwaitingPhone State = "awaiting_phone"
)

// ErrAlreadyRegistered is returned when a registered user starts a new
// registration without resetting the old one first.
var ErrAlreadyRegistered = errors.New("user is already registered, reset the current role first")

// AdminChecker reports whether an id belongs to the configured admin set.
type AdminChecker interface {
	IsAdmin(id kernel.UserID) bool
}

// StepResult tells the caller where the conversation stands after an input.
type StepResult struct {
	State     State  `json:"state,omitempty"`
	Prompt    string `json:"prompt"`
	Completed bool   `json:"completed"`
	Role      string `json:"role,omitempty"`
}

type session struct {
	state State
	role  user.Role
	name  string
}

type nameInput struct {
	Name string `validate:"required,min=2"`
}

type phoneInput struct {
	Phone string `validate:"required,min=5"`
}

// Flow is the in-memory registration coordinator. Safe for concurrent use.
type Flow struct {
	mu       sync.Mutex
	sessions map[int64]*session
	// ids whose persisted role may be overwritten by the next registration
	resets map[int64]struct{}

	uowFactory commands.UoWFactory
	admins     AdminChecker
	dispatcher events.Dispatcher
	validate   *validator.Validate
}

// NewFlow creates a registration flow.
func NewFlow(
	uowFactory commands.UoWFactory,
	admins AdminChecker,
	dispatcher events.Dispatcher,
) *Flow {
	return &Flow{
		sessions:   make(map[int64]*session),
		resets:     make(map[int64]struct{}),
		uowFactory: uowFactory,
		admins:     admins,
		dispatcher: dispatcher,
		validate:   validator.New(),
	}
}

// Step feeds one user input into the conversation and returns the next
// prompt. The first call (with empty input) opens the conversation.
func (f *Flow) Step(ctx context.Context, userID kernel.UserID, input string) (StepResult, error) {
	if err := userID.Validate(); err != nil {
		return StepResult{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.sessions[userID.Int64()]
	if !ok {
		return f.open(ctx, userID)
	}

	switch s.state {
	case StateAwaitingRole:
		return f.stepRole(ctx, userID, s, input)
	case StateAwaitingName:
		return f.stepName(userID, s, input)
	case StateAwaitingPhone:
		return f.stepPhone(ctx, userID, s, input)
	default:
		delete(f.sessions, userID.Int64())
		return StepResult{}, errs.NewValueIsInvalidError("registration state")
	}
}

// Cancel discards a draft registration. The persisted role, if any, stays.
func (f *Flow) Cancel(userID kernel.UserID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.sessions[userID.Int64()]
	delete(f.sessions, userID.Int64())
	return ok
}

// Reset discards the draft and allows the next registration to overwrite
// the user's persisted role.
func (f *Flow) Reset(userID kernel.UserID) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.sessions, userID.Int64())
	f.resets[userID.Int64()] = struct{}{}
}

func (f *Flow) open(ctx context.Context, userID kernel.UserID) (StepResult, error) {
	if _, resetting := f.resets[userID.Int64()]; !resetting {
		registered, err := f.isRegistered(ctx, userID)
		if err != nil {
			return StepResult{}, err
		}
		if registered {
			return StepResult{}, ErrAlreadyRegistered
		}
	}

	f.sessions[userID.Int64()] = &session{state: StateAwaitingRole}
	return StepResult{
		State:  StateAwaitingRole,
		Prompt: "Choose your role: shop, courier or admin.",
	}, nil
}

func (f *Flow) stepRole(
	ctx context.Context,
	userID kernel.UserID,
	s *session,
	input string,
) (StepResult, error) {
	role, err := user.RoleFromString(input)
	if err != nil {
		return StepResult{}, err
	}

	if role == user.RoleAdmin {
		if !f.admins.IsAdmin(userID) {
			return StepResult{}, errs.NewPermissionDeniedError(userID.Int64(), "register as admin")
		}
		if err := f.persist(ctx, userID, "Administrator", role); err != nil {
			return StepResult{}, err
		}
		delete(f.sessions, userID.Int64())
		return StepResult{
			Prompt:    "You are registered as admin.",
			Completed: true,
			Role:      role.String(),
		}, nil
	}

	s.role = role
	s.state = StateAwaitingName
	if role == user.RoleShop {
		return StepResult{State: s.state, Prompt: "Enter your shop name."}, nil
	}
	return StepResult{State: s.state, Prompt: "Enter your full name."}, nil
}

func (f *Flow) stepName(_ kernel.UserID, s *session, input string) (StepResult, error) {
	if err := f.validate.Struct(nameInput{Name: input}); err != nil {
		// Same state: the caller is asked again.
		return StepResult{}, errs.NewValueIsInvalidErrorWithCause("name", err)
	}

	s.name = input
	s.state = StateAwaitingPhone
	return StepResult{State: s.state, Prompt: "Enter your contact phone number."}, nil
}

func (f *Flow) stepPhone(
	ctx context.Context,
	userID kernel.UserID,
	s *session,
	input string,
) (StepResult, error) {
	if err := f.validate.Struct(phoneInput{Phone: input}); err != nil {
		return StepResult{}, errs.NewValueIsInvalidErrorWithCause("phone", err)
	}

	displayName := fmt.Sprintf("%s | %s", s.name, input)
	if err := f.persist(ctx, userID, displayName, s.role); err != nil {
		return StepResult{}, err
	}

	role := s.role
	delete(f.sessions, userID.Int64())
	return StepResult{
		Prompt:    fmt.Sprintf("You are registered as %s: %s.", role, displayName),
		Completed: true,
		Role:      role.String(),
	}, nil
}

func (f *Flow) isRegistered(ctx context.Context, userID kernel.UserID) (bool, error) {
	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	_, err := uow.UserRepository().Get(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (f *Flow) persist(
	ctx context.Context,
	userID kernel.UserID,
	displayName string,
	role user.Role,
) error {
	newUser, err := user.NewUser(userID, displayName, role, timeutil.NowString())
	if err != nil {
		return err
	}

	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	if _, getErr := userRepo.Get(ctx, userID); getErr == nil {
		err = userRepo.Update(ctx, newUser)
	} else if errors.Is(getErr, errs.ErrObjectNotFound) {
		err = userRepo.Add(ctx, newUser)
	} else {
		return getErr
	}
	if err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	delete(f.resets, userID.Int64())

	f.dispatcher.Publish(ctx, events.NewEvent(events.EventUserRegistered, events.UserRegisteredPayload{
		UserID:      userID,
		DisplayName: displayName,
		Role:        role,
	}))
	return nil
}
