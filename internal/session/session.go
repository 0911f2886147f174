package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/center-window/internal/dialog"
	"github.com/yourusername/center-window/internal/layout"
	"github.com/yourusername/center-window/internal/logging"
	"github.com/yourusername/center-window/internal/platform"
	"github.com/yourusername/center-window/internal/status"
	"github.com/yourusername/center-window/internal/window"
)

// State is where the current iteration is in the pipeline
type State int

const (
	Idle State = iota
	AwaitingClick
	ResolvingGeometry
	Centering
	Placed
)

// String returns the string representation of a State
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AwaitingClick:
		return "awaiting_click"
	case ResolvingGeometry:
		return "resolving_geometry"
	case Centering:
		return "centering"
	case Placed:
		return "placed"
	default:
		return "unknown"
	}
}

// Options configures a Session
type Options struct {
	PollInterval time.Duration // Button sampling interval while waiting for a click
	DryRun       bool          // Compute positions without moving windows

	// OnTransition, if set, is called on every state change.
	OnTransition func(from, to State)
}

// Session runs the prompt → click → confirm → center loop until the user
// cancels the first prompt. Nothing survives an iteration except its status.
type Session struct {
	backend  platform.Backend
	prompter dialog.Prompter
	opts     Options

	state State
	last  status.Status
}

// New creates a session in the Idle state with no previous status
func New(b platform.Backend, p dialog.Prompter, opts Options) *Session {
	return &Session{
		backend:  b,
		prompter: p,
		opts:     opts,
	}
}

// State returns the current state
func (s *Session) State() State {
	return s.state
}

// Last returns the status of the most recent iteration
func (s *Session) Last() status.Status {
	return s.last
}

func (s *Session) transition(to State) {
	from := s.state
	s.state = to
	if s.opts.OnTransition != nil && from != to {
		s.opts.OnTransition(from, to)
	}
}

// Run loops until the user cancels the first prompt, which returns nil. A
// prompter failure or ctx cancellation ends the loop with that error.
func (s *Session) Run(ctx context.Context) error {
	for {
		quit, err := s.Step(ctx)
		if err != nil {
			return err
		}
		if quit {
			logging.Info().Str("last", s.last.String()).Msg("user quit")
			return nil
		}
	}
}

// Step runs one iteration and reports whether the user chose to quit.
// Iteration failures are recorded in Last and are not returned.
func (s *Session) Step(ctx context.Context) (bool, error) {
	s.transition(Idle)

	proceed, err := s.prompter.Confirm(ctx, dialog.StageClick, dialog.ClickPrompt(s.last))
	if err != nil {
		return false, fmt.Errorf("click prompt: %w", err)
	}
	if !proceed {
		return true, nil
	}

	iteration := uuid.New().String()
	ictx := logging.WithContext(ctx, "iteration", iteration)
	st, err := s.iterate(ictx)
	if err != nil {
		s.transition(Idle)
		return false, err
	}

	s.last = st
	s.transition(Idle)

	log := logging.Ctx(ictx)
	ev := log.Info()
	if st.IsFailure() {
		ev = log.Warn()
	}
	ev.Str("status", st.String()).Msg("iteration finished")
	return false, nil
}

// iterate acquires, confirms and centers one window. Failures come back as a
// status; only errors that should stop the loop are returned as errors.
func (s *Session) iterate(ctx context.Context) (status.Status, error) {
	s.transition(AwaitingClick)

	h, err := window.Acquire(ctx, s.backend, s.opts.PollInterval)
	if err != nil {
		return s.outcome(ctx, err)
	}

	title, err := window.Title(s.backend, h)
	if err != nil {
		return s.outcome(ctx, err)
	}

	logging.Ctx(ctx).Info().
		Str("handle", h.String()).
		Str("title", title).
		Msg("window selected")

	proceed, err := s.prompter.Confirm(ctx, dialog.StageConfirm, dialog.ConfirmPrompt(title))
	if err != nil {
		return status.None, fmt.Errorf("confirm prompt: %w", err)
	}
	if !proceed {
		return status.CancelledByUser, nil
	}

	s.transition(ResolvingGeometry)
	_, err = window.Center(ctx, s.backend, h, window.CenterOpts{
		DryRun:     s.opts.DryRun,
		OnResolved: func(layout.Geometry) { s.transition(Centering) },
	})
	if err != nil {
		return s.outcome(ctx, err)
	}

	s.transition(Placed)
	return status.Success, nil
}

// outcome converts a stage error into the status carried to the next
// prompt. Untagged errors, such as ctx cancellation, end the loop.
func (s *Session) outcome(ctx context.Context, err error) (status.Status, error) {
	st, ok := status.FromError(err)
	if !ok {
		return status.None, err
	}
	logging.Ctx(ctx).Warn().
		Err(err).
		Str("state", s.state.String()).
		Msg("iteration failed")
	return st, nil
}
