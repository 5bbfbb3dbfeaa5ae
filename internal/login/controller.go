package login

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"login-front/internal/session"
)

// KeyEnter is the DOM keyCode of the Enter key.
const KeyEnter = 13

const defaultTimeout = 30 * time.Second

// ErrSubmitInFlight is returned when a submission is already outstanding.
var ErrSubmitInFlight = errors.New("login: submission already in flight")

// SessionCreator turns credentials into an authenticated user.
type SessionCreator interface {
	CreateSession(ctx context.Context, email, password string) (session.User, error)
}

// State of the submission state machine.
type State int

const (
	Idle State = iota
	Submitting
	Authenticated
	Rejected
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Authenticated:
		return "authenticated"
	case Rejected:
		return "rejected"
	}
	return "unknown"
}

type OutcomeKind int

const (
	OutcomeIdle OutcomeKind = iota
	OutcomeSuccess
	OutcomeFailure
)

// Outcome is the result of the latest submission. User is set for
// OutcomeSuccess, Reason for OutcomeFailure.
type Outcome struct {
	Kind   OutcomeKind
	User   *session.User
	Reason error
}

// Controller drives one submission at a time from the form to the session
// endpoint and applies the result.
type Controller struct {
	form     *Form
	creator  SessionCreator
	sessions session.Store
	dispatch *Dispatcher
	timeout  time.Duration

	mu       sync.Mutex
	state    State
	outcome  Outcome
	onChange func(State)
}

type Option func(*Controller)

// WithTimeout bounds each session request. Zero or less disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Controller) { c.timeout = d }
}

func NewController(form *Form, creator SessionCreator, sessions session.Store, dispatch *Dispatcher, opts ...Option) *Controller {
	c := &Controller{
		form:     form,
		creator:  creator,
		sessions: sessions,
		dispatch: dispatch,
		timeout:  defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnStateChange registers fn to run after every transition, outside the
// controller's lock. Pass nil to stop notifications.
func (c *Controller) OnStateChange(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

func (c *Controller) notify(state State) {
	c.mu.Lock()
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn(state)
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Outcome() Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.outcome
}

// Submitting reports whether a request is outstanding.
func (c *Controller) Submitting() bool {
	return c.State() == Submitting
}

// Submit sends the form's credentials. It blocks until the request finishes
// and returns ErrSubmitInFlight, without sending anything, while another
// submission is outstanding.
func (c *Controller) Submit(ctx context.Context) (Outcome, error) {
	c.mu.Lock()
	if c.state == Submitting {
		c.mu.Unlock()
		return Outcome{}, ErrSubmitInFlight
	}
	c.state = Submitting
	c.outcome = Outcome{Kind: OutcomeIdle}
	c.mu.Unlock()

	c.form.ClearFailure()
	c.notify(Submitting)
	email, password := c.form.Credentials()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	log.Printf("login: creating session for %s", email)
	user, err := c.creator.CreateSession(ctx, email, password)
	if err != nil {
		log.Printf("login: session for %s rejected: %v", email, err)
		c.form.MarkFailed()
		return c.finish(Rejected, Outcome{Kind: OutcomeFailure, Reason: err}), nil
	}

	c.sessions.SetUser(user)
	c.dispatch.NotifyHostLoginSucceeded()
	c.dispatch.GoTo(RouteRoot)
	return c.finish(Authenticated, Outcome{Kind: OutcomeSuccess, User: &user}), nil
}

func (c *Controller) finish(state State, outcome Outcome) Outcome {
	c.mu.Lock()
	c.state = state
	c.outcome = outcome
	c.mu.Unlock()
	c.notify(state)
	return outcome
}

// HandleKey submits when keyCode is Enter and both fields are filled.
// Anything else leaves the state alone and reports the current outcome.
func (c *Controller) HandleKey(ctx context.Context, keyCode int) (Outcome, error) {
	if keyCode != KeyEnter || !c.form.IsSubmittable() {
		return c.Outcome(), nil
	}
	return c.Submit(ctx)
}

// CanSubmit reports whether the submit button should be enabled.
func (c *Controller) CanSubmit() bool {
	return c.form.IsSubmittable() && !c.Submitting()
}
