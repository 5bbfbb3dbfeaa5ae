package login_test

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"login-front/internal/api"
	"login-front/internal/login"
)

func TestSubmit_Success(t *testing.T) {
	srv, hits := sessionServer(t, http.StatusOK, `{"id":1,"name":"A"}`)
	f := newFixture(api.New(srv.URL, srv.Client()), nil)

	f.screen.Form.SetEmail("a@b.com")
	f.screen.Form.SetPassword("secret")

	outcome, err := f.screen.Controller.Submit(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if outcome.Kind != login.OutcomeSuccess {
		t.Fatalf("Expected success, received %+v", outcome)
	}
	if atomic.LoadInt32(hits) != 1 {
		t.Errorf("Expected exactly one request, received %d", atomic.LoadInt32(hits))
	}

	user := f.sessions.User()
	if user == nil || user.ID != 1 || user.Name != "A" {
		t.Fatalf("Expected session store to hold {1 A}, received %+v", user)
	}
	if got := f.nav.last(); got != login.RouteRoot {
		t.Errorf("Expected route %q, received %q", login.RouteRoot, got)
	}
	if f.screen.Form.Failed() {
		t.Error("Expected no failure indicator")
	}
	if f.screen.Controller.State() != login.Authenticated {
		t.Errorf("Expected state authenticated, received %s", f.screen.Controller.State())
	}
	if len(f.host.events) != 1 || f.host.events[0] != login.LoginEvent {
		t.Errorf("Expected one %q host event, received %v", login.LoginEvent, f.host.events)
	}
}

func TestSubmit_Rejected(t *testing.T) {
	srv, hits := sessionServer(t, http.StatusUnauthorized, "HTTP 401 Unauthorized")
	f := newFixture(api.New(srv.URL, srv.Client()), nil)

	f.screen.Form.SetEmail("a@b.com")
	f.screen.Form.SetPassword("wrong")

	outcome, err := f.screen.Controller.Submit(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if outcome.Kind != login.OutcomeFailure {
		t.Fatalf("Expected failure, received %+v", outcome)
	}
	var se *api.StatusError
	if !errors.As(outcome.Reason, &se) || se.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 StatusError as reason, received %v", outcome.Reason)
	}
	if atomic.LoadInt32(hits) != 1 {
		t.Errorf("Expected exactly one request, received %d", atomic.LoadInt32(hits))
	}

	form := f.screen.Form
	if form.Password() != "" {
		t.Errorf("Expected password to be cleared, received %q", form.Password())
	}
	if !form.Failed() {
		t.Error("Expected failure indicator to be set")
	}
	if form.Email() != "a@b.com" {
		t.Errorf("Expected email to stay %q, received %q", "a@b.com", form.Email())
	}
	if form.FailureMessage() != login.FailureMessage {
		t.Errorf("Expected fixed failure message, received %q", form.FailureMessage())
	}
	if f.sessions.User() != nil {
		t.Error("Expected no user in session store")
	}
	if len(f.nav.routes) != 0 {
		t.Errorf("Expected no navigation, received %v", f.nav.routes)
	}
	if len(f.host.events) != 0 {
		t.Errorf("Expected no host events, received %v", f.host.events)
	}
	if f.screen.Controller.State() != login.Rejected {
		t.Errorf("Expected state rejected, received %s", f.screen.Controller.State())
	}
}

func TestSubmit_TransportFailure(t *testing.T) {
	srv, _ := sessionServer(t, http.StatusOK, `{}`)
	url := srv.URL
	srv.Close()

	f := newFixture(api.New(url, nil), nil)
	f.screen.Form.SetEmail("a@b.com")
	f.screen.Form.SetPassword("secret")

	outcome, err := f.screen.Controller.Submit(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if outcome.Kind != login.OutcomeFailure || !f.screen.Form.Failed() || f.screen.Form.Password() != "" {
		t.Errorf("Expected transport failure to be handled as a rejection, received %+v", outcome)
	}
}

func TestSubmit_MalformedUser(t *testing.T) {
	srv, _ := sessionServer(t, http.StatusOK, `not json`)
	f := newFixture(api.New(srv.URL, srv.Client()), nil)
	f.screen.Form.SetEmail("a@b.com")
	f.screen.Form.SetPassword("secret")

	outcome, _ := f.screen.Controller.Submit(context.Background())
	if outcome.Kind != login.OutcomeFailure {
		t.Errorf("Expected failure for malformed body, received %+v", outcome)
	}
}

func TestSubmit_UnexpectedUserShape(t *testing.T) {
	for _, body := range []string{`{"id":"u-1","name":"A"}`, `{"id":1,"name":"A","attributes":[]}`} {
		srv, hits := sessionServer(t, http.StatusOK, body)
		f := newFixture(api.New(srv.URL, srv.Client()), nil)
		f.screen.Form.SetEmail("a@b.com")
		f.screen.Form.SetPassword("secret")

		outcome, err := f.screen.Controller.Submit(context.Background())
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if outcome.Kind != login.OutcomeSuccess {
			t.Errorf("Expected success for %s, received %+v", body, outcome)
			continue
		}
		user := f.sessions.User()
		if user == nil || user.Name != "A" || string(user.Raw) != body {
			t.Errorf("Expected stored user to keep %s, received %+v", body, user)
		}
		if got := f.nav.last(); got != login.RouteRoot {
			t.Errorf("Expected route %q, received %q", login.RouteRoot, got)
		}
		if f.screen.Form.Failed() {
			t.Errorf("Expected no failure indicator for %s", body)
		}
		if atomic.LoadInt32(hits) != 1 {
			t.Errorf("Expected exactly one request, received %d", atomic.LoadInt32(hits))
		}
	}
}

func TestSubmit_EmptyFieldsStillSent(t *testing.T) {
	srv, hits := sessionServer(t, http.StatusBadRequest, "")
	f := newFixture(api.New(srv.URL, srv.Client()), nil)

	outcome, err := f.screen.Controller.Submit(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if outcome.Kind != login.OutcomeFailure || atomic.LoadInt32(hits) != 1 {
		t.Errorf("Expected one rejected request, received %+v after %d requests", outcome, atomic.LoadInt32(hits))
	}
}

func TestSubmit_RetryAfterRejection(t *testing.T) {
	srv, hits := sessionServer(t, http.StatusUnauthorized, "")
	f := newFixture(api.New(srv.URL, srv.Client()), nil)
	form := f.screen.Form

	form.SetEmail("a@b.com")
	form.SetPassword("one")
	f.screen.Controller.Submit(context.Background())

	form.SetPassword("two")
	if !form.Failed() {
		t.Fatal("Expected failure indicator to survive field edits")
	}
	f.screen.Controller.Submit(context.Background())
	form.SetPassword("three")
	f.screen.Controller.Submit(context.Background())

	if atomic.LoadInt32(hits) != 3 {
		t.Errorf("Expected one request per submit, received %d", atomic.LoadInt32(hits))
	}
}

func TestSubmit_SingleFlight(t *testing.T) {
	creator := newBlockingCreator()
	f := newFixture(creator, nil)
	f.screen.Form.SetEmail("a@b.com")
	f.screen.Form.SetPassword("secret")
	ctrl := f.screen.Controller

	done := make(chan login.Outcome, 1)
	go func() {
		outcome, _ := ctrl.Submit(context.Background())
		done <- outcome
	}()

	select {
	case <-creator.started:
	case <-time.After(5 * time.Second):
		t.Fatal("first submission never reached the server")
	}
	if !ctrl.Submitting() {
		t.Fatalf("Expected state submitting, received %s", ctrl.State())
	}
	if ctrl.CanSubmit() {
		t.Error("Expected submit affordance to be disabled while in flight")
	}

	if _, err := ctrl.Submit(context.Background()); !errors.Is(err, login.ErrSubmitInFlight) {
		t.Errorf("Expected ErrSubmitInFlight, received %v", err)
	}
	if _, err := ctrl.HandleKey(context.Background(), login.KeyEnter); !errors.Is(err, login.ErrSubmitInFlight) {
		t.Errorf("Expected Enter to be refused while in flight, received %v", err)
	}

	close(creator.release)
	outcome := <-done
	if outcome.Kind != login.OutcomeSuccess {
		t.Fatalf("Expected success, received %+v", outcome)
	}
	if calls := atomic.LoadInt32(&creator.calls); calls != 1 {
		t.Errorf("Expected one request, received %d", calls)
	}
}

func TestSubmit_Timeout(t *testing.T) {
	creator := newBlockingCreator()
	f := newFixture(creator, nil)
	ctrl := login.NewController(f.screen.Form, creator, f.sessions, f.screen.Dispatcher, login.WithTimeout(20*time.Millisecond))
	f.screen.Form.SetEmail("a@b.com")
	f.screen.Form.SetPassword("secret")

	outcome, err := ctrl.Submit(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !errors.Is(outcome.Reason, context.DeadlineExceeded) {
		t.Errorf("Expected deadline exceeded, received %v", outcome.Reason)
	}
	if ctrl.State() != login.Rejected {
		t.Errorf("Expected state rejected, received %s", ctrl.State())
	}
}

func TestHandleKey(t *testing.T) {
	srv, hits := sessionServer(t, http.StatusOK, `{"id":1,"name":"A"}`)
	f := newFixture(api.New(srv.URL, srv.Client()), nil)
	ctrl := f.screen.Controller

	f.screen.Form.SetEmail("a@b.com")
	if _, err := ctrl.HandleKey(context.Background(), login.KeyEnter); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if atomic.LoadInt32(hits) != 0 {
		t.Fatalf("Expected Enter with an empty password to do nothing, received %d requests", atomic.LoadInt32(hits))
	}

	f.screen.Form.SetPassword("secret")
	ctrl.HandleKey(context.Background(), 65)
	if atomic.LoadInt32(hits) != 0 {
		t.Fatalf("Expected other keys to do nothing, received %d requests", atomic.LoadInt32(hits))
	}

	outcome, err := ctrl.HandleKey(context.Background(), login.KeyEnter)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if outcome.Kind != login.OutcomeSuccess || atomic.LoadInt32(hits) != 1 {
		t.Errorf("Expected Enter to submit once, received %+v after %d requests", outcome, atomic.LoadInt32(hits))
	}
}

func TestOnStateChange(t *testing.T) {
	cases := []struct {
		status int
		body   string
		final  login.State
	}{
		{http.StatusOK, `{"id":1,"name":"A"}`, login.Authenticated},
		{http.StatusUnauthorized, "", login.Rejected},
	}
	for _, c := range cases {
		srv, _ := sessionServer(t, c.status, c.body)
		f := newFixture(api.New(srv.URL, srv.Client()), nil)
		ctrl := f.screen.Controller
		f.screen.Form.SetEmail("a@b.com")
		f.screen.Form.SetPassword("secret")

		var seen []login.State
		var disabled bool
		ctrl.OnStateChange(func(s login.State) {
			seen = append(seen, s)
			if s == login.Submitting {
				disabled = !ctrl.CanSubmit()
			}
		})
		ctrl.Submit(context.Background())

		if len(seen) != 2 || seen[0] != login.Submitting || seen[1] != c.final {
			t.Errorf("Expected [submitting %s], received %v", c.final, seen)
		}
		if !disabled {
			t.Error("Expected submit affordance to be disabled when submitting is announced")
		}

		ctrl.OnStateChange(nil)
		f.screen.Form.SetPassword("again")
		ctrl.Submit(context.Background())
		if len(seen) != 2 {
			t.Errorf("Expected no notifications after clearing the hook, received %v", seen)
		}
	}
}
