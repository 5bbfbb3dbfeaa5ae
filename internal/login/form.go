// Package login implements the login screen's state: the credential form,
// session submission, capability gating and the side effects that follow a
// successful sign-in.
package login

import (
	"sync"

	"login-front/internal/storage"
)

// FailureMessage is shown for every rejected submission, whatever the cause.
const FailureMessage = "Invalid username or password"

// Form holds the credentials being typed. The email is mirrored into the
// persisted store on every change; the password never is.
type Form struct {
	mu       sync.RWMutex
	store    *storage.Store
	email    string
	password string
	failed   bool
}

// NewForm restores the last email from store.
func NewForm(store *storage.Store) *Form {
	return &Form{store: store, email: store.Get(storage.KeyLoginEmail)}
}

func (f *Form) SetEmail(value string) {
	f.mu.Lock()
	f.email = value
	f.mu.Unlock()
	f.store.Set(storage.KeyLoginEmail, value)
}

func (f *Form) SetPassword(value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.password = value
}

func (f *Form) Email() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.email
}

func (f *Form) Password() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.password
}

// Credentials returns a consistent copy of both fields.
func (f *Form) Credentials() (email, password string) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.email, f.password
}

// IsSubmittable reports whether both fields are non-empty. Format checks are
// left to the server.
func (f *Form) IsSubmittable() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.email != "" && f.password != ""
}

// Failed reports whether the last submission was rejected. The flag stays
// set through field edits until the next submission starts.
func (f *Form) Failed() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.failed
}

// MarkFailed raises the failure flag and forces the password to be retyped.
func (f *Form) MarkFailed() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failed = true
	f.password = ""
}

func (f *Form) ClearFailure() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failed = false
}

// FailureMessage returns the helper text for the email field.
func (f *Form) FailureMessage() string {
	if f.Failed() {
		return FailureMessage
	}
	return ""
}

// EmailAutoFocus reports whether the email field should take focus. With a
// remembered email, focus goes to the password field instead.
func (f *Form) EmailAutoFocus() bool {
	return f.Email() == ""
}
