// Package session holds the signed-in user and the server's advertised
// capabilities.
package session

import (
	"encoding/json"
	"errors"
	"math"
	"sync"
)

// ErrNotObject is returned when a user record is not a JSON object.
var ErrNotObject = errors.New("session: user record is not a JSON object")

// User is the record returned by the session endpoint. Raw keeps the
// original document so it can be forwarded untouched; the typed fields are
// read from it on a best-effort basis and stay zero when a field is missing
// or has an unexpected type.
type User struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Administrator bool           `json:"administrator"`
	Readonly      bool           `json:"readonly"`
	Attributes    map[string]any `json:"attributes,omitempty"`

	Raw json.RawMessage `json:"-"`
}

func (u *User) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		return ErrNotObject
	}

	*u = User{Raw: append(json.RawMessage(nil), data...)}
	u.ID = wholeNumber(fields["id"])
	lenient(fields["name"], &u.Name)
	lenient(fields["email"], &u.Email)
	lenient(fields["administrator"], &u.Administrator)
	lenient(fields["readonly"], &u.Readonly)
	lenient(fields["attributes"], &u.Attributes)
	return nil
}

// lenient decodes raw into v and leaves v zero on a type mismatch.
func lenient[T any](raw json.RawMessage, v *T) {
	if len(raw) == 0 {
		return
	}
	var out T
	if json.Unmarshal(raw, &out) == nil {
		*v = out
	}
}

func wholeNumber(raw json.RawMessage) int64 {
	var f float64
	lenient(raw, &f)
	if f != math.Trunc(f) || math.Abs(f) >= math.MaxInt64 {
		return 0
	}
	return int64(f)
}

// MarshalJSON returns Raw when the user came from the server, so edits to
// the typed fields of a decoded user are not reflected. Clear Raw to encode
// the typed fields instead.
func (u User) MarshalJSON() ([]byte, error) {
	if len(u.Raw) > 0 {
		return u.Raw, nil
	}
	type plain User
	return json.Marshal(plain(u))
}

// Capabilities is the server's feature snapshot. The zero value disables
// everything.
type Capabilities struct {
	Registration bool   `json:"registration"`
	EmailEnabled bool   `json:"emailEnabled"`
	Announcement string `json:"announcement,omitempty"`
}

// Store is the application-wide session state.
type Store interface {
	SetUser(User)
	Server() *Capabilities
}

// Memory is a Store kept in process memory.
type Memory struct {
	mu     sync.RWMutex
	user   *User
	server *Capabilities
}

func NewMemory(server *Capabilities) *Memory {
	return &Memory{server: server}
}

func (m *Memory) SetUser(u User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = &u
}

// User returns the signed-in user, or nil.
func (m *Memory) User() *User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

func (m *Memory) SetServer(c *Capabilities) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.server = c
}

func (m *Memory) Server() *Capabilities {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.server
}
