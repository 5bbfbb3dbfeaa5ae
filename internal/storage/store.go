// Package storage keeps small string values that must survive a page reload.
package storage

import (
	"errors"
	"log"
	"sync"
)

// Keys persisted by the login client.
const (
	KeyLoginEmail = "loginEmail"
	KeyLegacyApp  = "legacyApp"
	KeyLanguage   = "language"
)

// ErrUnavailable is returned by backends that cannot reach their medium.
var ErrUnavailable = errors.New("storage unavailable")

// Backend is a durable key/value medium such as window.localStorage.
type Backend interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Store reads and writes through a Backend. Once the backend fails, the
// store keeps working from memory and values are lost on reload.
type Store struct {
	mu       sync.Mutex
	backend  Backend
	fallback *Memory
}

// New returns a store over backend. A nil backend means memory only.
func New(backend Backend) *Store {
	s := &Store{fallback: NewMemory()}
	if backend != nil {
		s.backend = backend
	}
	return s
}

// Get returns the value stored for key, or "" if there is none.
func (s *Store) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.backend != nil {
		value, ok, err := s.backend.Get(key)
		if err == nil {
			if !ok {
				return ""
			}
			return value
		}
		s.degrade(err)
	}
	value, _, _ := s.fallback.Get(key)
	return value
}

// Set writes value for key synchronously.
func (s *Store) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fallback.Set(key, value)
	if s.backend == nil {
		return
	}
	if err := s.backend.Set(key, value); err != nil {
		s.degrade(err)
	}
}

// Durable reports whether values still reach the backend.
func (s *Store) Durable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend != nil
}

func (s *Store) degrade(err error) {
	log.Printf("storage: falling back to memory: %v", err)
	s.backend = nil
}
