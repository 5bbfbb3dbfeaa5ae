// Package devserver serves the browser bundle together with a stub of the
// session API, so the login screen can be exercised without a real backend.
package devserver

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/spf13/afero"
	"golang.org/x/crypto/bcrypt"

	"login-front/internal/api"
	"login-front/internal/session"
)

const cookieName = "JSESSIONID"

// Account is the single user the stub accepts.
type Account struct {
	User     session.User
	Password string
}

type Server struct {
	caps  session.Capabilities
	user  session.User
	email string
	hash  []byte

	mu       sync.RWMutex
	sessions map[string]session.User

	router *mux.Router
}

// New hashes the account password and builds the routes. Static files are
// served from web.
func New(account Account, caps session.Capabilities, web afero.Fs) (*Server, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(account.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	s := &Server{
		caps:     caps,
		user:     account.User,
		email:    account.User.Email,
		hash:     hash,
		sessions: make(map[string]session.User),
	}

	r := mux.NewRouter()
	r.HandleFunc(api.ServerPath, s.getServer).Methods(http.MethodGet)
	r.HandleFunc(api.SessionPath, s.createSession).Methods(http.MethodPost)
	r.HandleFunc(api.SessionPath, s.getSession).Methods(http.MethodGet)
	r.HandleFunc(api.SessionPath, s.deleteSession).Methods(http.MethodDelete)
	r.PathPrefix("/").Handler(http.FileServer(afero.NewHttpFs(web)))
	s.router = r
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) getServer(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.caps)
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	email := r.PostForm.Get("email")
	password := r.PostForm.Get("password")
	if email != s.email || bcrypt.CompareHashAndPassword(s.hash, []byte(password)) != nil {
		log.Printf("devserver: rejected login for %q", email)
		http.Error(w, "HTTP 401 Unauthorized", http.StatusUnauthorized)
		return
	}

	id := uuid.New().String()
	s.mu.Lock()
	s.sessions[id] = s.user
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{Name: cookieName, Value: id, Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode})
	log.Printf("devserver: session %s created for %q", id, email)
	writeJSON(w, http.StatusOK, s.user)
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	user, ok := s.lookup(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(cookieName); err == nil {
		s.mu.Lock()
		delete(s.sessions, c.Value)
		s.mu.Unlock()
	}
	http.SetCookie(w, &http.Cookie{Name: cookieName, Value: "", Path: "/", MaxAge: -1})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) lookup(r *http.Request) (session.User, bool) {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return session.User{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.sessions[c.Value]
	return user, ok
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
