package login_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"login-front/internal/api"
	"login-front/internal/login"
	"login-front/internal/session"
	"login-front/internal/storage"
)

type recordingNavigator struct {
	mu      sync.Mutex
	routes  []string
	reloads []string
}

func (n *recordingNavigator) Navigate(route string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.routes = append(n.routes, route)
}

func (n *recordingNavigator) Reload(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.reloads = append(n.reloads, path)
}

func (n *recordingNavigator) last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.routes) == 0 {
		return ""
	}
	return n.routes[len(n.routes)-1]
}

type recordingHost struct {
	mu     sync.Mutex
	events []string
}

func (h *recordingHost) host() login.BridgedHost {
	return login.BridgedHost{Post: func(message string) error {
		h.mu.Lock()
		defer h.mu.Unlock()
		h.events = append(h.events, message)
		return nil
	}}
}

// sessionServer answers /api/session with status and body, counting requests.
func sessionServer(t *testing.T, status int, body string) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if r.Method != http.MethodPost || r.URL.Path != api.SessionPath {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

type fixture struct {
	store    *storage.Store
	sessions *session.Memory
	nav      *recordingNavigator
	host     *recordingHost
	screen   *login.Screen
}

func newFixture(creator login.SessionCreator, caps *session.Capabilities) *fixture {
	f := &fixture{
		store:    storage.New(storage.NewMemory()),
		sessions: session.NewMemory(caps),
		nav:      &recordingNavigator{},
		host:     &recordingHost{},
	}
	f.screen = login.NewScreen(login.Deps{
		Store:     f.store,
		Sessions:  f.sessions,
		Creator:   creator,
		Navigator: f.nav,
		Host:      f.host.host(),
	})
	return f
}

// blockingCreator holds every request until release is closed.
type blockingCreator struct {
	calls   int32
	started chan struct{}
	release chan struct{}
}

func newBlockingCreator() *blockingCreator {
	return &blockingCreator{started: make(chan struct{}, 8), release: make(chan struct{})}
}

func (b *blockingCreator) CreateSession(ctx context.Context, email, password string) (session.User, error) {
	atomic.AddInt32(&b.calls, 1)
	b.started <- struct{}{}
	select {
	case <-b.release:
		return session.User{ID: 1, Name: "A"}, nil
	case <-ctx.Done():
		return session.User{}, ctx.Err()
	}
}
