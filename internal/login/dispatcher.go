package login

import (
	"log"

	"login-front/internal/storage"
)

// Routes reachable from the login screen.
const (
	RouteRoot          = "/"
	RouteLogin         = "/login"
	RouteRegister      = "/register"
	RouteResetPassword = "/reset-password"
	RouteChangeServer  = "/change-server"
)

// LoginEvent is the message posted to a native host after sign-in.
const LoginEvent = "login"

// Navigator changes the current page.
type Navigator interface {
	// Navigate moves to an in-app route without reloading.
	Navigate(route string)
	// Reload replaces the document with path, loading it from the server.
	Reload(path string)
}

// Dispatcher performs the side effects triggered from the login screen.
type Dispatcher struct {
	nav   Navigator
	host  HostNotifier
	store *storage.Store
}

func NewDispatcher(nav Navigator, host HostNotifier, store *storage.Store) *Dispatcher {
	if host == nil {
		host = NoHost{}
	}
	return &Dispatcher{nav: nav, host: host, store: store}
}

func (d *Dispatcher) GoTo(route string) {
	d.nav.Navigate(route)
}

// SwitchToLegacyMode records the preference for the alternate client and
// reloads the root, where the server picks which client to serve.
func (d *Dispatcher) SwitchToLegacyMode() {
	d.store.Set(storage.KeyLegacyApp, "true")
	d.nav.Reload(RouteRoot)
}

func (d *Dispatcher) NotifyHostLoginSucceeded() {
	if err := d.host.Notify(LoginEvent); err != nil {
		log.Printf("login: host notification failed: %v", err)
	}
}

// OfferServerSettingsEntry reports whether the change-server entry exists.
// Only an embedding native shell gets one.
func (d *Dispatcher) OfferServerSettingsEntry() bool {
	return d.host.Bridged()
}
