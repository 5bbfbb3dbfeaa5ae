//go:build js

package main

import (
	"github.com/hexops/vecty"
	"github.com/hexops/vecty/elem"

	"login-front/components"
	"login-front/internal/browser"
	"login-front/internal/login"
	"login-front/internal/session"
)

// App is the main application component, acting as a router.
type App struct {
	vecty.Core
	deps         login.Deps
	sessions     *session.Memory
	localizer    login.Localizer
	currentRoute string
	screen       *login.Screen
}

// NewApp creates a new App component.
func NewApp(deps login.Deps, sessions *session.Memory) *App {
	return &App{deps: deps, sessions: sessions, localizer: deps.Localizer}
}

// Mount handles component mounting and sets up routing.
func (a *App) Mount() {
	a.handleRouteChange(browser.Route())
	browser.OnRouteChange(a.handleRouteChange)
}

func (a *App) handleRouteChange(route string) {
	if route == "" || (route == login.RouteRoot && a.sessions.User() == nil) {
		route = login.RouteLogin
	}
	if route == login.RouteLogin && (a.currentRoute != login.RouteLogin || a.screen == nil) {
		// Each visit to the login view starts from fresh form state.
		a.screen = login.NewScreen(a.deps)
	}
	a.currentRoute = route
	vecty.Rerender(a)
}

func (a *App) back() {
	a.deps.Navigator.Navigate(login.RouteLogin)
}

// Render renders the component based on the current route.
func (a *App) Render() vecty.ComponentOrHTML {
	t := a.localizer.Translate
	switch a.currentRoute {
	case login.RouteRoot:
		return elem.Body(&components.Home{User: a.sessions.User(), T: t})
	case login.RouteRegister:
		return elem.Body(&components.RoutePage{Title: t("loginRegister"), T: t, OnBack: a.back})
	case login.RouteResetPassword:
		return elem.Body(&components.RoutePage{Title: t("loginReset"), T: t, OnBack: a.back})
	case login.RouteChangeServer:
		return elem.Body(&components.RoutePage{Title: t("settingsServer"), T: t, OnBack: a.back})
	case login.RouteLogin:
		fallthrough
	default:
		if a.screen == nil {
			a.screen = login.NewScreen(a.deps)
		}
		return elem.Body(&components.Login{Screen: a.screen})
	}
}
