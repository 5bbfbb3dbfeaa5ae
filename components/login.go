//go:build js

package components

import (
	"context"
	"errors"
	"log"

	"github.com/hexops/vecty"
	"github.com/hexops/vecty/elem"
	"github.com/hexops/vecty/event"

	"login-front/internal/login"
)

// Login renders one mounted login view over Screen.
type Login struct {
	vecty.Core
	Screen *login.Screen `vecty:"prop"`
}

// Mount rerenders on every submission transition, so the button is disabled
// while a request is in flight and the result shows once it lands.
func (l *Login) Mount() {
	l.Screen.Controller.OnStateChange(func(login.State) { vecty.Rerender(l) })
}

func (l *Login) Unmount() {
	l.Screen.Controller.OnStateChange(nil)
}

// Blocking the event callback would deadlock the page's event loop, so
// submissions run on their own goroutine.
func (l *Login) submit() {
	go func() {
		_, err := l.Screen.Controller.Submit(context.Background())
		logSubmitError(err)
	}()
}

func (l *Login) onKeyUp(e *vecty.Event) {
	keyCode := e.Get("keyCode").Int()
	go func() {
		_, err := l.Screen.Controller.HandleKey(context.Background(), keyCode)
		logSubmitError(err)
	}()
}

func logSubmitError(err error) {
	if err != nil && !errors.Is(err, login.ErrSubmitInFlight) {
		log.Println("Login submission failed:", err)
	}
}

func (l *Login) Render() vecty.ComponentOrHTML {
	s := l.Screen
	return elem.Div(
		vecty.Markup(vecty.Class("login-container")),
		l.renderOptions(),
		elem.Div(
			vecty.Markup(vecty.Class("login-form")),

			elem.Heading2(vecty.Text(s.T("loginWelcome"))),
			elem.Paragraph(vecty.Text(s.T("loginInstructions"))),

			l.renderEmail(),
			l.renderPassword(),

			elem.Button(
				vecty.Text(s.T("loginLogin")),
				vecty.Markup(
					vecty.Property("type", "button"),
					vecty.Property("disabled", !s.Controller.CanSubmit()),
					event.Click(func(e *vecty.Event) { l.submit() }),
					event.KeyUp(l.onKeyUp),
				),
			),

			elem.Div(
				vecty.Markup(vecty.Class("login-extra")),
				elem.Button(
					vecty.Text(s.T("loginRegister")),
					vecty.Markup(
						vecty.Property("type", "button"),
						vecty.Property("disabled", !s.Gate.CanRegister()),
						event.Click(func(e *vecty.Event) { s.Dispatcher.GoTo(login.RouteRegister) }),
					),
				),
				l.renderLanguages(),
			),

			vecty.If(s.Gate.CanResetPassword(),
				elem.Anchor(
					vecty.Markup(
						vecty.Class("login-reset"),
						event.Click(func(e *vecty.Event) { s.Dispatcher.GoTo(login.RouteResetPassword) }).PreventDefault(),
					),
					vecty.Text(s.T("loginReset")),
				),
			),
		),
		l.renderAnnouncement(),
	)
}

func (l *Login) renderOptions() vecty.ComponentOrHTML {
	s := l.Screen
	return elem.Div(
		vecty.Markup(vecty.Class("login-options")),
		elem.Button(
			vecty.Text("⟳"),
			vecty.Markup(
				vecty.Property("title", s.T("loginLegacy")),
				event.Click(func(e *vecty.Event) { s.Dispatcher.SwitchToLegacyMode() }),
			),
		),
		vecty.If(s.Dispatcher.OfferServerSettingsEntry(),
			elem.Button(
				vecty.Text("🔓"),
				vecty.Markup(
					vecty.Property("title", s.T("settingsServer")),
					event.Click(func(e *vecty.Event) { s.Dispatcher.GoTo(login.RouteChangeServer) }),
				),
			),
		),
	)
}

func (l *Login) renderEmail() vecty.ComponentOrHTML {
	form := l.Screen.Form
	return elem.Div(
		vecty.Markup(vecty.ClassMap{"field": true, "error": form.Failed()}),
		elem.Label(vecty.Text(l.Screen.T("userEmail"))),
		elem.Input(vecty.Markup(
			vecty.Property("type", "text"),
			vecty.Property("name", "email"),
			vecty.Property("required", true),
			vecty.Property("autocomplete", "email"),
			vecty.Property("autofocus", form.EmailAutoFocus()),
			vecty.Property("value", form.Email()),
			event.Input(func(e *vecty.Event) {
				form.SetEmail(e.Target.Get("value").String())
				vecty.Rerender(l)
			}),
			event.KeyUp(l.onKeyUp),
		)),
		vecty.If(form.Failed(),
			elem.Paragraph(
				vecty.Markup(vecty.Class("helper-text")),
				vecty.Text(form.FailureMessage()),
			),
		),
	)
}

func (l *Login) renderPassword() vecty.ComponentOrHTML {
	form := l.Screen.Form
	return elem.Div(
		vecty.Markup(vecty.ClassMap{"field": true, "error": form.Failed()}),
		elem.Label(vecty.Text(l.Screen.T("userPassword"))),
		elem.Input(vecty.Markup(
			vecty.Property("type", "password"),
			vecty.Property("name", "password"),
			vecty.Property("required", true),
			vecty.Property("autocomplete", "current-password"),
			vecty.Property("autofocus", !form.EmailAutoFocus()),
			vecty.Property("value", form.Password()),
			event.Input(func(e *vecty.Event) {
				form.SetPassword(e.Target.Get("value").String())
				vecty.Rerender(l)
			}),
			event.KeyUp(l.onKeyUp),
		)),
	)
}

func (l *Login) renderLanguages() vecty.ComponentOrHTML {
	loc := l.Screen.Localizer
	if loc == nil {
		return nil
	}
	current := loc.Language()
	options := vecty.List{}
	for _, lang := range login.Languages(loc) {
		options = append(options, elem.Option(
			vecty.Markup(
				vecty.Property("value", lang.Code),
				vecty.Property("selected", lang.Code == current),
			),
			vecty.Text(lang.Name),
		))
	}
	return elem.Label(
		vecty.Text(l.Screen.T("loginLanguage")),
		elem.Select(
			vecty.Markup(event.Change(func(e *vecty.Event) {
				if err := loc.SetLanguage(e.Target.Get("value").String()); err != nil {
					log.Println("Failed to change language:", err)
				}
				vecty.Rerender(l)
			})),
			options,
		),
	)
}

func (l *Login) renderAnnouncement() vecty.ComponentOrHTML {
	a := l.Screen.Announcement
	if !a.IsVisible() {
		return nil
	}
	return elem.Div(
		vecty.Markup(vecty.Class("snackbar")),
		elem.Span(vecty.Text(a.Text())),
		elem.Button(
			vecty.Text("✕"),
			vecty.Markup(
				vecty.Property("title", l.Screen.T("sharedHide")),
				event.Click(func(e *vecty.Event) {
					a.Acknowledge()
					vecty.Rerender(l)
				}),
			),
		),
	)
}
