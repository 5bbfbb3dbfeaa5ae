package login

import (
	"login-front/internal/session"
	"login-front/internal/storage"
)

// Deps are the collaborators a login screen is built from.
type Deps struct {
	Store     *storage.Store
	Sessions  session.Store
	Creator   SessionCreator
	Navigator Navigator
	Host      HostNotifier
	Localizer Localizer
	Options   []Option
}

// Screen is the state of one mounted login view.
type Screen struct {
	Form         *Form
	Controller   *Controller
	Gate         Gate
	Announcement *Announcement
	Dispatcher   *Dispatcher
	Localizer    Localizer
}

func NewScreen(d Deps) *Screen {
	form := NewForm(d.Store)
	gate := NewGate(d.Sessions.Server())
	dispatch := NewDispatcher(d.Navigator, d.Host, d.Store)
	return &Screen{
		Form:         form,
		Controller:   NewController(form, d.Creator, d.Sessions, dispatch, d.Options...),
		Gate:         gate,
		Announcement: NewAnnouncement(gate),
		Dispatcher:   dispatch,
		Localizer:    d.Localizer,
	}
}

// T translates key, or returns it unchanged without a localizer.
func (s *Screen) T(key string) string {
	if s.Localizer == nil {
		return key
	}
	return s.Localizer.Translate(key)
}
