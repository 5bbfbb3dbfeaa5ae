//go:build js

package components

import (
	"github.com/hexops/vecty"
	"github.com/hexops/vecty/elem"

	"login-front/internal/session"
)

// Home is the application root shown once a session exists.
type Home struct {
	vecty.Core
	User *session.User           `vecty:"prop"`
	T    func(key string) string `vecty:"prop"`
}

func (h *Home) Render() vecty.ComponentOrHTML {
	name := ""
	if h.User != nil {
		name = h.User.Name
	}
	return elem.Div(
		vecty.Markup(vecty.Class("home-container")),
		elem.Paragraph(vecty.Text(h.T("homeSignedIn")+" "+name)),
	)
}
