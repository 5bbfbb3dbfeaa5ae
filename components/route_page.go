//go:build js

package components

import (
	"github.com/hexops/vecty"
	"github.com/hexops/vecty/elem"
	"github.com/hexops/vecty/event"
)

// RoutePage is where registration, password reset and server settings land.
// Those flows live outside the login screen.
type RoutePage struct {
	vecty.Core
	Title  string                  `vecty:"prop"`
	T      func(key string) string `vecty:"prop"`
	OnBack func()                  `vecty:"prop"`
}

func (p *RoutePage) Render() vecty.ComponentOrHTML {
	return elem.Div(
		vecty.Markup(vecty.Class("route-container")),
		elem.Heading1(vecty.Text(p.Title)),
		elem.Paragraph(vecty.Text(p.T("pageUnavailable"))),
		elem.Button(
			vecty.Text(p.T("sharedBack")),
			vecty.Markup(event.Click(func(e *vecty.Event) {
				if p.OnBack != nil {
					p.OnBack()
				}
			})),
		),
	)
}
