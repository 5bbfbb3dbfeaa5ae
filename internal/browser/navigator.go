//go:build js

package browser

import (
	"strings"
	"syscall/js"
)

// HashNavigator routes through location.hash, so "/register" becomes
// "#/register".
type HashNavigator struct{}

func (HashNavigator) Navigate(route string) {
	js.Global().Get("location").Set("hash", "#"+route)
}

func (HashNavigator) Reload(path string) {
	js.Global().Get("location").Call("replace", path)
}

// Route returns the current hash route, or "" when there is none.
func Route() string {
	hash := js.Global().Get("location").Get("hash").String()
	return strings.TrimPrefix(hash, "#")
}

// OnRouteChange calls fn with the new route on every hash change.
func OnRouteChange(fn func(route string)) {
	js.Global().Set("onhashchange", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		fn(Route())
		return nil
	}))
}

// PreferredLanguages returns navigator.languages, most preferred first.
func PreferredLanguages() []string {
	nav := js.Global().Get("navigator")
	list := nav.Get("languages")
	if list.IsUndefined() || list.IsNull() {
		if lang := nav.Get("language"); lang.Type() == js.TypeString {
			return []string{lang.String()}
		}
		return nil
	}
	codes := make([]string, 0, list.Length())
	for i := 0; i < list.Length(); i++ {
		codes = append(codes, list.Index(i).String())
	}
	return codes
}
