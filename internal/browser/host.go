//go:build js

package browser

import (
	"fmt"
	"syscall/js"

	"login-front/internal/login"
)

// DetectHost probes for a native shell: the iOS WebKit message handler
// first, then the Android JavaScript interface.
func DetectHost() login.HostNotifier {
	if handler, ok := webkitHandler(); ok {
		return login.BridgedHost{Post: post(handler)}
	}
	if iface := js.Global().Get("appInterface"); truthy(iface) {
		return login.BridgedHost{Post: post(iface)}
	}
	return login.NoHost{}
}

func webkitHandler() (js.Value, bool) {
	webkit := js.Global().Get("webkit")
	if !truthy(webkit) {
		return js.Value{}, false
	}
	handlers := webkit.Get("messageHandlers")
	if !truthy(handlers) {
		return js.Value{}, false
	}
	handler := handlers.Get("appInterface")
	return handler, truthy(handler)
}

func post(target js.Value) func(string) error {
	return func(message string) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("post %q to host: %v", message, r)
			}
		}()
		target.Call("postMessage", message)
		return nil
	}
}

func truthy(v js.Value) bool {
	return !v.IsUndefined() && !v.IsNull() && v.Truthy()
}
