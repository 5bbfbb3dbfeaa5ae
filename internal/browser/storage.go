//go:build js

// Package browser adapts window globals to the interfaces of the login core.
package browser

import (
	"fmt"
	"syscall/js"

	"login-front/internal/storage"
)

// LocalStorage is a storage.Backend over window.localStorage.
type LocalStorage struct{}

func (LocalStorage) Get(key string) (value string, ok bool, err error) {
	defer recoverUnavailable(&err)
	ls, err := localStorage()
	if err != nil {
		return "", false, err
	}
	v := ls.Call("getItem", key)
	if v.IsNull() || v.IsUndefined() {
		return "", false, nil
	}
	return v.String(), true, nil
}

func (LocalStorage) Set(key, value string) (err error) {
	defer recoverUnavailable(&err)
	ls, err := localStorage()
	if err != nil {
		return err
	}
	ls.Call("setItem", key, value)
	return nil
}

func localStorage() (js.Value, error) {
	ls := js.Global().Get("localStorage")
	if ls.IsUndefined() || ls.IsNull() {
		return js.Value{}, storage.ErrUnavailable
	}
	return ls, nil
}

// Access to localStorage throws in some private browsing modes.
func recoverUnavailable(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %v", storage.ErrUnavailable, r)
	}
}
