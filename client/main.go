//go:build js

package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/hexops/vecty"

	"login-front/internal/api"
	"login-front/internal/browser"
	"login-front/internal/i18n"
	"login-front/internal/login"
	"login-front/internal/session"
	"login-front/internal/storage"
)

func main() {
	store := storage.New(browser.LocalStorage{})

	localizer, err := i18n.New(store, browser.PreferredLanguages()...)
	if err != nil {
		log.Fatal(err)
	}

	// Same origin as the page: the server that served the bundle owns /api.
	client := api.New("", &http.Client{Timeout: 30 * time.Second})

	sessions := session.NewMemory(nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	caps, err := client.Server(ctx)
	cancel()
	if err != nil {
		log.Println("Failed to fetch server capabilities:", err)
	} else {
		sessions.SetServer(caps)
	}

	app := NewApp(login.Deps{
		Store:     store,
		Sessions:  sessions,
		Creator:   client,
		Navigator: browser.HashNavigator{},
		Host:      browser.DetectHost(),
		Localizer: localizer,
	}, sessions)

	vecty.SetTitle(localizer.Translate("loginLogin"))
	vecty.RenderBody(app)
	// ブラウザのイベントループをブロックしないように、この関数をブロックします
	select {}
}
