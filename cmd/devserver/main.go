// Command devserver serves the built client from a web directory and stubs
// the session API with one demo account.
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"login-front/internal/config"
	"login-front/internal/devserver"
	"login-front/internal/session"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		addr       string
		webDir     string
	)
	cmd := &cobra.Command{
		Use:   "devserver",
		Short: "Serve the login client with a stub session API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Dev.Addr = addr
			}
			if webDir != "" {
				cfg.Dev.WebDir = webDir
			}

			account := devserver.Account{
				User: session.User{
					ID:            1,
					Name:          cfg.Dev.Name,
					Email:         cfg.Dev.Email,
					Administrator: true,
				},
				Password: cfg.Dev.Password,
			}
			caps := session.Capabilities{
				Registration: cfg.Dev.Registration,
				EmailEnabled: cfg.Dev.EmailEnabled,
				Announcement: cfg.Dev.Announcement,
			}
			web := afero.NewBasePathFs(afero.NewOsFs(), cfg.Dev.WebDir)

			srv, err := devserver.New(account, caps, web)
			if err != nil {
				return err
			}
			log.Printf("Serving %s on %s (login as %s)", cfg.Dev.WebDir, cfg.Dev.Addr, cfg.Dev.Email)
			return http.ListenAndServe(cfg.Dev.Addr, srv)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from LOGIN_DEV_ADDR)")
	cmd.Flags().StringVar(&webDir, "web", "", "directory holding index.html and the bundle")
	return cmd
}
