// Command login signs in against a server from the terminal using the same
// form and submission logic as the browser client.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"login-front/internal/api"
	"login-front/internal/config"
	"login-front/internal/login"
	"login-front/internal/session"
	"login-front/internal/storage"
)

var errRejected = errors.New(login.FailureMessage)

func main() {
	os.Exit(exitCode(rootCmd(os.Stdin, os.Stdout).Execute(), os.Stderr))
}

// exitCode reports err on stderr and maps it to a process status. A rejection
// was already shown on stdout.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	if !errors.Is(err, errRejected) {
		fmt.Fprintln(stderr, err)
	}
	return 1
}

// terminalNavigator records where a successful login would go.
type terminalNavigator struct {
	out io.Writer
}

func (n terminalNavigator) Navigate(route string) { fmt.Fprintf(n.out, "-> %s\n", route) }
func (n terminalNavigator) Reload(path string)    { fmt.Fprintf(n.out, "reload %s\n", path) }

func rootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var (
		configPath string
		serverURL  string
		email      string
	)
	cmd := &cobra.Command{
		Use:           "login",
		Short:         "Create a session on the server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if serverURL != "" {
				cfg.ServerURL = serverURL
			}
			return run(cmd.Context(), cfg, afero.NewOsFs(), email, in, out)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	cmd.Flags().StringVar(&serverURL, "server", "", "server base URL (default from LOGIN_SERVER_URL)")
	cmd.Flags().StringVarP(&email, "email", "e", "", "email (default: last one used)")
	return cmd
}

func run(ctx context.Context, cfg config.Config, fs afero.Fs, email string, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	store := storage.New(storage.NewFile(fs, cfg.StateFile))
	sessions := session.NewMemory(nil)
	screen := login.NewScreen(login.Deps{
		Store:     store,
		Sessions:  sessions,
		Creator:   api.New(cfg.ServerURL, &http.Client{Timeout: cfg.Timeout}),
		Navigator: terminalNavigator{out: out},
		Options:   []login.Option{login.WithTimeout(cfg.Timeout)},
	})

	reader := bufio.NewReader(in)
	if email != "" {
		screen.Form.SetEmail(email)
	}
	if screen.Form.Email() == "" {
		fmt.Fprint(out, "Email: ")
		screen.Form.SetEmail(readLine(reader))
	}
	fmt.Fprint(out, "Password: ")
	screen.Form.SetPassword(readLine(reader))

	if !screen.Form.IsSubmittable() {
		return errors.New("email and password are required")
	}
	outcome, err := screen.Controller.Submit(ctx)
	if err != nil {
		return err
	}
	if outcome.Kind != login.OutcomeSuccess {
		fmt.Fprintln(out, screen.Form.FailureMessage())
		return errRejected
	}
	fmt.Fprintf(out, "Signed in as %s (%s)\n", outcome.User.Name, screen.Form.Email())
	return nil
}

func readLine(r *bufio.Reader) string {
	line, _ := r.ReadString('\n')
	return strings.TrimRight(line, "\r\n")
}
