// Package app wires the zebr0 command-line surface: setup, get, template
// and version subcommands over the resolution client.
package app

import (
	"io"
	"log/slog"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/spf13/cobra"

	"github.com/zebr0/zebr0-go"
	"github.com/zebr0/zebr0-go/params"
)

// App represents the CLI application.
type App struct {
	version string
	commit  string
	date    string

	rootCmd *cobra.Command
	logger  *slog.Logger

	// Persistent flags
	confDir string
	verbose bool
}

// NewApp creates a new CLI application.
func NewApp(version, commit, date string) *App {
	a := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	a.rootCmd = &cobra.Command{
		Use:   "zebr0",
		Short: "Resolve configuration keys from a remote key-value repository",
		Long: `zebr0 resolves configuration keys against a remote key-value repository,
falling back from stage-scoped to project-scoped to global keys.

Examples:
  zebr0 setup -u http://localhost:8000 -p myproject -s production
  zebr0 get database-password
  zebr0 get motd --strip
  zebr0 template < nginx.conf.in > nginx.conf`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.setupLogger(cmd.ErrOrStderr())
		},
	}

	a.setupFlags()
	a.setupCommands()

	return a
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.rootCmd.Execute()
}

// setupFlags sets up persistent flags shared by all subcommands.
func (a *App) setupFlags() {
	flags := a.rootCmd.PersistentFlags()

	flags.StringVarP(&a.confDir, "conf-dir", "f", params.DefaultDir, "directory of the local parameter cache")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log lookups to stderr")
}

// setupCommands sets up subcommands.
func (a *App) setupCommands() {
	a.rootCmd.AddCommand(a.createSetupCommand())
	a.rootCmd.AddCommand(a.createGetCommand())
	a.rootCmd.AddCommand(a.createTemplateCommand())
	a.rootCmd.AddCommand(a.createVersionCommand())
}

// setupLogger builds the logger all subcommands share, writing to the
// command's error stream. Quiet by default; --verbose turns on debug logs,
// tagged with a short invocation ID so interleaved runs can be told apart.
func (a *App) setupLogger(w io.Writer) {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	a.logger = slog.New(handler).With("invocation", gonanoid.Must(8))
}

// client loads the parameter cache and builds a resolution client from it.
func (a *App) client() (*zebr0.Client, error) {
	p, err := params.Load(a.confDir)
	if err != nil {
		return nil, err
	}

	return zebr0.NewClient(zebr0.ClientConfig{
		Parameters: p,
		Logger:     a.logger,
	}), nil
}
