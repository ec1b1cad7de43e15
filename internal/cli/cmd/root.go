// Package cmd provides Cobra CLI commands for includs.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/includs/internal/cli"
	"github.com/bnema/includs/internal/cli/styles"
	"github.com/bnema/includs/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	verbose   bool
	rootCmd   = &cobra.Command{
		Use:   "includs",
		Short: "Readable text and plain-language explanations for any web page",
		Long: `includs - typography and explanations for web pages.

Adjust font size and line height globally or per site, inject the
resulting stylesheet into saved pages or a live browser page, and ask
OpenAI to explain difficult passages in plain language.

Account-wide preferences live in a synced JSON file; per-site settings
and API keys stay on this device.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "path", "schema", "init", "about":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{Verbose: verbose, LogOutput: cmd.ErrOrStderr()})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			if app.FirstRun {
				fmt.Fprint(cmd.ErrOrStderr(), styles.NewConfigRenderer(app.Theme).RenderOnboarding())
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at the configured level instead of warnings only")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var silent *silentError
		if !errors.As(err, &silent) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// silentError fails the command after its output already explained why.
type silentError struct {
	err error
}

func (e *silentError) Error() string {
	if e.err == nil {
		return "command failed"
	}
	return e.err.Error()
}

func (e *silentError) Unwrap() error { return e.err }

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.String()
}
