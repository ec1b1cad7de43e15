package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/includs/internal/application/port"
	"github.com/bnema/includs/internal/application/usecase"
	"github.com/bnema/includs/internal/cli"
	"github.com/bnema/includs/internal/cli/styles"
	"github.com/bnema/includs/internal/domain/entity"
	"github.com/bnema/includs/internal/logging"
)

var doctorBrowser bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check storage, keys and optional tools",
	Long: `Doctor checks that includs can read its stores and reports which
optional features are usable.

Failed checks make the command exit non-zero. Missing API keys and a
missing clipboard tool are warnings. With --browser, Playwright is
launched once to confirm previews work.

Examples:
  includs doctor
  includs doctor --browser`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorBrowser, "browser", false, "also launch the preview browser")
}

type availabilityChecker interface {
	Available() bool
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	checks := doctorChecks(app)
	if doctorBrowser {
		checks = append(checks, browserCheck(app))
	}

	fmt.Fprint(cmd.OutOrStdout(), styles.NewDoctorRenderer(app.Theme).Render(checks))
	for _, c := range checks {
		if c.Level == styles.CheckFail {
			return &silentError{err: fmt.Errorf("%s check failed", c.Name)}
		}
	}
	return nil
}

func doctorChecks(app *cli.App) []styles.DoctorCheck {
	ctx := logging.WithComponent(app.Ctx(), "doctor")
	cfg := app.Config

	checks := []styles.DoctorCheck{{Name: "Config", Level: styles.CheckOK, Detail: app.Manager.GetConfigFile()}}

	if prefs, err := app.PreferencesUC.Load(ctx); err != nil {
		checks = append(checks, styles.DoctorCheck{Name: "Synced preferences", Level: styles.CheckFail, Detail: err.Error()})
	} else {
		checks = append(checks, styles.DoctorCheck{
			Name:   "Synced preferences",
			Level:  styles.CheckOK,
			Detail: fmt.Sprintf("%s (v%d)", cfg.Sync.Path, prefs.Version),
		})
	}

	if _, err := app.Store.Get(ctx, port.ScopeLocal, usecase.KeyOpenAIModel); err != nil {
		checks = append(checks, styles.DoctorCheck{Name: "Local store", Level: styles.CheckFail, Detail: err.Error()})
	} else {
		checks = append(checks, styles.DoctorCheck{
			Name:   "Local store",
			Level:  styles.CheckOK,
			Detail: fmt.Sprintf("%s (secrets: %s)", cfg.Database.Path, cfg.Secrets.Backend),
		})
	}

	for _, cred := range app.CredentialsUC.Status(ctx) {
		checks = append(checks, keyCheck(cred))
	}

	if checker, ok := app.Clipboard.(availabilityChecker); ok && !checker.Available() {
		checks = append(checks, styles.DoctorCheck{Name: "Clipboard", Level: styles.CheckWarn, Detail: "no clipboard tool found, --copy will fail"})
	} else {
		checks = append(checks, styles.DoctorCheck{Name: "Clipboard", Level: styles.CheckOK})
	}
	return checks
}

func keyCheck(cred entity.ProviderCredential) styles.DoctorCheck {
	name := cred.Provider.DisplayName() + " key"
	switch cred.Status() {
	case entity.KeyValid:
		return styles.DoctorCheck{Name: name, Level: styles.CheckOK, Detail: entity.MaskAPIKey(cred.APIKey)}
	case entity.KeyInvalid:
		return styles.DoctorCheck{
			Name:   name,
			Level:  styles.CheckWarn,
			Detail: fmt.Sprintf("not verified, run 'includs keys test %s'", cred.Provider),
		}
	default:
		return styles.DoctorCheck{
			Name:   name,
			Level:  styles.CheckWarn,
			Detail: fmt.Sprintf("not set, run 'includs keys set %s'", cred.Provider),
		}
	}
}

func browserCheck(app *cli.App) styles.DoctorCheck {
	browser, err := launchBrowser(app, true)
	if err != nil {
		return styles.DoctorCheck{Name: "Preview browser", Level: styles.CheckFail, Detail: err.Error()}
	}
	if err := browser.Close(); err != nil {
		logging.FromContext(app.Ctx()).Warn().Err(err).Msg("failed to close browser")
	}
	return styles.DoctorCheck{Name: "Preview browser", Level: styles.CheckOK, Detail: "Chromium via Playwright"}
}
