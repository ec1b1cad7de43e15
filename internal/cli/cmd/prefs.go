package cmd

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/includs/internal/application/usecase"
	"github.com/bnema/includs/internal/cli/styles"
	"github.com/bnema/includs/internal/logging"
)

var (
	prefsOutput string
	prefsYes    bool
)

var prefsCmd = &cobra.Command{
	Use:     "prefs",
	Aliases: []string{"preferences"},
	Short:   "Show and change synced preferences",
	Long: `Show and change the account-wide preferences stored in the synced
preferences file (sync.path in the config).`,
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current preferences",
	Args:  cobra.NoArgs,
	RunE:  runPrefsShow,
}

var prefsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change one preference",
	Long: `Change one preference. Typography values are clamped and rounded.

Keys:
  enabledByDefault   true|false
  fontScale          0.8 to 2.0
  lineHeight         1.0 to 2.5
  ttsSpeed           slow|normal|fast
  toolbarPosition    left|right
  explainMode        free text, "simple" by default
  helpTipsEnabled    true|false
  openaiPrompt       system prompt for explain, empty for the default`,
	Args: cobra.ExactArgs(2),
	ValidArgs: []string{
		usecase.KeyEnabledByDefault, usecase.KeyFontScale, usecase.KeyLineHeight,
		usecase.KeyTTSSpeed, usecase.KeyToolbarPosition, usecase.KeyExplainMode,
		usecase.KeyHelpTipsEnabled, usecase.KeyOpenAIPrompt,
	},
	RunE: runPrefsSet,
}

var prefsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default preferences, keeping API keys",
	Long: `Restore the default preferences and provider settings.

API keys are kept but marked untested. The cached voice list and the
selected voice are cleared. Per-site typography is not touched; use
'includs typography reset --origin' for that.`,
	Args: cobra.NoArgs,
	RunE: runPrefsReset,
}

func init() {
	rootCmd.AddCommand(prefsCmd)
	prefsCmd.AddCommand(prefsShowCmd, prefsSetCmd, prefsResetCmd)

	addOutputFlag(prefsShowCmd, &prefsOutput)
	prefsResetCmd.Flags().BoolVarP(&prefsYes, "yes", "y", false, "skip the confirmation")
}

func runPrefsShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	prefs, err := app.PreferencesUC.Load(logging.WithComponent(app.Ctx(), "prefs"))
	if err != nil {
		return err
	}
	if done, err := writeStructured(cmd.OutOrStdout(), prefsOutput, prefs); done {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), styles.NewPrefsRenderer(app.Theme).RenderPreferences(prefs))
	return nil
}

func runPrefsSet(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewPrefsRenderer(app.Theme)

	key, raw := args[0], args[1]
	if _, err := app.PreferencesUC.SetValue(logging.WithComponent(app.Ctx(), "prefs"), key, raw); err != nil {
		fmt.Fprint(cmd.OutOrStdout(), renderer.RenderError(err))
		if errors.Is(err, usecase.ErrInvalidPreferences) {
			fmt.Fprintln(cmd.OutOrStdout(), "  "+app.Theme.Subtle.Render("Run 'includs prefs set --help' for the accepted values."))
		}
		return &silentError{err: err}
	}
	if raw == "" {
		raw = `""`
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderUpdated(key, raw))
	return nil
}

func runPrefsReset(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewPrefsRenderer(app.Theme)

	if !prefsYes {
		if !isTerminal(cmd.InOrStdin()) {
			return fmt.Errorf("refusing to reset without a terminal; pass --yes")
		}
		confirm := styles.NewConfirm(app.Theme, "Reset all preferences?", "API keys are kept. Per-site settings are not touched.")
		final, err := tea.NewProgram(confirm, tea.WithOutput(cmd.ErrOrStderr())).Run()
		if err != nil {
			return fmt.Errorf("confirmation: %w", err)
		}
		if result, ok := final.(styles.ConfirmModel); !ok || !result.Result() {
			fmt.Fprint(cmd.OutOrStdout(), renderer.RenderCanceled())
			return nil
		}
	}

	if err := app.PreferencesUC.ResetAll(logging.WithComponent(app.Ctx(), "prefs")); err != nil {
		fmt.Fprint(cmd.OutOrStdout(), renderer.RenderError(err))
		return &silentError{err: err}
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderReset())
	return nil
}
