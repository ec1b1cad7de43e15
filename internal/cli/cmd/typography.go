package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/includs/internal/application/usecase"
	"github.com/bnema/includs/internal/cli/styles"
	"github.com/bnema/includs/internal/domain/entity"
	"github.com/bnema/includs/internal/domain/origin"
)

var (
	typoOrigin     string
	typoGlobal     bool
	typoOutput     string
	typoShowCSS    bool
	typoFontScale  float64
	typoLineHeight float64
)

var typographyCmd = &cobra.Command{
	Use:     "typography",
	Aliases: []string{"typo"},
	Short:   "Read and adjust font size and line height",
	Long: `Read and adjust typography settings.

Settings resolve in two layers: a site's own values (stored on this
device) win over the global values (stored in the synced preferences).
Without --origin every command works on the global layer.`,
}

var typographyGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the effective settings for a site",
	Long: `Show the effective font size and line height for a site.

Examples:
  includs typography get --origin https://example.com
  includs typography get --origin example.com --css
  includs typography get --output json`,
	Args: cobra.NoArgs,
	RunE: runTypographyGet,
}

var typographyIncreaseCmd = &cobra.Command{
	Use:       "increase font|line",
	Short:     "Increase font size or line height by one step",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"font", "line"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTypographyAdjust(cmd, args[0], entity.Increase)
	},
}

var typographyDecreaseCmd = &cobra.Command{
	Use:       "decrease font|line",
	Short:     "Decrease font size or line height by one step",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"font", "line"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTypographyAdjust(cmd, args[0], entity.Decrease)
	},
}

var typographyResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop a site's own settings so it follows the global ones",
	Args:  cobra.NoArgs,
	RunE:  runTypographyReset,
}

var typographySaveGlobalCmd = &cobra.Command{
	Use:   "save-global",
	Short: "Store new global settings",
	Long: `Store new global settings. Values are clamped to their allowed
range (font scale 0.8 to 2.0, line height 1.0 to 2.5) and rounded to
one decimal.

With --origin the site's current effective settings become global.`,
	Args: cobra.NoArgs,
	RunE: runTypographySaveGlobal,
}

var typographySitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "List sites with their own settings",
	Args:  cobra.NoArgs,
	RunE:  runTypographySites,
}

func init() {
	rootCmd.AddCommand(typographyCmd)
	typographyCmd.AddCommand(typographyGetCmd, typographyIncreaseCmd, typographyDecreaseCmd,
		typographyResetCmd, typographySaveGlobalCmd, typographySitesCmd)

	typographyCmd.PersistentFlags().StringVar(&typoOrigin, "origin", "", "page URL or origin the settings apply to")

	addOutputFlag(typographyGetCmd, &typoOutput)
	typographyGetCmd.Flags().BoolVar(&typoShowCSS, "css", false, "print the stylesheet that would be injected")

	for _, c := range []*cobra.Command{typographyIncreaseCmd, typographyDecreaseCmd} {
		c.Flags().BoolVar(&typoGlobal, "global", false, "adjust the global settings even when --origin is set")
	}

	typographySaveGlobalCmd.Flags().Float64Var(&typoFontScale, "font-scale", 0, "global font scale (e.g. 1.2)")
	typographySaveGlobalCmd.Flags().Float64Var(&typoLineHeight, "line-height", 0, "global line height (e.g. 1.6)")

	addOutputFlag(typographySitesCmd, &typoOutput)
}

// parseOriginFlag normalizes --origin. An empty flag means the global layer.
func parseOriginFlag() (string, error) {
	o, err := origin.Parse(typoOrigin)
	if err != nil {
		return "", fmt.Errorf("invalid --origin: %w", err)
	}
	return o, nil
}

func runTypographyGet(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	siteOrigin, err := parseOriginFlag()
	if err != nil {
		return err
	}

	eff := app.Typography(nil).Resolve(app.Ctx(), siteOrigin)

	if typoShowCSS {
		fmt.Fprint(cmd.OutOrStdout(), usecase.BuildTypographyCSS(eff.Settings))
		return nil
	}
	if done, err := writeStructured(cmd.OutOrStdout(), typoOutput, eff); done {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), styles.NewTypographyRenderer(app.Theme).RenderSettings(eff))
	return nil
}

func runTypographyAdjust(cmd *cobra.Command, rawField string, dir entity.Direction) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	field, err := entity.ParseTypographyField(rawField)
	if err != nil {
		return err
	}
	siteOrigin, err := parseOriginFlag()
	if err != nil {
		return err
	}
	if typoGlobal {
		siteOrigin = ""
	}

	uc := app.Typography(nil)
	current := uc.Resolve(app.Ctx(), siteOrigin)
	adj := uc.Adjust(app.Ctx(), current, field, dir)

	fmt.Fprint(cmd.OutOrStdout(), styles.NewTypographyRenderer(app.Theme).RenderAdjustment(adj))
	return nil
}

func runTypographyReset(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	siteOrigin, err := parseOriginFlag()
	if err != nil {
		return err
	}
	if siteOrigin == "" {
		return fmt.Errorf("--origin is required; use 'includs prefs reset' for global settings")
	}

	eff := app.Typography(nil).ResetToDefaults(app.Ctx(), siteOrigin)
	fmt.Fprint(cmd.OutOrStdout(), styles.NewTypographyRenderer(app.Theme).RenderReset(eff))
	return nil
}

func runTypographySaveGlobal(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	siteOrigin, err := parseOriginFlag()
	if err != nil {
		return err
	}

	uc := app.Typography(nil)
	s := uc.Resolve(app.Ctx(), siteOrigin).Settings
	if cmd.Flags().Changed("font-scale") {
		s.FontScale = typoFontScale
	}
	if cmd.Flags().Changed("line-height") {
		s.LineHeight = typoLineHeight
	}

	renderer := styles.NewTypographyRenderer(app.Theme)
	if err := uc.SaveAsGlobal(app.Ctx(), s); err != nil {
		fmt.Fprint(cmd.OutOrStdout(), renderer.RenderError(err))
		return &silentError{err: err}
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderSavedGlobal(s.Normalized()))
	return nil
}

func runTypographySites(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	sites, err := app.Typography(nil).ListOverrides(app.Ctx())
	if err != nil {
		return err
	}
	if done, err := writeStructured(cmd.OutOrStdout(), typoOutput, sites); done {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), styles.NewTypographyRenderer(app.Theme).RenderSites(sites))
	return nil
}
