package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/includs/internal/application/port"
	"github.com/bnema/includs/internal/cli/model"
	"github.com/bnema/includs/internal/cli/styles"
	"github.com/bnema/includs/internal/infrastructure/config"
	"github.com/bnema/includs/internal/infrastructure/page"
	"github.com/bnema/includs/internal/infrastructure/storage"
	"github.com/bnema/includs/internal/logging"
)

var (
	toolbarBrowser bool
	toolbarForce   bool
)

var toolbarCmd = &cobra.Command{
	Use:   "toolbar",
	Short: "Interactive reading toolbar",
	Long: `Open the interactive reading toolbar for a site.

Keys adjust font size and line height, reset the site to the global
settings, save the current values as global and explain a pasted passage.
Press ? for all keys.

Without --browser the stylesheet is kept in memory and printed on exit.
With --browser the site opens in Chromium and every change is applied to
the live page. Changes made on another device (through the synced
preferences file) show up while the toolbar is open.

Examples:
  includs toolbar --origin https://example.com
  includs toolbar --origin example.com --browser`,
	Args: cobra.NoArgs,
	RunE: runToolbar,
}

func init() {
	rootCmd.AddCommand(toolbarCmd)
	toolbarCmd.Flags().StringVar(&typoOrigin, "origin", "", "page URL or origin (empty for the global settings)")
	toolbarCmd.Flags().BoolVar(&toolbarBrowser, "browser", false, "open the page in Chromium and style it live")
	toolbarCmd.Flags().BoolVar(&toolbarForce, "force", false, "start enabled even when includs is disabled by default")
}

func runToolbar(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx, cancel := context.WithCancel(logging.WithComponent(app.Ctx(), "toolbar"))
	defer cancel()
	log := logging.FromContext(ctx)

	siteOrigin, err := parseOriginFlag()
	if err != nil {
		return err
	}

	enabled := true
	if prefs, err := app.PreferencesUC.Load(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to load preferences")
	} else {
		enabled = prefs.EnabledByDefault || toolbarForce
	}

	var sheet port.StyleSheet
	memory := page.NewMemoryStyleSheet()
	sheet = memory
	if toolbarBrowser {
		if siteOrigin == "" {
			return fmt.Errorf("--browser needs --origin")
		}
		browser, err := launchBrowser(app, false)
		if err != nil {
			return err
		}
		defer func() {
			if err := browser.Close(); err != nil {
				log.Warn().Err(err).Msg("failed to close browser")
			}
		}()
		if err := browser.Open(pageURL(typoOrigin)); err != nil {
			return err
		}
		sheet = browser
	}

	m := model.NewToolbarModel(ctx, app.Theme, model.ToolbarDeps{
		Typography: app.Typography(sheet),
		Explainer:  app.ExplainUC,
		Clipboard:  app.Clipboard,
		Sheet:      sheet,
	}, siteOrigin, enabled)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx), tea.WithOutput(cmd.OutOrStdout()))

	go func() {
		var err error
		defer func() {
			if err != nil {
				log.Warn().Err(err).Msg("synced preferences watcher stopped")
			}
		}()
		defer logging.RecoverPanic(ctx, "sync watcher", &err)

		err = app.Synced.Watch(ctx, func(changes []storage.Change) {
			var keys []string
			for _, c := range changes {
				if c.Scope == port.ScopeSynced {
					keys = append(keys, c.Keys...)
				}
			}
			if len(keys) > 0 {
				p.Send(model.SyncChangedMsg{Keys: keys})
			}
		})
	}()

	app.Manager.OnConfigChange(func(cfg *config.Config) {
		p.Send(model.ThemeChangedMsg{Theme: styles.NewTheme(cfg)})
	})
	app.Manager.Watch()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("toolbar: %w", err)
	}

	final := m.Settings()
	fmt.Fprint(cmd.OutOrStdout(), styles.NewTypographyRenderer(app.Theme).RenderSettings(final))
	if !toolbarBrowser {
		if css, _ := memory.Text(ctx); css != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", css)
		}
	}
	return nil
}
