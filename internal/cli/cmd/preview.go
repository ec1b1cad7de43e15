package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/includs/internal/application/usecase"
	"github.com/bnema/includs/internal/cli"
	"github.com/bnema/includs/internal/cli/styles"
	"github.com/bnema/includs/internal/infrastructure/page"
	"github.com/bnema/includs/internal/logging"
)

var previewScreenshot string

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Open a live page with the typography stylesheet applied",
	Long: `Open a page in Chromium (through Playwright) and inject the
typography stylesheet for its origin.

With --screenshot the page is captured and the browser closes. Otherwise
a headed browser stays open until Ctrl+C. Set browser.install_driver in
the config to download Playwright and Chromium on first use.

Examples:
  includs preview --origin https://example.com --screenshot out.png`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVar(&typoOrigin, "origin", "", "page URL to open")
	previewCmd.Flags().StringVar(&previewScreenshot, "screenshot", "", "save a full-page PNG and exit")
	_ = previewCmd.MarkFlagRequired("origin")
}

// launchBrowser starts the preview browser from the app's config.
func launchBrowser(app *cli.App, headless bool) (*page.Browser, error) {
	bc := app.Config.Browser
	return page.LaunchBrowser(page.BrowserOptions{
		Headless:       headless,
		Install:        bc.InstallDriver,
		ViewportWidth:  bc.ViewportWidth,
		ViewportHeight: bc.ViewportHeight,
		TimeoutMS:      bc.TimeoutMS,
	})
}

func runPreview(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithComponent(app.Ctx(), "preview")

	siteOrigin, err := parseOriginFlag()
	if err != nil {
		return err
	}

	headless := app.Config.Browser.Headless || previewScreenshot != ""
	browser, err := launchBrowser(app, headless)
	if err != nil {
		return err
	}
	defer func() {
		if err := browser.Close(); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("failed to close browser")
		}
	}()

	if err := browser.Open(pageURL(typoOrigin)); err != nil {
		return err
	}

	eff := app.Typography(nil).Resolve(ctx, siteOrigin)
	if _, _, err := usecase.NewApplyTypographyUseCase(browser).ApplyToPage(ctx, eff.Settings); err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), styles.NewTypographyRenderer(app.Theme).RenderSettings(eff))

	if previewScreenshot != "" {
		if err := browser.Screenshot(previewScreenshot); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n  Saved %s\n", previewScreenshot)
		return nil
	}

	if headless {
		return nil
	}

	waitCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	fmt.Fprintln(cmd.OutOrStdout(), "\n  Press Ctrl+C to close the browser.")
	<-waitCtx.Done()
	return nil
}

// pageURL adds https:// to bare hosts so the browser can navigate.
func pageURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, "://") {
		return raw
	}
	return "https://" + raw
}
