package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/includs/internal/application/usecase"
	"github.com/bnema/includs/internal/infrastructure/page"
	"github.com/bnema/includs/internal/logging"
)

const outputFilePerm = 0o644

var (
	renderForce bool
	renderOut   string
)

var renderCmd = &cobra.Command{
	Use:   "render [in.html]",
	Short: "Inject the typography stylesheet into an HTML file",
	Long: `Inject the managed typography stylesheet into an HTML document.

The document is read from the file argument (or stdin when it is "-" or
missing) and written to --out (or stdout). A single managed <style>
element is kept at the end of <head>; running render twice produces the
same output. At default settings the element is left empty.

When enabledByDefault is false the document passes through untouched
unless --force is given.

Examples:
  includs render --origin https://example.com page.html -o page.out.html
  curl -s https://example.com | includs render --origin example.com`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVar(&typoOrigin, "origin", "", "page URL or origin whose settings apply")
	renderCmd.Flags().BoolVar(&renderForce, "force", false, "apply even when includs is disabled by default")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "write the result to this file instead of stdout")
}

func runRender(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithComponent(app.Ctx(), "render")
	log := logging.FromContext(ctx)

	in, closeIn, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer closeIn()

	doc, err := page.ParseDocument(in)
	if err != nil {
		return err
	}

	siteOrigin, err := parseOriginFlag()
	if err != nil {
		return err
	}

	enabled := true
	if prefs, err := app.PreferencesUC.Load(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to load preferences, applying typography")
	} else {
		enabled = prefs.EnabledByDefault
	}

	if enabled || renderForce {
		eff := app.Typography(nil).Resolve(ctx, siteOrigin)
		css, changed, err := usecase.NewApplyTypographyUseCase(doc).ApplyToPage(ctx, eff.Settings)
		if err != nil {
			return err
		}
		log.Debug().
			Str("origin", siteOrigin).
			Bool("changed", changed).
			Int("css_bytes", len(css)).
			Msg("stylesheet injected")
	} else {
		log.Info().Msg("includs disabled by default, document left untouched")
	}

	out := cmd.OutOrStdout()
	if renderOut != "" {
		f, err := os.OpenFile(renderOut, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outputFilePerm)
		if err != nil {
			return fmt.Errorf("create %s: %w", renderOut, err)
		}
		defer f.Close()
		out = f
	}
	return doc.Render(out)
}

// openInput returns the file named by args[0], or stdin for "-" or no args.
func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", args[0], err)
	}
	return f, func() { _ = f.Close() }, nil
}
