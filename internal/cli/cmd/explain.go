package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/includs/internal/cli"
	"github.com/bnema/includs/internal/cli/styles"
	"github.com/bnema/includs/internal/domain/entity"
	"github.com/bnema/includs/internal/infrastructure/page"
	"github.com/bnema/includs/internal/logging"
)

// maxExplainInput bounds how much is read from a file or stdin. Anything
// past the explain limit is rejected by validation anyway.
const maxExplainInput = 1 << 20

var (
	explainFile     string
	explainHTML     string
	explainURL      string
	explainSelector string
	explainCopy     bool
	explainOutput   string
)

var explainCmd = &cobra.Command{
	Use:   "explain [text...]",
	Short: "Explain a passage in plain language with OpenAI",
	Long: `Send a passage to the configured OpenAI model and print a short,
plain-language explanation.

The text comes from exactly one source:
  arguments             includs explain "the text"
  --file F              a plain text file
  --html F [--selector] a paragraph of a saved HTML page
  --url U  [--selector] a paragraph of a live page (Playwright)
  stdin                 when no other source is given

Without --selector the first paragraph of at least 10 characters is used.
The text must be 10 to 5000 characters long. Requests are never retried.`,
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
	explainCmd.Flags().StringVar(&explainFile, "file", "", "read the text from a file")
	explainCmd.Flags().StringVar(&explainHTML, "html", "", "extract the text from an HTML file")
	explainCmd.Flags().StringVar(&explainURL, "url", "", "extract the text from a live page")
	explainCmd.Flags().StringVar(&explainSelector, "selector", "", "CSS selector of the block to explain (with --html or --url)")
	explainCmd.Flags().BoolVar(&explainCopy, "copy", false, "copy the explanation to the clipboard")
	addOutputFlag(explainCmd, &explainOutput)
	explainCmd.MarkFlagsMutuallyExclusive("file", "html", "url")
}

// explainOutputDoc is the --output json|yaml shape.
type explainOutputDoc struct {
	Explanation string       `json:"explanation,omitempty" yaml:"explanation,omitempty"`
	Source      string       `json:"source" yaml:"source"`
	Error       *errorOutput `json:"error,omitempty" yaml:"error,omitempty"`
}

type errorOutput struct {
	Kind       string `json:"kind" yaml:"kind"`
	Provider   string `json:"provider,omitempty" yaml:"provider,omitempty"`
	StatusCode int    `json:"status,omitempty" yaml:"status,omitempty"`
	Message    string `json:"message" yaml:"message"`
}

func newErrorOutput(err *entity.GatewayError) *errorOutput {
	if err == nil {
		return nil
	}
	return &errorOutput{
		Kind:       string(err.Kind),
		Provider:   string(err.Provider),
		StatusCode: err.StatusCode,
		Message:    err.Error(),
	}
}

func runExplain(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithComponent(app.Ctx(), "explain")

	req, err := readExplainRequest(ctx, cmd, app, args)
	if err != nil {
		return err
	}

	res := runTask(cmd, app, "Asking OpenAI...", func(ctx context.Context) entity.ExplainResult {
		return app.ExplainUC.ExplainText(logging.WithComponent(ctx, "explain"), req)
	})

	doc := explainOutputDoc{Explanation: res.Explanation, Source: string(res.Source), Error: newErrorOutput(res.Err)}
	if done, err := writeStructured(cmd.OutOrStdout(), explainOutput, doc); done {
		if err != nil {
			return err
		}
		return explainExitError(res)
	}

	renderer := styles.NewExplainRenderer(app.Theme, 0, markdownStyle(cmd))
	if !res.OK() {
		fmt.Fprint(cmd.OutOrStdout(), renderer.RenderFailure(res.Err))
		return explainExitError(res)
	}

	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderExplanation(res))
	if explainCopy {
		if err := app.Clipboard.WriteText(ctx, res.Explanation); err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), renderer.RenderCopied())
	}
	return nil
}

// markdownStyle picks plain markdown when stdout is piped.
func markdownStyle(cmd *cobra.Command) string {
	if isTerminal(cmd.OutOrStdout()) {
		return styles.MarkdownStyleDark
	}
	return styles.MarkdownStylePlain
}

// explainExitError turns a failed result into a non-zero exit without
// printing the message a second time.
func explainExitError(res entity.ExplainResult) error {
	if res.OK() {
		return nil
	}
	return &silentError{err: res.Err}
}

// readExplainRequest collects the text and tags its source.
func readExplainRequest(ctx context.Context, cmd *cobra.Command, app *cli.App, args []string) (entity.ExplainRequest, error) {
	switch {
	case len(args) > 0:
		if explainFile != "" || explainHTML != "" || explainURL != "" {
			return entity.ExplainRequest{}, fmt.Errorf("pass the text either as arguments or with a flag, not both")
		}
		return entity.ExplainRequest{Text: strings.Join(args, " "), Source: entity.SourceArgs}, nil

	case explainFile != "":
		text, err := readLimited(explainFile, nil)
		if err != nil {
			return entity.ExplainRequest{}, err
		}
		return entity.ExplainRequest{Text: text, Source: entity.SourceFile}, nil

	case explainHTML != "":
		f, err := os.Open(explainHTML)
		if err != nil {
			return entity.ExplainRequest{}, fmt.Errorf("open %s: %w", explainHTML, err)
		}
		defer f.Close()
		doc, err := page.ParseDocument(io.LimitReader(f, maxExplainInput))
		if err != nil {
			return entity.ExplainRequest{}, err
		}
		return entity.ExplainRequest{Text: documentBlock(doc), Source: entity.SourceParagraph}, nil

	case explainURL != "":
		return liveBlock(ctx, app)

	default:
		text, err := readLimited("", cmd.InOrStdin())
		if err != nil {
			return entity.ExplainRequest{}, err
		}
		return entity.ExplainRequest{Text: text, Source: entity.SourceStdin}, nil
	}
}

func documentBlock(doc *page.Document) string {
	if explainSelector != "" {
		return doc.BlockText(explainSelector)
	}
	return doc.FirstParagraph(entity.ExplainMinChars)
}

// liveBlock opens --url headless and reads the selected block.
func liveBlock(ctx context.Context, app *cli.App) (entity.ExplainRequest, error) {
	browser, err := launchBrowser(app, true)
	if err != nil {
		return entity.ExplainRequest{}, err
	}
	defer func() {
		if err := browser.Close(); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("failed to close browser")
		}
	}()

	if err := browser.Open(pageURL(explainURL)); err != nil {
		return entity.ExplainRequest{}, err
	}
	selector := explainSelector
	if selector == "" {
		selector = "p"
	}
	text, err := browser.BlockText(selector)
	if err != nil {
		return entity.ExplainRequest{}, err
	}
	return entity.ExplainRequest{Text: text, Source: entity.SourceParagraph}, nil
}

// readLimited reads path, or r when path is empty.
func readLimited(path string, r io.Reader) (string, error) {
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(io.LimitReader(r, maxExplainInput))
	if err != nil {
		return "", fmt.Errorf("read text: %w", err)
	}
	return string(data), nil
}
