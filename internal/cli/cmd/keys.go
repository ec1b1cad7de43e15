package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/includs/internal/cli"
	"github.com/bnema/includs/internal/cli/model"
	"github.com/bnema/includs/internal/cli/styles"
	"github.com/bnema/includs/internal/domain/entity"
	"github.com/bnema/includs/internal/logging"
)

var errPromptCanceled = errors.New("canceled")

var (
	keysEndpoint string
	keysModel    string
	keysRemove   bool
	keysTestKey  string
	keysOutput   string
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage OpenAI and ElevenLabs API keys",
	Long: `Manage provider API keys.

Keys are stored on this device only, in the local database or the system
keyring (secrets.backend in the config). A key is marked valid only after
'includs keys test' succeeds; saving a key clears its validity.`,
}

var keysSetCmd = &cobra.Command{
	Use:       "set openai|elevenlabs",
	Short:     "Store an API key",
	ValidArgs: []string{"openai", "elevenlabs"},
	Long: `Store an API key for a provider.

The key is read from a masked prompt on a terminal, or from stdin when
piped. ElevenLabs keys have all whitespace removed; OpenAI keys are
trimmed. An empty key, or --remove, deletes the stored key.

For OpenAI, --endpoint and --model change the chat completions endpoint
and model without touching the key. Pass an empty value to restore the
default.

Examples:
  includs keys set openai
  pass show openai | includs keys set openai
  includs keys set openai --model gpt-4o --endpoint https://proxy.local/v1/chat/completions`,
	Args: cobra.ExactArgs(1),
	RunE: runKeysSet,
}

var keysTestCmd = &cobra.Command{
	Use:       "test openai|elevenlabs",
	Short:     "Check a key against the provider",
	ValidArgs: []string{"openai", "elevenlabs"},
	Long: `Check an API key with one live request and store the outcome.

OpenAI keys are tested with a minimal chat completion; ElevenLabs keys by
listing voices, which also refreshes the cached voice list. Without --key
the stored key is tested.`,
	Args: cobra.ExactArgs(1),
	RunE: runKeysTest,
}

var keysStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show stored keys (masked) and provider settings",
	Args:  cobra.NoArgs,
	RunE:  runKeysStatus,
}

func init() {
	rootCmd.AddCommand(keysCmd)
	keysCmd.AddCommand(keysSetCmd, keysTestCmd, keysStatusCmd)

	keysSetCmd.Flags().StringVar(&keysEndpoint, "endpoint", "", "OpenAI chat completions endpoint")
	keysSetCmd.Flags().StringVar(&keysModel, "model", "", "OpenAI model")
	keysSetCmd.Flags().BoolVar(&keysRemove, "remove", false, "delete the stored key")

	keysTestCmd.Flags().StringVar(&keysTestKey, "key", "", "test this key instead of the stored one")

	addOutputFlag(keysStatusCmd, &keysOutput)
}

func runKeysSet(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithComponent(app.Ctx(), "keys")
	renderer := styles.NewKeysRenderer(app.Theme)

	p, err := entity.ParseProvider(args[0])
	if err != nil {
		return err
	}

	settingsChanged := cmd.Flags().Changed("endpoint") || cmd.Flags().Changed("model")
	if settingsChanged {
		if p != entity.ProviderOpenAI {
			return fmt.Errorf("--endpoint and --model only apply to openai")
		}
		if err := saveCompletionSettings(ctx, cmd, app); err != nil {
			fmt.Fprint(cmd.OutOrStdout(), renderer.RenderError(err))
			return &silentError{err: err}
		}
		fmt.Fprint(cmd.OutOrStdout(), renderer.RenderStatus(app.CredentialsUC.Status(ctx)[:1]))
		if !keysRemove {
			return nil
		}
	}

	key := ""
	if !keysRemove {
		key, err = readKey(cmd, app, p)
		if errors.Is(err, errPromptCanceled) {
			return nil
		}
		if err != nil {
			return err
		}
	}

	if err := app.CredentialsUC.SaveAPIKey(ctx, p, key); err != nil {
		fmt.Fprint(cmd.OutOrStdout(), renderer.RenderError(err))
		return &silentError{err: err}
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderSaved(p, strings.TrimSpace(key)))
	return nil
}

// saveCompletionSettings merges the changed flags into the stored OpenAI
// settings so one flag does not reset the other.
func saveCompletionSettings(ctx context.Context, cmd *cobra.Command, app *cli.App) error {
	cred, err := app.CredentialsUC.Credential(ctx, entity.ProviderOpenAI)
	if err != nil {
		return err
	}
	endpoint, modelName := cred.Endpoint, cred.Model
	if cmd.Flags().Changed("endpoint") {
		endpoint = keysEndpoint
	}
	if cmd.Flags().Changed("model") {
		modelName = keysModel
	}
	return app.CredentialsUC.SetCompletionSettings(ctx, endpoint, modelName)
}

// readKey prompts on a terminal and reads stdin otherwise.
func readKey(cmd *cobra.Command, app *cli.App, p entity.Provider) (string, error) {
	if !isTerminal(cmd.InOrStdin()) {
		data, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), 4096))
		if err != nil {
			return "", fmt.Errorf("read key: %w", err)
		}
		return string(data), nil
	}

	m := model.NewKeyPromptModel(app.Theme, p.DisplayName()+" API key")
	if _, err := tea.NewProgram(m, tea.WithOutput(cmd.ErrOrStderr())).Run(); err != nil {
		return "", fmt.Errorf("key prompt: %w", err)
	}
	if m.Canceled() {
		return "", errPromptCanceled
	}
	return m.Value(), nil
}

func runKeysTest(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	p, err := entity.ParseProvider(args[0])
	if err != nil {
		return err
	}

	label := "Testing " + p.DisplayName() + " key..."
	res := runTask(cmd, app, label, func(ctx context.Context) entity.KeyTestResult {
		ctx = logging.WithComponent(ctx, "keys")
		if p == entity.ProviderElevenLabs {
			return app.CredentialsUC.TestVoiceKey(ctx, keysTestKey)
		}
		return app.CredentialsUC.TestCompletionKey(ctx, keysTestKey)
	})

	fmt.Fprint(cmd.OutOrStdout(), styles.NewKeysRenderer(app.Theme).RenderTestResult(res))
	if !res.Valid {
		return &silentError{err: res.Err}
	}
	return nil
}

func runKeysStatus(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	creds := app.CredentialsUC.Status(logging.WithComponent(app.Ctx(), "keys"))
	if done, err := writeStructured(cmd.OutOrStdout(), keysOutput, keyStatusDocs(creds)); done {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), styles.NewKeysRenderer(app.Theme).RenderStatus(creds))
	return nil
}

// keyStatusDoc is the --output json|yaml shape. Keys are masked.
type keyStatusDoc struct {
	entity.ProviderCredential `yaml:",inline"`

	Key    string           `json:"key,omitempty" yaml:"key,omitempty"`
	Status entity.KeyStatus `json:"status" yaml:"status"`
}

func keyStatusDocs(creds []entity.ProviderCredential) []keyStatusDoc {
	out := make([]keyStatusDoc, 0, len(creds))
	for _, c := range creds {
		out = append(out, keyStatusDoc{
			ProviderCredential: c,
			Key:                entity.MaskAPIKey(c.APIKey),
			Status:             c.Status(),
		})
	}
	return out
}
