package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/includs/internal/application/usecase"
	"github.com/bnema/includs/internal/cli/styles"
	"github.com/bnema/includs/internal/domain/entity"
	"github.com/bnema/includs/internal/logging"
)

var (
	voicesRefresh bool
	voicesOutput  string
)

var voicesCmd = &cobra.Command{
	Use:   "voices",
	Short: "List and select ElevenLabs voices",
}

var voicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the cached voices",
	Long: `List the voices cached by the last successful ElevenLabs key test.

With --refresh, or when nothing is cached, the list is fetched again with
the stored key. The selected voice is marked with *.`,
	Args: cobra.NoArgs,
	RunE: runVoicesList,
}

var voicesSelectCmd = &cobra.Command{
	Use:   "select VOICE_ID",
	Short: "Choose the voice used for read-aloud",
	Args:  cobra.ExactArgs(1),
	RunE:  runVoicesSelect,
}

func init() {
	rootCmd.AddCommand(voicesCmd)
	voicesCmd.AddCommand(voicesListCmd, voicesSelectCmd)

	voicesListCmd.Flags().BoolVar(&voicesRefresh, "refresh", false, "fetch the list from ElevenLabs")
	addOutputFlag(voicesListCmd, &voicesOutput)
}

type voiceListResult struct {
	voices []entity.Voice
	err    error
}

func runVoicesList(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewKeysRenderer(app.Theme)

	res := runTask(cmd, app, "Loading voices...", func(ctx context.Context) voiceListResult {
		voices, err := app.CredentialsUC.ListVoices(logging.WithComponent(ctx, "voices"), voicesRefresh)
		return voiceListResult{voices: voices, err: err}
	})
	if res.err != nil {
		fmt.Fprint(cmd.OutOrStdout(), renderer.RenderError(res.err))
		return &silentError{err: res.err}
	}

	if done, err := writeStructured(cmd.OutOrStdout(), voicesOutput, res.voices); done {
		return err
	}

	cred, err := app.CredentialsUC.Credential(app.Ctx(), entity.ProviderElevenLabs)
	if err != nil {
		logging.FromContext(app.Ctx()).Warn().Err(err).Msg("failed to load selected voice")
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderVoices(res.voices, cred.VoiceID))
	return nil
}

func runVoicesSelect(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewKeysRenderer(app.Theme)

	v, err := app.CredentialsUC.SelectVoice(logging.WithComponent(app.Ctx(), "voices"), args[0])
	if err != nil {
		fmt.Fprint(cmd.OutOrStdout(), renderer.RenderError(err))
		if errors.Is(err, usecase.ErrUnknownVoice) {
			fmt.Fprintln(cmd.OutOrStdout(), "  "+app.Theme.Subtle.Render("Run 'includs voices list' to see the cached voices."))
		}
		return &silentError{err: err}
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderVoiceSelected(v))
	return nil
}
