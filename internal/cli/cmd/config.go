package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/includs/internal/cli/styles"
	"github.com/bnema/includs/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration file",
	Long: `Inspect the TOML configuration file.

The file lives at $XDG_CONFIG_HOME/includs/config.toml and is created with
defaults on first run. INCLUDS_* environment variables override it, for
example INCLUDS_LOG_LEVEL=debug.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print where includs keeps its files",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of config.toml",
	Long: `Print the JSON schema of config.toml for editor completion, e.g. with
taplo or the Even Better TOML extension.`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file if it does not exist",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configSchemaCmd, configInitCmd)
}

// runConfigPath runs without the app so it works with a broken config.
func runConfigPath(cmd *cobra.Command, _ []string) error {
	renderer := styles.NewConfigRenderer(styles.NewTheme(nil))

	paths := make([]string, 0, 4)
	for _, get := range []func() (string, error){
		config.GetConfigFile, config.GetDatabaseFile, config.GetSyncFile, config.GetLogDir,
	} {
		p, err := get()
		if err != nil {
			fmt.Fprint(cmd.OutOrStdout(), renderer.RenderError(err))
			return &silentError{err: err}
		}
		paths = append(paths, p)
	}

	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderPaths(paths[0], paths[1], paths[2], paths[3]))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	data, err := config.Schema()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	renderer := styles.NewConfigRenderer(styles.NewTheme(nil))

	mgr, err := config.NewManager()
	if err != nil {
		return err
	}
	if err := mgr.Load(); err != nil {
		fmt.Fprint(cmd.OutOrStdout(), renderer.RenderError(err))
		return &silentError{err: err}
	}

	if mgr.Created() {
		fmt.Fprint(cmd.OutOrStdout(), renderer.RenderCreated(mgr.GetConfigFile()))
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderExists(mgr.GetConfigFile()))
	return nil
}
