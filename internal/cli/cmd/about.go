package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/includs/internal/cli/styles"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprint(cmd.OutOrStdout(), styles.NewAboutRenderer(styles.NewTheme(nil)).Render(buildInfo))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}
