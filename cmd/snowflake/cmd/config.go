package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	sfconfig "github.com/msto63/snowflake/foundation/core/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		source := cfgFile
		if source == "" {
			source = os.Getenv(sfconfig.EnvConfigPath)
		}
		if source == "" {
			source = sfconfig.FindConfigFile()
		}
		if source == "" {
			source = "defaults"
		}
		fmt.Fprintf(out, "%s\n\n", paint(titleStyle, "# "+source, colorEnabled()))
		fmt.Fprint(out, cfg.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
