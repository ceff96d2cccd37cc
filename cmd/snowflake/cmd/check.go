package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var quiet bool

var checkCmd = &cobra.Command{
	Use:   "check [file|-]",
	Short: "Check that a source file parses",
	Long: `Parses a source file and exits with status 1 when it contains a
lexical, indentation or syntax error.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print nothing on success")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	src, name, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	if err := engine.Check(src, name); err != nil {
		return report(cmd, err, src)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", name, paint(okStyle, "ok", colorEnabled()))
	}
	return nil
}
