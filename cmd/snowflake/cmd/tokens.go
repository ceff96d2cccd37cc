package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var normalized bool

var tokensCmd = &cobra.Command{
	Use:   "tokens [file|-]",
	Short: "Dump the token stream of a source file",
	Long: `Prints one token per line with its position.

Without --normalized the raw scanner tokens are shown, including the
Indentation markers. With --normalized the markers are replaced by the
Newline, Indent and Dedent tokens the parser reads.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	tokensCmd.Flags().BoolVarP(&normalized, "normalized", "n", false, "show structural tokens")
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	src, name, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	tokens, tokErr := engine.Tokens(src, name, normalized)
	color := colorEnabled()
	out := cmd.OutOrStdout()
	for _, tok := range tokens {
		if tok.Type.IsError() {
			continue
		}
		pos := fmt.Sprintf("%4d:%-3d", tok.Pos.Line, tok.Pos.Column)
		fmt.Fprintf(out, "%s %s\n", paint(positionStyle, pos, color), tok)
	}

	if tokErr != nil {
		return report(cmd, tokErr, src)
	}
	return nil
}
