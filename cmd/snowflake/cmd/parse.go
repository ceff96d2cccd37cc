package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	sferror "github.com/msto63/snowflake/foundation/core/error"
	sfast "github.com/msto63/snowflake/foundation/lang/ast"
)

var (
	outputFormat string
	positions    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file|-]",
	Short: "Print the syntax tree of a source file",
	Long: `Parses a source file and prints its syntax tree.

Formats:
  sexpr  - one s-expression per statement (default)
  tree   - indented node dump
  json   - nested objects, one per node
  yaml   - the same structure as YAML`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format: sexpr, tree, json or yaml (default from config)")
	parseCmd.Flags().BoolVar(&positions, "positions", false, "include node positions in tree output")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	format := outputFormat
	if format == "" {
		format = cfg.Output.Format
	}

	src, name, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	prog, err := engine.Parse(src, name)
	if err != nil {
		return report(cmd, err, src)
	}

	text, err := renderProgram(prog, format)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}

func renderProgram(prog *sfast.Program, format string) (string, error) {
	switch strings.ToLower(format) {
	case "", "sexpr":
		var b strings.Builder
		for _, stmt := range prog.Statements {
			b.WriteString(stmt.String())
			b.WriteByte('\n')
		}
		return b.String(), nil
	case "tree":
		return (&sfast.TreePrinter{Positions: positions}).Print(prog), nil
	case "json":
		data, err := json.MarshalIndent(sfast.Encode(prog), "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode json: %w", err)
		}
		return string(data) + "\n", nil
	case "yaml":
		data, err := yaml.Marshal(sfast.Encode(prog))
		if err != nil {
			return "", fmt.Errorf("encode yaml: %w", err)
		}
		return string(data), nil
	default:
		return "", sferror.New(fmt.Sprintf("unknown output format %q", format)).
			WithCode(sferror.CodeInvalidInput).
			WithOperation("cli.renderProgram")
	}
}
