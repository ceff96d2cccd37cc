package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	sfconfig "github.com/msto63/snowflake/foundation/core/config"
	sferror "github.com/msto63/snowflake/foundation/core/error"
	sflog "github.com/msto63/snowflake/foundation/core/log"
	"github.com/msto63/snowflake/foundation/lang"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

// state built by setup before every command
var (
	cfg    *sfconfig.Config
	logger *sflog.Logger
	engine *lang.Engine
)

var rootCmd = &cobra.Command{
	Use:   "snowflake",
	Short: "snowflake - language front end",
	Long: `snowflake scans, normalizes and parses snowflake source files.

Commands:
  tokens   - dump the raw or structural token stream
  parse    - print the syntax tree
  check    - report whether a file parses
  config   - show the effective configuration

Sources are read from a file, or from stdin when the file is "-" or omitted.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// reportedError marks an error whose diagnostic was already printed
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func Execute() error {
	err := rootCmd.Execute()
	var reported *reportedError
	if err != nil && !errors.As(err, &reported) {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $SNOWFLAKE_CONFIG or ./snowflake.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = sfconfig.Load(cfgFile)
		if err == nil {
			cfg.ApplyEnv()
		}
	} else {
		cfg, err = sfconfig.LoadFromEnv()
	}
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logCfg := cfg.LoggerConfig()
	logCfg.Output = cmd.ErrOrStderr()
	if verbose {
		logCfg.Level = sflog.LevelDebug
	}
	logger = sflog.NewWithConfig(logCfg).
		WithCorrelationID(uuid.NewString()).
		WithField("command", cmd.Name())

	engine, err = lang.NewEngineFromConfig(cfg, logger)
	return err
}

// colorEnabled combines the config setting with --no-color
func colorEnabled() bool {
	return !noColor && cfg != nil && cfg.ColorEnabled()
}

// readSource returns the text and display name of the file argument
func readSource(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", sferror.Wrap(err, "failed to read stdin").
				WithCode(sferror.CodeIOError).
				WithOperation("cli.readSource")
		}
		return string(data), "<stdin>", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", sferror.Wrap(err, "failed to read source").
			WithCode(sferror.CodeIOError).
			WithOperation("cli.readSource").
			WithDetail("filePath", args[0])
	}
	return string(data), args[0], nil
}

// report prints the diagnostic for a front-end failure and marks it reported
func report(cmd *cobra.Command, err error, src string) error {
	fmt.Fprint(cmd.ErrOrStderr(), renderDiagnostic(err, src, colorEnabled()))
	return &reportedError{err: err}
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", paint(errorLabelStyle, "error:", colorEnabled()), err)
}
