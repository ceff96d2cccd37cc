package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MakeNowJust/heredoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sfconfig "github.com/msto63/snowflake/foundation/core/config"
	sferror "github.com/msto63/snowflake/foundation/core/error"
	sfparser "github.com/msto63/snowflake/foundation/lang/parser"
)

// run executes the root command in an empty working directory and returns
// what it wrote to stdout and stderr
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	for _, env := range []string{sfconfig.EnvConfigPath, sfconfig.EnvLogLevel, sfconfig.EnvLogFormat, sfconfig.EnvOutputFormat} {
		t.Setenv(env, "")
	}

	cfgFile, verbose, noColor = "", false, false
	normalized, outputFormat, positions, quiet = false, "", false, false

	var stdout, stderr bytes.Buffer
	rootCmd.SetArgs(append([]string{"--no-color"}, args...))
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)

	err := Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

var fibProgram = heredoc.Doc(`
	fib n => match n =>
	  0 => 0
	  1 => 1
	  _ => fib (n - 1) + fib (n - 2)
`)

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "snowflake v"+Version)
	assert.Contains(t, stdout, "Go Version:")
}

func TestParse_Formats(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{"Default is sexpr", nil, "(fn f (x) (+ x 1))\n"},
		{"Tree", []string{"--format", "tree"}, "Program"},
		{"YAML", []string{"--format", "yaml"}, "node: Program"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := run(t, "f x => x + 1\n", append([]string{"parse"}, tt.args...)...)
			require.NoError(t, err)
			assert.Empty(t, stderr)
			assert.Contains(t, stdout, tt.contains)
		})
	}
}

func TestParse_JSON(t *testing.T) {
	stdout, _, err := run(t, fibProgram, "parse", "-f", "json", "-")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &decoded))
	assert.Equal(t, "Program", decoded["node"])
	assert.Len(t, decoded["statements"], 1)
}

func TestParse_FormatFromConfig(t *testing.T) {
	path := writeFile(t, "snowflake.toml", "[output]\nformat = \"yaml\"\n")
	stdout, _, err := run(t, "f => 1", "--config", path, "parse")
	require.NoError(t, err)
	assert.Contains(t, stdout, "node: Program")
}

func TestParse_UnknownFormat(t *testing.T) {
	_, stderr, err := run(t, "f => 1", "parse", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, stderr, `unknown output format "xml"`)
}

func TestParse_ReportsDiagnostic(t *testing.T) {
	path := writeFile(t, "bad.sf", "main => 1 +")
	_, stderr, err := run(t, "", "parse", path)
	require.Error(t, err)

	var reported *reportedError
	assert.True(t, errors.As(err, &reported))
	assert.Equal(t, 1, sferror.GetCode(err).ExitCode())
	assert.Contains(t, stderr, path+":1:12: error: unexpected end of input, expected expression")
	assert.Contains(t, stderr, " 1 | main => 1 +")
}

func TestCheck(t *testing.T) {
	good := writeFile(t, "fib.sf", fibProgram)
	stdout, _, err := run(t, "", "check", good)
	require.NoError(t, err)
	assert.Equal(t, good+" ok\n", stdout)

	stdout, _, err = run(t, "", "check", "-q", good)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	bad := writeFile(t, "bad.sf", "main =>\n    a\n  b")
	_, stderr, err := run(t, "", "check", bad)
	require.Error(t, err)
	assert.Contains(t, stderr, "inconsistent indentation")
}

func TestCheck_MissingFile(t *testing.T) {
	_, stderr, err := run(t, "", "check", "does-not-exist.sf")
	require.Error(t, err)
	assert.Contains(t, stderr, "error:")
	assert.Contains(t, stderr, "does-not-exist.sf")
	assert.Equal(t, sferror.CodeIOError, sferror.GetCode(err))
	assert.Equal(t, 3, sferror.GetCode(err).ExitCode())
}

func TestTokens(t *testing.T) {
	stdout, _, err := run(t, "f =>\n  x", "tokens")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Indentation(1)")
	assert.NotContains(t, stdout, "Indent\n")

	stdout, _, err = run(t, "f =>\n  x", "tokens", "--normalized")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Indent\n")
	assert.Contains(t, stdout, "Dedent\n")
	assert.Contains(t, stdout, "   1:1   Identifier(f)\n")
}

func TestTokens_LexError(t *testing.T) {
	stdout, stderr, err := run(t, `main => "open`, "tokens")
	require.Error(t, err)
	assert.Contains(t, stdout, "Identifier(main)")
	assert.Contains(t, stderr, "<stdin>:1:9: error: lexical error: unterminated string literal")
}

func TestConfig(t *testing.T) {
	path := writeFile(t, "snowflake.toml", "[parser]\nmax_input_length = 3\n")
	stdout, _, err := run(t, "", "--config", path, "config")
	require.NoError(t, err)
	assert.Contains(t, stdout, "# "+path)
	assert.Contains(t, stdout, "max_input_length = 3")

	_, stderr, err := run(t, "main => 1", "--config", path, "check")
	require.Error(t, err)
	assert.Contains(t, stderr, "input exceeds maximum length")
}

func TestConfig_Invalid(t *testing.T) {
	path := writeFile(t, "snowflake.toml", "[log]\nlevel = \"loud\"\n")
	_, stderr, err := run(t, "", "--config", path, "version")
	require.Error(t, err)
	assert.Contains(t, stderr, "invalid configuration")
	assert.Equal(t, 2, sferror.GetCode(err).ExitCode())
}

func TestRenderDiagnostic(t *testing.T) {
	_, err := sfparser.Parse("f => 1 +")
	require.Error(t, err)

	expected := "1:9: error: unexpected end of input, expected expression\n" +
		" 1 | f => 1 +\n" +
		"   |         ^\n"
	assert.Equal(t, expected, renderDiagnostic(err, "f => 1 +", false))
}

func TestRenderDiagnostic_Tabs(t *testing.T) {
	err := &sfparser.LexError{Pos: sfparser.Position{Line: 2, Column: 3, Offset: 4}, Reason: "bad", Source: "t.sf"}
	out := renderDiagnostic(err, "a\n\tb$", false)
	assert.Contains(t, out, "t.sf:2:3: error: lexical error: bad\n")
	assert.Contains(t, out, " 2 | \tb$\n")
	assert.Contains(t, out, "   | \t ^\n")
}

func TestRenderDiagnostic_Unpositioned(t *testing.T) {
	assert.Equal(t, "error: boom\n", renderDiagnostic(errors.New("boom"), "", false))
}
