package cmd

import (
	"errors"
	"fmt"
	"strings"

	sfparser "github.com/msto63/snowflake/foundation/lang/parser"
)

// renderDiagnostic formats a front-end failure as
//
//	file:line:col: message
//	  3 | fib n => n +
//	    |             ^
//
// Errors without a position are printed on one line.
func renderDiagnostic(err error, src string, color bool) string {
	var positioned sfparser.Positioned
	if !errors.As(err, &positioned) {
		return fmt.Sprintf("%s %v\n", paint(errorLabelStyle, "error:", color), err)
	}

	message := positioned.Error()
	pos := positioned.Position()

	var b strings.Builder
	if location, rest, ok := splitLocation(message, pos); ok {
		b.WriteString(paint(locationStyle, location, color))
		b.WriteByte(' ')
		b.WriteString(paint(errorLabelStyle, "error:", color))
		b.WriteByte(' ')
		b.WriteString(rest)
	} else {
		b.WriteString(paint(errorLabelStyle, "error:", color))
		b.WriteByte(' ')
		b.WriteString(message)
	}
	b.WriteByte('\n')

	line, ok := sourceLine(src, pos.Line)
	if !pos.IsValid() || !ok {
		return b.String()
	}

	number := fmt.Sprintf("%d", pos.Line)
	blank := strings.Repeat(" ", len(number))
	fmt.Fprintf(&b, "%s %s\n", paint(gutterStyle, " "+number+" |", color), line)
	fmt.Fprintf(&b, "%s %s%s\n", paint(gutterStyle, " "+blank+" |", color), caretPadding(line, pos.Column), paint(caretStyle, "^", color))
	return b.String()
}

// splitLocation separates the "file:line:col:" prefix from the message
func splitLocation(message string, pos sfparser.Position) (string, string, bool) {
	if !pos.IsValid() {
		return "", "", false
	}
	marker := fmt.Sprintf("%d:%d: ", pos.Line, pos.Column)
	i := strings.Index(message, marker)
	if i < 0 {
		return "", "", false
	}
	end := i + len(marker)
	return message[:end-1], message[end:], true
}

// sourceLine returns the 1-based line of src without its line break
func sourceLine(src string, line int) (string, bool) {
	if line < 1 {
		return "", false
	}
	lines := strings.Split(src, "\n")
	if line > len(lines) {
		return "", false
	}
	return strings.TrimRight(lines[line-1], "\r"), true
}

// caretPadding returns the whitespace that places a caret under column col,
// keeping tabs so the caret lines up with the echoed line
func caretPadding(line string, col int) string {
	var b strings.Builder
	i := 1
	for _, r := range line {
		if i >= col {
			break
		}
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
		i++
	}
	for ; i < col; i++ {
		b.WriteByte(' ')
	}
	return b.String()
}
