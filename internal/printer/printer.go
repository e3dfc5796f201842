// Package printer writes colored status lines for the command line tools.
package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
)

// Out and Err are where the printer writes; tests swap them.
var (
	Out io.Writer = os.Stdout
	Err io.Writer = os.Stderr
)

// Success prints a green line prefixed with a checkmark.
func Success(format string, a ...any) {
	green.Fprintf(Out, "✓ %s\n", strings.TrimPrefix(fmt.Sprintf(format, a...), "✓ "))
}

// Info prints an uncolored line.
func Info(format string, a ...any) {
	fmt.Fprintf(Out, format+"\n", a...)
}

// Warning prints a yellow line.
func Warning(format string, a ...any) {
	yellow.Fprintf(Out, "! %s\n", fmt.Sprintf(format, a...))
}

// Error prints title and explanation to Err and returns an error carrying
// only the title, for a cobra command that silences its own error output.
func Error(title, explanation string) error {
	red.Fprintf(Err, "%s\n", title)
	if explanation != "" {
		fmt.Fprintf(Err, "%s\n", explanation)
	}
	return fmt.Errorf("%s", title)
}
