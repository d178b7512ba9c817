// Package output writes the launcher's own diagnostics. Everything goes
// to the error stream; stdout belongs to the delegated child.
package output

import (
	"fmt"
	"io"

	"github.com/jwalton/go-supportscolor"
)

var (
	red   = "\033[31m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stderr().SupportsColor {
		red, reset = "", ""
	}
}

// Fatal writes a fatal diagnostic: the headline in red when the error
// stream supports color, followed by the advice lines verbatim.
func Fatal(w io.Writer, headline string, advice ...string) {
	fmt.Fprintf(w, "%s%s%s\n", red, headline, reset)
	for _, line := range advice {
		fmt.Fprintln(w, line)
	}
}
