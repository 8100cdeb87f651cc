// Package output prints check result lines, colored when the terminal
// supports it.
package output

import (
	"fmt"
	"io"

	"github.com/jwalton/go-supportscolor"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		Disable()
	}
}

// Disable turns off colored output for the rest of the process.
func Disable() {
	green, red, reset = "", "", ""
}

// PrintOK writes a passed-check line.
func PrintOK(w io.Writer, name string) {
	fmt.Fprintf(w, "%s[OK]%s %s\n", green, reset, name)
}

// PrintFail writes a failed-check line.
func PrintFail(w io.Writer, name string) {
	fmt.Fprintf(w, "%s[FAIL]%s %s\n", red, reset, name)
}
