package client

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// formatter applies semantic coloring to CLI output.
type formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

func (f formatter) Sprint(a ...any) string {
	text := fmt.Sprint(a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

func (f formatter) Sprintf(format string, a ...any) string {
	return f.Sprint(fmt.Sprintf(format, a...))
}

// noColor honours NO_COLOR (https://no-color.org/) and fatih/color's own
// terminal detection.
func noColor() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

var (
	successText = formatter{color.New(color.FgGreen), "", ""}
	errorText   = formatter{color.New(color.FgRed), "", ""}
	warningText = formatter{color.New(color.FgYellow), "", ""}
	infoText    = formatter{color.New(color.FgCyan), "", ""}
	mutedText   = formatter{color.New(color.Faint), "", ""}
)

// ErrorLine renders err the way the CLI prints a failed command.
func ErrorLine(err error) string {
	return errorText.Sprint("✗ ") + err.Error()
}
