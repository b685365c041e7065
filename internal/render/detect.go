package render

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether output should be styled for a human.
//
// Returns false if:
//   - NO_COLOR is set (accessibility/automation indicator)
//   - CI is set (common CI/CD convention)
//   - stdout is not a terminal (piped output)
func IsInteractive() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("CI") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
