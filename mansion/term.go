package mansion

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal returns true if stdin is interactive, ie. if prompting makes sense.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
