package cli

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/anirvinkotaru/techassist/internal/adapters/driving/render"
)

// plainOutput disables markup rendering for assistant replies.
var plainOutput bool

// isTerminal reports whether w is an interactive terminal.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// formatReply renders assistant markup when writing to a terminal.
func formatReply(w io.Writer, text string) string {
	if plainOutput || !isTerminal(w) {
		return text
	}
	return render.TryFormat(text).Text
}

const timeLayout = "2006-01-02 15:04"
