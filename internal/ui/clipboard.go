package ui

import (
	"errors"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

var errClipboardUnsupported = errors.New("no clipboard utility available")

// clipboardWriter is swapped in tests
var clipboardWriter = func(text string) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}

// copyToClipboard copies text to the system clipboard and reports the outcome
func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{content: text, err: clipboardWriter(text)}
	}
}
