package ui

import (
	"os"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

type (
	fileReadMsg    struct{ content []byte; path string }
	resetStatusMsg struct{}
	errMsg         struct{ err error }
)

func (e errMsg) Error() string { return e.err.Error() }

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

func readFileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		c, err := os.ReadFile(path)
		if err != nil {
			return errMsg{err}
		}
		return fileReadMsg{content: c, path: path}
	}
}

func resetStatusCmd() tea.Cmd {
	return tea.Tick(2*time.Second, func(t time.Time) tea.Msg {
		return resetStatusMsg{}
	})
}
