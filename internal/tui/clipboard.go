package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"golang.design/x/clipboard"
)

// ClipboardCopyMsg reports the outcome of a copy
type ClipboardCopyMsg struct {
	Content string
	Success bool
	Error   string
}

// clipboardWriter is swapped out in tests, the system clipboard needs a
// display server.
var clipboardWriter = func(content string) error {
	if err := clipboard.Init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(content))
	return nil
}

// copyToClipboard copies content to the system clipboard
func copyToClipboard(content string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWriter(content); err != nil {
			return ClipboardCopyMsg{
				Success: false,
				Error:   fmt.Sprintf("Failed to initialize clipboard: %v", err),
			}
		}
		return ClipboardCopyMsg{Content: content, Success: true}
	}
}

// statusFor formats a copy outcome for a view's status line
func statusFor(msg ClipboardCopyMsg) (string, bool) {
	if !msg.Success {
		return msg.Error, true
	}
	return "Copied " + msg.Content, false
}
