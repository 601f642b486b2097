package model

import (
	"tokentrack/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// ListenForLogs waits for the next record on ch. The controller re-issues it
// after each NewLogEntryMsg. A nil or closed channel ends the loop.
func ListenForLogs(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}

// WaitForConfigChange waits for the next notification on ch.
func WaitForConfigChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return ConfigChangedMsg{}
	}
}
