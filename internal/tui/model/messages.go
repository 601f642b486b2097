package model

import (
	"tokentrack/pkg/logging"
)

// InitResultMsg carries the outcome of one Loading attempt back to the
// Update loop.
type InitResultMsg struct {
	Attempt  uint64
	Snapshot Snapshot
	Err      error
}

// RefreshTickMsg fires when the configured refresh interval elapses. Ticks
// from an older Generation are ignored.
type RefreshTickMsg struct {
	Generation uint64
}

// ConfigChangedMsg reports that the configuration file changed on disk.
type ConfigChangedMsg struct{}

// ReloadRequestMsg asks the controller to read the configuration again.
type ReloadRequestMsg struct{}

// NewLogEntryMsg forwards a log record to the activity log.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// ClearStatusBarMsg clears a transient status bar message.
type ClearStatusBarMsg struct{}
