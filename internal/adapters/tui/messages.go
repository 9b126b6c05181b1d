package tui

import (
	"time"

	"go.trai.ch/sharetree/internal/core/domain"
)

// MsgPass reports a finished optimization pass.
type MsgPass struct {
	Session  domain.SessionID
	Runtimes []string
	Reports  []domain.UsageReport
	Changed  []string
	Markers  []domain.FallbackMarkers
	At       time.Time
}

// MsgPassFailed reports a pass that could not complete.
type MsgPassFailed struct {
	Err error
}
