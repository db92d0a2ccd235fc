// Package notify is the user-facing message sink. Controllers push outcomes
// of mutations here; passive fetches never notify.
package notify

import (
	"sync"

	"go.uber.org/zap"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

type Notifier interface {
	Notify(message string, severity Severity)
}

// Zap routes notifications to a structured logger, the default sink for the
// headless client.
type Zap struct {
	logger *zap.Logger
}

func NewZap(logger *zap.Logger) *Zap {
	return &Zap{logger: logger}
}

func (z *Zap) Notify(message string, severity Severity) {
	if severity == SeverityError {
		z.logger.Warn(message, zap.String("severity", string(severity)))
		return
	}
	z.logger.Info(message, zap.String("severity", string(severity)))
}

// Recorder captures notifications for assertions in tests.
type Recorder struct {
	mu      sync.Mutex
	entries []RecordedNotification
}

type RecordedNotification struct {
	Message  string
	Severity Severity
}

func (r *Recorder) Notify(message string, severity Severity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, RecordedNotification{Message: message, Severity: severity})
}

func (r *Recorder) Entries() []RecordedNotification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RecordedNotification, len(r.entries))
	copy(out, r.entries)
	return out
}
