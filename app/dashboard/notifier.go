package dashboard

import "github.com/shashiranjanraj/vinayak/pkg/logger"

// Notifier surfaces user-visible messages, the toast analogue of the
// owner dashboard. Tests substitute a recording implementation.
type Notifier interface {
	Notify(message string)
}

// LogNotifier writes notifications to the structured log. Used when no
// UI-facing notifier is wired in.
type LogNotifier struct{}

func (LogNotifier) Notify(message string) {
	logger.Warn("dashboard notification", "message", message)
}
