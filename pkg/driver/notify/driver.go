package notify

import (
	"context"
	"log/slog"

	"arduinoenv/pkg/driver"
)

// Level indicates how severe a notification is.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is a user-facing message about the state of the
// Arduino environment, e.g. a failed installation lookup.
type Notification struct {
	Level Level
	Title string
	Body  string
}

// Driver delivers notifications to the user.
type Driver interface {
	// Send delivers one notification. Delivery is best effort and
	// implementations should return quickly.
	Send(ctx context.Context, n Notification) error
}

// Facade functions

// Send delivers a notification through the best available provider.
// Delivery problems are logged, never fatal: a notification must not
// take down the operation that triggered it.
func Send(ctx context.Context, n Notification) {
	d, err := driver.Get[Driver](ctx)
	if err != nil {
		slog.Warn("no notification provider available", "title", n.Title, "error", err)
		return
	}
	if err := d.Send(ctx, n); err != nil {
		slog.Warn("failed to deliver notification", "title", n.Title, "error", err)
	}
}
