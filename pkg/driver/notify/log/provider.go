package log

import (
	"context"
	"log/slog"

	"arduinoenv/pkg/driver"
	notifydriver "arduinoenv/pkg/driver/notify"
)

type Provider struct{}

func (p *Provider) ID() string {
	return "notify_log"
}

func (p *Provider) Name() string {
	return "Log Notifications"
}

func (p *Provider) DefaultWeight() int {
	// Lowest-ranked fallback when no richer channel is reachable.
	return 10
}

func (p *Provider) CheckCompatibility(ctx context.Context) error {
	// Always compatible
	return nil
}

func (p *Provider) New(ctx context.Context) (notifydriver.Driver, error) {
	return &Driver{}, nil
}

type Driver struct{}

func (d *Driver) Send(ctx context.Context, n notifydriver.Notification) error {
	level := slog.LevelInfo
	switch n.Level {
	case notifydriver.LevelWarning:
		level = slog.LevelWarn
	case notifydriver.LevelError:
		level = slog.LevelError
	}
	slog.Log(ctx, level, n.Title, "detail", n.Body)
	return nil
}

func init() {
	driver.Register[notifydriver.Driver](&Provider{})
}
