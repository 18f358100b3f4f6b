package desktop

import (
	"context"
	"fmt"

	"arduinoenv/pkg/driver"
	notifydriver "arduinoenv/pkg/driver/notify"

	"github.com/godbus/dbus/v5"
)

type Provider struct{}

func (p *Provider) ID() string {
	return "notify_desktop"
}

func (p *Provider) Name() string {
	return "Desktop Notifications"
}

func (p *Provider) DefaultWeight() int {
	return driver.DefaultWeight
}

func (p *Provider) CheckCompatibility(ctx context.Context) error {
	if _, err := dbus.SessionBus(); err != nil {
		return fmt.Errorf("%w: no session bus: %v", driver.ErrIncompatible, err)
	}
	return nil
}

func (p *Provider) New(ctx context.Context) (notifydriver.Driver, error) {
	// SessionBus caches the shared connection, so this reuses the one
	// opened by CheckCompatibility.
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %w", err)
	}
	return &Driver{conn: conn}, nil
}

type Driver struct {
	conn *dbus.Conn
}

func (d *Driver) Send(ctx context.Context, n notifydriver.Notification) error {
	urgency := byte(1)
	if n.Level == notifydriver.LevelError {
		urgency = 2
	}

	obj := d.conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.CallWithContext(ctx, "org.freedesktop.Notifications.Notify", 0,
		"arduinoenv", // app_name
		uint32(0),    // replaces_id
		"",           // app_icon
		n.Title,      // summary
		n.Body,       // body
		[]string{},   // actions
		map[string]dbus.Variant{"urgency": dbus.MakeVariant(urgency)},
		int32(-1), // expire_timeout: let the server decide
	)
	if call.Err != nil {
		return fmt.Errorf("failed to send desktop notification: %w", call.Err)
	}
	return nil
}

func init() {
	driver.Register[notifydriver.Driver](&Provider{})
}
