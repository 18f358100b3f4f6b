package ipc

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"arduinoenv/pkg/driver"
	notifydriver "arduinoenv/pkg/driver/notify"

	"github.com/gorilla/websocket"
)

type Provider struct{}

func (p *Provider) ID() string {
	return "notify_ipc"
}

func (p *Provider) Name() string {
	return "IPC Notifications"
}

func (p *Provider) DefaultWeight() int {
	// When an IDE companion socket exists it should win over the
	// desktop channel.
	return 70
}

func socketPath() string {
	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	if runtimeDir == "" {
		runtimeDir = fmt.Sprintf("/run/user/%d", os.Getuid())
	}
	return filepath.Join(runtimeDir, "arduinoenv.sock")
}

func (p *Provider) CheckCompatibility(ctx context.Context) error {
	if _, err := os.Stat(socketPath()); err != nil {
		return fmt.Errorf("%w: no companion socket: %v", driver.ErrIncompatible, err)
	}
	return nil
}

func (p *Provider) New(ctx context.Context) (notifydriver.Driver, error) {
	return &Driver{socketPath: socketPath()}, nil
}

type Driver struct {
	socketPath string
}

// packet mirrors the stream framing the companion daemon speaks.
type packet struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func (d *Driver) Send(ctx context.Context, n notifydriver.Notification) error {
	dialer := websocket.Dialer{
		NetDial: func(network, addr string) (net.Conn, error) {
			return net.DialTimeout("unix", d.socketPath, 200*time.Millisecond)
		},
	}

	conn, _, err := dialer.Dial("ws://localhost/ws", nil)
	if err != nil {
		return fmt.Errorf("failed to reach companion socket: %w", err)
	}
	defer func() { _ = conn.Close() }()

	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}
	if err := conn.WriteJSON(packet{Type: "notification", Payload: payload}); err != nil {
		return fmt.Errorf("failed to send notification packet: %w", err)
	}
	return nil
}

func init() {
	driver.Register[notifydriver.Driver](&Provider{})
}
