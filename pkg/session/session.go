package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"arduinoenv/pkg/config"
	"arduinoenv/pkg/db"
	"arduinoenv/pkg/driver/notify"
	"arduinoenv/pkg/install"
	"arduinoenv/pkg/settings"
)

// Open builds the settings facade from the loaded config, resolves the
// installation, and records the outcome in the history database.
//
// Resolution failures are notified and recorded here but not returned;
// callers that need the outcome call Initialize on the result, which
// replays the memoized error. That keeps commands that work without an
// installed IDE (preferences, package tools) usable after a failure.
func Open(ctx context.Context) (*settings.ArduinoSettings, error) {
	cfg := config.Get()

	s, err := settings.New(
		settings.WithOverride(cfg.ArduinoPath()),
		settings.WithNotifier(driverNotifier{}),
	)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resErr := s.Initialize(ctx)
	record(ctx, cfg, s, resErr, time.Since(start))

	return s, nil
}

// driverNotifier forwards resolution failures to the notification
// driver chain.
type driverNotifier struct{}

func (driverNotifier) ResolutionFailed(ctx context.Context, f settings.Failure) {
	n := notify.Notification{
		Level: notify.LevelError,
		Title: "Arduino installation not found",
		Body:  "No Arduino IDE at the configured or conventional locations. Set arduino.path in the config.",
	}
	if errors.Is(f.Err, install.ErrInvalidPath) {
		n.Title = "Arduino installation is not usable"
		n.Body = fmt.Sprintf("%s does not contain the Arduino IDE executable. Fix arduino.path in the config.", f.Path)
	}
	notify.Send(ctx, n)
}

func record(ctx context.Context, cfg *config.Config, s *settings.ArduinoSettings, resErr error, took time.Duration) {
	if cfg.History.Disabled {
		return
	}

	database, err := db.Open(cfg.History.Path)
	if err != nil {
		slog.Debug("history database unavailable", "error", err)
		return
	}
	defer database.Close()

	r := db.Resolution{
		Timestamp: time.Now().Unix(),
		OS:        string(s.OS()),
		Source:    string(s.Source()),
		Path:      s.ArduinoPath(),
		Valid:     resErr == nil,
		ToolCount: s.ToolRegistry().Len(),
		Duration:  took.Milliseconds(),
	}
	if resErr != nil {
		r.Error = resErr.Error()
	}

	if err := database.RecordResolution(ctx, r); err != nil {
		slog.Debug("failed to record resolution", "error", err)
	}
}
