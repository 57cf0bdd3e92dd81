package impl

import (
	"io"
	"log/slog"
	"time"

	"masjidcast/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Broadcast: &config.BroadcastConfig{
			PrepWindow:        2 * time.Minute,
			SchedulerInterval: time.Minute,
			MaxDuration:       15 * time.Minute,
			SweepInterval:     5 * time.Minute,
			StreamProvider:    "livekit",
		},
		Relay:    &config.RelayConfig{},
		HLS:      &config.HLSConfig{URLTTL: time.Hour},
		Notifier: &config.NotifierConfig{},
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
