package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsBroadcastTiming(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, 2*time.Minute, cfg.Broadcast.PrepWindow)
	assert.Equal(t, 60*time.Second, cfg.Broadcast.SchedulerInterval)
	assert.Equal(t, 15*time.Minute, cfg.Broadcast.MaxDuration)
	assert.Equal(t, 5*time.Minute, cfg.Broadcast.SweepInterval)
	assert.Equal(t, "livekit", cfg.Broadcast.StreamProvider)
	assert.Equal(t, "queue", cfg.PubSub.Provider)
	assert.Equal(t, "100KB", cfg.HTTP.MaxRequestBodySize)
}

func TestApplyDefaults_RelayAndHLS(t *testing.T) {
	cfg := &Config{Relay: &RelayConfig{OutputDir: "/var/hls"}}
	applyDefaults(cfg)

	assert.False(t, cfg.Relay.Enabled)
	assert.Equal(t, 64, cfg.Relay.BitrateKbps)
	assert.Equal(t, "native", cfg.Relay.ExecMode)
	assert.Equal(t, "file:///var/hls?create_dir=true", cfg.HLS.BucketURL)
	assert.Equal(t, time.Hour, cfg.HLS.URLTTL)
	assert.Equal(t, 50, cfg.Notifier.Burst)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Broadcast: &BroadcastConfig{MaxDuration: 30 * time.Minute, PrepWindow: 5 * time.Minute},
		Notifier:  &NotifierConfig{RatePerSecond: 10, Burst: 3},
	}
	applyDefaults(cfg)

	assert.Equal(t, 30*time.Minute, cfg.Broadcast.MaxDuration)
	assert.Equal(t, 5*time.Minute, cfg.Broadcast.PrepWindow)
	assert.Equal(t, 10, cfg.Notifier.RatePerSecond)
	assert.Equal(t, 3, cfg.Notifier.Burst)
}

func TestLoadWithEnv_OverridesDurationsFromEnv(t *testing.T) {
	dir := t.TempDir()
	content := []byte("broadcast:\n  maxDuration: 15m\n  prepWindow: 2m\nrelay:\n  execMode: native\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), content, 0o600))

	t.Setenv("BROADCAST_MAXDURATION", "20m")
	t.Setenv("RELAY_EXECMODE", "container")

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	cfg, err := LoadWithEnv[Config]("test", rel)
	require.NoError(t, err)

	assert.Equal(t, 20*time.Minute, cfg.Broadcast.MaxDuration)
	assert.Equal(t, 2*time.Minute, cfg.Broadcast.PrepWindow)
	assert.Equal(t, "container", cfg.Relay.ExecMode)
}
