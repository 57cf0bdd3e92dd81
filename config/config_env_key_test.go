package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master":  map[string]any{"userName": "user"},
		},
		"broadcast": map[string]any{"maxDuration": "15m", "schedulerInterval": "60s"},
		"relay":     map[string]any{"publishUrlTemplate": "", "execMode": "native"},
		"audioRoom": map[string]any{"apiSecret": ""},
	}

	for envKey, want := range map[string]string{
		"POSTGRES_SSLMODE":            "postgres.sslMode",
		"POSTGRES_MASTER_USERNAME":    "postgres.master.userName",
		"BROADCAST_SCHEDULERINTERVAL": "broadcast.schedulerInterval",
		"RELAY_PUBLISHURLTEMPLATE":    "relay.publishUrlTemplate",
		"AUDIOROOM_APISECRET":         "audioRoom.apiSecret",
		// unknown keys fall back to lower-cased segments
		"NEW_FEATURE_FLAG": "new.feature.flag",
	} {
		if got := canonicalizeEnvKey(envKey, existing); got != want {
			t.Errorf("canonicalizeEnvKey(%q) = %q, want %q", envKey, got, want)
		}
	}
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "broadcast:\n  maxDuration: 15m\n  prepWindow: 2m\nrelay:\n  execMode: native\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	t.Setenv("BROADCAST_MAXDURATION", "20m")
	t.Setenv("RELAY_EXECMODE", "docker")

	cfg, err := LoadWithEnv[Config]("config", ".")
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}

	if cfg.Broadcast == nil {
		t.Fatal("broadcast section not loaded")
	}
	if cfg.Broadcast.MaxDuration != 20*time.Minute {
		t.Errorf("maxDuration = %s, want 20m from env", cfg.Broadcast.MaxDuration)
	}
	if cfg.Broadcast.PrepWindow != 2*time.Minute {
		t.Errorf("prepWindow = %s, want 2m from file", cfg.Broadcast.PrepWindow)
	}
	if cfg.Relay == nil || cfg.Relay.ExecMode != "docker" {
		t.Errorf("relay.execMode not overridden: %+v", cfg.Relay)
	}
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := LoadWithEnv[Config]("nope", "."); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
