package beacon

import (
	"testing"
	"time"
)

func TestLoadConfig_YAML(t *testing.T) {
	cfg, err := LoadConfig([]byte("poll_interval: 5ms\nerror_history: 8\n"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.PollInterval != 5*time.Millisecond {
		t.Errorf("expected 5ms, got %v", cfg.PollInterval)
	}
	if cfg.ErrorHistory != 8 {
		t.Errorf("expected 8, got %d", cfg.ErrorHistory)
	}
	if cfg.SyncMode {
		t.Error("expected sync mode off")
	}
}

func TestLoadConfig_JSON(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{"poll_interval": "2ms", "sync_mode": true}`))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.PollInterval != 2*time.Millisecond {
		t.Errorf("expected 2ms, got %v", cfg.PollInterval)
	}
	if !cfg.SyncMode {
		t.Error("expected sync mode on")
	}
}

func TestLoadConfig_ValidationFails(t *testing.T) {
	if _, err := LoadConfig([]byte("error_history: -1")); err == nil {
		t.Error("expected validation error for negative history")
	}
	if _, err := LoadConfig([]byte("poll_interval: -5ms")); err == nil {
		t.Error("expected validation error for negative interval")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	if _, err := LoadConfig([]byte("not: valid: yaml: {{{}}")); err == nil {
		t.Error("expected unmarshal error")
	}
}

func TestConfig_Options(t *testing.T) {
	cfg := Config{PollInterval: 7 * time.Millisecond, ErrorHistory: 4, SyncMode: true}
	r := New(cfg.Options()...)

	if r.interval != 7*time.Millisecond {
		t.Errorf("expected 7ms interval, got %v", r.interval)
	}
	if !r.syncMode {
		t.Error("expected sync mode")
	}
	if r.errors == nil || len(r.errors.errors) != 4 {
		t.Error("expected error history of 4")
	}
}

func TestConfig_ZeroIntervalKeepsDefault(t *testing.T) {
	r := New(Config{}.Options()...)
	if r.interval != DefaultPollInterval {
		t.Errorf("expected default interval, got %v", r.interval)
	}
}
