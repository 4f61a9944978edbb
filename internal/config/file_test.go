package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "uniseparate.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
SERVER_PORT: 9000
CONVERT_MAX_CONCURRENT: 8
CONVERT_MAX_WAIT_TIME: 2s
RATE_LIMIT_ENABLED: false
trusted_proxies: [10.0.0.0/8, 192.168.0.0/16]
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Convert.MaxConcurrent != 8 {
		t.Errorf("MaxConcurrent = %d, want 8", cfg.Convert.MaxConcurrent)
	}
	if cfg.Convert.MaxWaitTime != 2*time.Second {
		t.Errorf("MaxWaitTime = %v, want 2s", cfg.Convert.MaxWaitTime)
	}
	if cfg.Rate.Enabled {
		t.Error("Rate.Enabled = true, want false")
	}
	if len(cfg.Security.TrustedProxies) != 2 {
		t.Errorf("TrustedProxies = %v, want 2 entries", cfg.Security.TrustedProxies)
	}
}

func TestLoadFile_EnvironmentWins(t *testing.T) {
	path := writeConfig(t, "SERVER_PORT: 9000\n")
	t.Setenv("SERVER_PORT", "9100")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("Port = %d, want 9100", cfg.Server.Port)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := LoadFile(writeConfig(t, "SERVER_PORT: [unclosed\n")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
