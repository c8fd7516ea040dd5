package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validConfig = `
app:
  name: qlick
  environment: development
  port: 8080
  timezone: Asia/Kolkata
database:
  driver: sqlite
  filename: build/db/qlick.db
features:
  enable_metrics: true
`

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(validConfig))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Themes.RefreshCron != DefaultRefreshCron {
		t.Fatalf("RefreshCron = %q, want %q", cfg.Themes.RefreshCron, DefaultRefreshCron)
	}
	if cfg.Location().String() != "Asia/Kolkata" {
		t.Fatalf("Location() = %s, want Asia/Kolkata", cfg.Location())
	}
	if !cfg.Features.EnableMetrics {
		t.Fatal("EnableMetrics = false, want true")
	}
	if !cfg.IsDevelopment() {
		t.Fatal("IsDevelopment() = false, want true")
	}
	if cfg.RateLimit.TrustProxy {
		t.Fatal("TrustProxy = true, want false by default")
	}
}

func TestParseRateLimit(t *testing.T) {
	data := validConfig + "rate_limit:\n  rps: 2\n  trust_proxy: true\n"
	cfg, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.RateLimit.RequestsPerSecond != 2 || cfg.RateLimit.Burst != 1 || !cfg.RateLimit.TrustProxy {
		t.Fatalf("RateLimit = %+v, want rps 2, burst 1, trust_proxy", cfg.RateLimit)
	}
}

func TestParseRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		replace [2]string
		wantErr string
	}{
		{name: "missing_name", replace: [2]string{"name: qlick", "name: \"\""}, wantErr: "app name is required"},
		{name: "missing_port", replace: [2]string{"port: 8080", "port: 0"}, wantErr: "app port is required"},
		{name: "unsupported_driver", replace: [2]string{"driver: sqlite", "driver: turso"}, wantErr: "unsupported database driver"},
		{name: "bad_timezone", replace: [2]string{"Asia/Kolkata", "Mars/Olympus"}, wantErr: "invalid app timezone"},
		{
			name:    "bad_cron",
			replace: [2]string{"features:", "themes:\n  refresh_cron: \"every midnight\"\nfeatures:"},
			wantErr: "invalid themes refresh_cron",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			data := strings.Replace(validConfig, test.replace[0], test.replace[1], 1)
			_, err := Parse([]byte(data))
			if err == nil {
				t.Fatalf("Parse() error = nil, want %q", test.wantErr)
			}
			if !strings.Contains(err.Error(), test.wantErr) {
				t.Fatalf("Parse() error = %v, want substring %q", err, test.wantErr)
			}
		})
	}
}

func TestLoadReadsEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(validConfig), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("QLICK_TIMEZONE", "UTC")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Location().String() != "UTC" {
		t.Fatalf("Location() = %s, want UTC from environment", cfg.Location())
	}
}
