package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/julianstephens/ibadah/internal/constants"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Storage.DSN != constants.DefaultDBPath {
		t.Errorf("DSN = %q, want default", cfg.Storage.DSN)
	}
	if cfg.Notify.Sender != "tray" || cfg.Location.Method != constants.DefaultCalculationMethod {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFileAndExpansion(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("IBADAH_TEST_HOST", "mail.example.org")
	path := writeFile(t, dir, "config.yaml", `
storage:
  dsn: ${IBADAH_TEST_DSN:/tmp/custom.db}
notify:
  sender: email
  smtp:
    host: ${IBADAH_TEST_HOST}
    port: 2525
location:
  latitude: 21.4225
  longitude: 39.8262
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Storage.DSN != "/tmp/custom.db" {
		t.Errorf("DSN = %q, want the expansion default", cfg.Storage.DSN)
	}
	if cfg.Notify.SMTP.Host != "mail.example.org" || cfg.Notify.SMTP.Port != 2525 {
		t.Errorf("smtp = %+v", cfg.Notify.SMTP)
	}
	if cfg.Location.Latitude != 21.4225 {
		t.Errorf("latitude = %v", cfg.Location.Latitude)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("unset keys should keep defaults, level = %q", cfg.Logging.Level)
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", "storage:\n  dsn: /tmp/file.db\n")
	t.Setenv("IBADAH_DB", "redis://localhost:6379/0")
	t.Setenv("IBADAH_DEBUG", "true")
	t.Setenv("IBADAH_SMTP_PORT", "465")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Storage.DSN != "redis://localhost:6379/0" {
		t.Errorf("DSN = %q, want env override", cfg.Storage.DSN)
	}
	if !cfg.Logging.Debug || cfg.Notify.SMTP.Port != 465 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, dir, ".env", "IBADAH_NOTIFY_SENDER=stdout\n")
	t.Setenv("IBADAH_NOTIFY_SENDER", "")
	os.Unsetenv("IBADAH_NOTIFY_SENDER")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Notify.Sender != "stdout" {
		t.Errorf("sender = %q, want value from .env", cfg.Notify.Sender)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bad sender", func(c *Config) { c.Notify.Sender = "pigeon" }, true},
		{"bad latitude", func(c *Config) { c.Location.Latitude = 91 }, true},
		{"bad longitude", func(c *Config) { c.Location.Longitude = -181 }, true},
		{"bad timezone", func(c *Config) { c.Location.Timezone = "Nowhere/Land" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	if err := WriteDefault(path, false); err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}
	if err := WriteDefault(path, false); !errors.Is(err, ErrExists) {
		t.Errorf("second WriteDefault() error = %v, want ErrExists", err)
	}
	if err := WriteDefault(path, true); err != nil {
		t.Errorf("forced WriteDefault() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() of written default error = %v", err)
	}
	if *cfg != Default() {
		t.Errorf("written config = %+v, want %+v", *cfg, Default())
	}
}
