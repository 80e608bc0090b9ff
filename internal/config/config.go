// Package config loads the optional YAML config file. Values may reference
// environment variables as ${VAR:default}, and IBADAH_* variables override
// whatever the file says.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	uberconfig "go.uber.org/config"
	"gopkg.in/yaml.v3"

	"github.com/julianstephens/ibadah/internal/constants"
	"github.com/julianstephens/ibadah/internal/notifier"
	"github.com/julianstephens/ibadah/internal/utils"
)

// ErrExists is returned by WriteDefault when the file is already there.
var ErrExists = errors.New("config file already exists")

type Config struct {
	Storage  StorageConfig  `yaml:"storage"`
	Logging  LoggingConfig  `yaml:"logging"`
	Notify   NotifyConfig   `yaml:"notify"`
	Location LocationConfig `yaml:"location"`
}

type StorageConfig struct {
	// DSN is a sqlite path, postgres:// or redis:// URL, file:*.json or memory:
	DSN string `yaml:"dsn"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	Debug bool   `yaml:"debug"`
}

type NotifyConfig struct {
	Sender string              `yaml:"sender"` // tray, email or stdout
	SMTP   notifier.SMTPConfig `yaml:"smtp"`
}

// LocationConfig seeds the settings written by `ibadah init`.
type LocationConfig struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	Timezone  string  `yaml:"timezone"`
	Method    string  `yaml:"method"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Storage: StorageConfig{DSN: constants.DefaultDBPath},
		Logging: LoggingConfig{Level: "warn"},
		Notify: NotifyConfig{
			Sender: "tray",
			SMTP:   notifier.SMTPConfig{Port: 587, UseTLS: true},
		},
		Location: LocationConfig{
			Latitude:  constants.DefaultLatitude,
			Longitude: constants.DefaultLongitude,
			Timezone:  constants.DefaultTimezone,
			Method:    constants.DefaultCalculationMethod,
		},
	}
}

// DefaultPath is ~/.config/ibadah/config.yaml, expanded.
func DefaultPath() string {
	return filepath.Join(utils.ExpandPath(constants.DefaultConfigDir), constants.DefaultConfigFile)
}

// Load reads .env files from the working directory and the config
// directory, then the YAML file at path layered over Default. A missing file
// is not an error.
func Load(path string) (*Config, error) {
	path = utils.ExpandPath(path)
	loadDotEnv(".env", filepath.Join(filepath.Dir(path), ".env"))

	opts := []uberconfig.YAMLOption{
		uberconfig.Static(Default()),
		uberconfig.Expand(os.LookupEnv),
	}
	if _, err := os.Stat(path); err == nil {
		opts = append(opts, uberconfig.File(path))
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	provider, err := uberconfig.NewYAML(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create config provider: %w", err)
	}

	var cfg Config
	if err := provider.Get(uberconfig.Root).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("failed to populate config: %w", err)
	}
	cfg.overrideFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadDotEnv loads whichever files exist. Variables already set win.
func loadDotEnv(files ...string) {
	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) > 0 {
		_ = godotenv.Load(present...)
	}
}

// overrideFromEnv applies IBADAH_* variables.
func (c *Config) overrideFromEnv() {
	if v := os.Getenv("IBADAH_DB"); v != "" {
		c.Storage.DSN = v
	}
	if v := os.Getenv("IBADAH_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v, err := strconv.ParseBool(os.Getenv("IBADAH_DEBUG")); err == nil {
		c.Logging.Debug = v
	}
	if v := os.Getenv("IBADAH_NOTIFY_SENDER"); v != "" {
		c.Notify.Sender = v
	}
	if v := os.Getenv("IBADAH_SMTP_HOST"); v != "" {
		c.Notify.SMTP.Host = v
	}
	if v, err := strconv.Atoi(os.Getenv("IBADAH_SMTP_PORT")); err == nil {
		c.Notify.SMTP.Port = v
	}
	if v := os.Getenv("IBADAH_SMTP_USERNAME"); v != "" {
		c.Notify.SMTP.Username = v
	}
	if v := os.Getenv("IBADAH_SMTP_PASSWORD"); v != "" {
		c.Notify.SMTP.Password = v
	}
	if v := os.Getenv("IBADAH_SMTP_FROM"); v != "" {
		c.Notify.SMTP.From = v
	}
	if v := os.Getenv("IBADAH_SMTP_TO"); v != "" {
		c.Notify.SMTP.To = v
	}
	if v := os.Getenv("IBADAH_TIMEZONE"); v != "" {
		c.Location.Timezone = v
	}
}

// Validate checks the values that would otherwise fail much later.
func (c *Config) Validate() error {
	switch c.Notify.Sender {
	case "", "tray", "email", "stdout":
	default:
		return fmt.Errorf("notify.sender must be tray, email or stdout, got %q", c.Notify.Sender)
	}
	if c.Location.Latitude < -90 || c.Location.Latitude > 90 {
		return fmt.Errorf("location.latitude out of range: %v", c.Location.Latitude)
	}
	if c.Location.Longitude < -180 || c.Location.Longitude > 180 {
		return fmt.Errorf("location.longitude out of range: %v", c.Location.Longitude)
	}
	if c.Location.Timezone != "" && !utils.ValidateTimezone(c.Location.Timezone) {
		return fmt.Errorf("location.timezone %q is not a known zone", c.Location.Timezone)
	}
	return nil
}

// WriteDefault writes the default configuration to path. An existing file is
// only replaced when force is set.
func WriteDefault(path string, force bool) error {
	path = utils.ExpandPath(path)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%w: %s", ErrExists, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	header := []byte("# ibadah configuration. Values may reference environment variables.\n")
	return os.WriteFile(path, append(header, data...), 0o600)
}
