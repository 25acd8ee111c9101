// Package config loads the tool's optional YAML configuration file and
// applies defaults so the rest of the program never sees a zero value.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultServerURL points at the Matter server add-on's default WebSocket
// endpoint. Used when neither the config file nor the command line names
// a server.
const DefaultServerURL = "ws://homeassistant.local:5580/ws"

// Verify modes for the post-write check.
const (
	VerifyWarn   = "warn"
	VerifyStrict = "strict"
)

// Defaults applied when the file leaves fields unset.
const (
	defaultConnectTimeout = "10s"
	defaultRequestTimeout = "15s"
	defaultSettleDelay    = "2s"
)

// Config is the file shape. Durations are YAML strings ("10s"); Load
// parses them into the duration fields.
type Config struct {
	ServerURL string `yaml:"server_url"`
	Timeouts  struct {
		Connect string `yaml:"connect"`
		Request string `yaml:"request"`
	} `yaml:"timeouts"`
	Settle string `yaml:"settle_delay"`
	Verify string `yaml:"verify"`
	Log    struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	NoColor bool `yaml:"no_color"`

	// Parsed from the duration strings above by Load.
	ConnectTimeout time.Duration `yaml:"-"`
	RequestTimeout time.Duration `yaml:"-"`
	SettleDelay    time.Duration `yaml:"-"`
}

// Load reads the config file at path. An empty path means no file:
// defaults only. A path that does not exist is an error; the caller asked
// for that file explicitly.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultServerURL
	}
	if cfg.Timeouts.Connect == "" {
		cfg.Timeouts.Connect = defaultConnectTimeout
	}
	if cfg.Timeouts.Request == "" {
		cfg.Timeouts.Request = defaultRequestTimeout
	}
	if cfg.Settle == "" {
		cfg.Settle = defaultSettleDelay
	}
	if cfg.Verify == "" {
		cfg.Verify = VerifyWarn
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate parses the duration strings and checks the remaining fields.
func (c *Config) validate() error {
	var err error
	if c.ConnectTimeout, err = time.ParseDuration(c.Timeouts.Connect); err != nil {
		return fmt.Errorf("timeouts.connect: %w", err)
	}
	if c.ConnectTimeout <= 0 {
		return fmt.Errorf("timeouts.connect must be positive, got %s", c.ConnectTimeout)
	}
	if c.RequestTimeout, err = time.ParseDuration(c.Timeouts.Request); err != nil {
		return fmt.Errorf("timeouts.request: %w", err)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("timeouts.request must be positive, got %s", c.RequestTimeout)
	}
	if c.SettleDelay, err = time.ParseDuration(c.Settle); err != nil {
		return fmt.Errorf("settle_delay: %w", err)
	}
	if c.SettleDelay < 0 {
		return fmt.Errorf("settle_delay must not be negative, got %s", c.SettleDelay)
	}
	if err := ValidateServerURL(c.ServerURL); err != nil {
		return err
	}
	switch c.Verify {
	case VerifyWarn, VerifyStrict:
	default:
		return fmt.Errorf("verify must be %q or %q, got %q", VerifyWarn, VerifyStrict, c.Verify)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// ValidateServerURL checks that raw is a usable server endpoint. Shared
// with the command line, which can override the configured URL.
func ValidateServerURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("server_url: %w", err)
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return fmt.Errorf("server_url must be a ws:// or wss:// URL, got %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("server_url has no host: %q", raw)
	}
	return nil
}

// StrictVerify returns true if a verification mismatch should be fatal.
func (c *Config) StrictVerify() bool {
	return c.Verify == VerifyStrict
}
