// Package config resolves runtime settings from an optional YAML file plus
// environment overrides. Env wins; every field has a workable default so the
// demo runs with no configuration at all.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port        string `yaml:"port"`
	AddressFile string `yaml:"address_file"`

	UPIPayee     string `yaml:"upi_payee"`
	MerchantName string `yaml:"merchant_name"`

	// Simulator timings as Go duration strings ("30s", "1500ms").
	ConfirmAfterRaw  string `yaml:"confirm_after"`
	DisplayWindowRaw string `yaml:"display_window"`

	AdminSecret string `yaml:"admin_secret"`

	ConfirmAfter  time.Duration `yaml:"-"`
	DisplayWindow time.Duration `yaml:"-"`
}

// Load reads CONFIG_FILE when set (or the given fallback path when present),
// then applies env overrides and defaults.
func Load(fallbackPath string) (*Config, error) {
	cfg := &Config{}

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = fallbackPath
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	overrideString(&cfg.Port, "PORT", "8080")
	overrideString(&cfg.AddressFile, "ADDRESS_FILE", "data/saved_address.json")
	overrideString(&cfg.UPIPayee, "UPI_PAYEE", "audiomart@upi")
	overrideString(&cfg.MerchantName, "MERCHANT_NAME", "AudioMart")
	overrideString(&cfg.ConfirmAfterRaw, "CONFIRM_AFTER", "30s")
	overrideString(&cfg.DisplayWindowRaw, "DISPLAY_WINDOW", "120s")
	overrideString(&cfg.AdminSecret, "ADMIN_SECRET", "")

	var err error
	if cfg.ConfirmAfter, err = time.ParseDuration(cfg.ConfirmAfterRaw); err != nil {
		return nil, fmt.Errorf("confirm_after: %w", err)
	}
	if cfg.DisplayWindow, err = time.ParseDuration(cfg.DisplayWindowRaw); err != nil {
		return nil, fmt.Errorf("display_window: %w", err)
	}

	return cfg, nil
}

func overrideString(dst *string, env, def string) {
	if v := os.Getenv(env); v != "" {
		*dst = v
		return
	}
	if *dst == "" {
		*dst = def
	}
}
