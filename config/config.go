package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Config holds the paths and presentation settings for one run. Everything
// the checks observe is routed through here so nothing reads ambient global
// state directly.
type Config struct {
	FstabPath     string `json:"fstab_path"`
	CrypttabPath  string `json:"crypttab_path"`
	EspMount      string `json:"esp_mount"`
	RecoveryMount string `json:"recovery_mount"`
	Color         bool   `json:"color"`
}

// Default returns a config matching a stock Pop!_OS systemd-boot layout.
func Default() Config {
	return Config{
		FstabPath:     "/etc/fstab",
		CrypttabPath:  "/etc/crypttab",
		EspMount:      "/boot/efi",
		RecoveryMount: "/recovery",
		Color:         true,
	}
}

// Path returns ~/.config/boot-health/config.json (or XDG_CONFIG_HOME).
// Returns empty string if home directory cannot be determined.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "boot-health", "config.json")
}

// Load loads config from disk; returns defaults on error.
func Load() Config {
	cfg := Default()
	p := Path()
	if p == "" {
		return cfg
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("boot-health-check: warning: config parse error: %v", err)
	}
	return cfg
}

// Save writes the config to disk.
func Save(cfg Config) error {
	path := Path()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
