// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"

	"github.com/playbymail/civil/cerrs"
)

// Config holds the per-installation settings.
type Config struct {
	Server Server_t `json:"Server"`
	Store  Store_t  `json:"Store"`
}

type Server_t struct {
	Host            string `json:"Host,omitempty"`
	Port            string `json:"Port,omitempty"`
	SessionTTLHours int    `json:"SessionTTLHours,omitempty"`
}

type Store_t struct {
	Path string `json:"Path,omitempty"`
}

// Default returns a configuration with default values for the
// application.
func Default() *Config {
	return &Config{
		Server: Server_t{
			Host:            "localhost",
			Port:            "3000",
			SessionTTLHours: 24 * 14,
		},
		Store: Store_t{
			Path: "civil.db",
		},
	}
}

// Load reads the configuration file, falling back to defaults when
// the file is missing or unreadable. A present but malformed file is
// ignored (and logged when debug is set).
func Load(name string, debug bool) (*Config, error) {
	if debug {
		log.Printf("[config] %q: loading configuration...\n", name)
	}
	cfg := Default()
	if sb, err := os.Stat(name); errors.Is(err, os.ErrNotExist) {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	} else if err != nil {
		return cfg, err
	} else if sb.Mode().IsDir() {
		return cfg, cerrs.ErrNotAFile
	} else if !sb.Mode().IsRegular() {
		return cfg, cerrs.ErrNotAFile
	}

	var tmp Config
	if data, err := os.ReadFile(name); err != nil {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	} else if err = json.Unmarshal(data, &tmp); err != nil {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	} else if debug {
		if nice, err := json.MarshalIndent(tmp, "", "  "); err == nil {
			log.Printf("[config] %s\n", nice)
		}
	}

	// copy over every value that isn't the zero value
	if tmp.Server.Host != "" {
		cfg.Server.Host = tmp.Server.Host
	}
	if tmp.Server.Port != "" {
		cfg.Server.Port = tmp.Server.Port
	}
	if tmp.Server.SessionTTLHours != 0 {
		cfg.Server.SessionTTLHours = tmp.Server.SessionTTLHours
	}
	if tmp.Store.Path != "" {
		cfg.Store.Path = tmp.Store.Path
	}

	return cfg, nil
}
