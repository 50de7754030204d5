package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	appName            = "wavesq"
	defaultEventBuffer = 16
	maxEventBuffer     = 256
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Loop           bool     `koanf:"loop"`            // wrap around at either end of the queue
	LibrarySources []string `koanf:"library_sources"` // directories searched for queued names
	Database       string   `koanf:"database"`        // library index path (default: XDG data dir)
	EventBuffer    int      `koanf:"event_buffer"`    // per-channel subscription buffer (1-256)
	Extensions     []string `koanf:"extensions"`      // file extensions indexed by scan
	Icons          string   `koanf:"icons"`           // "nerd", "unicode", or "none"
	MPRIS          bool     `koanf:"mpris"`           // expose media controls over D-Bus
	Notifications  bool     `koanf:"notifications"`   // desktop notification on track change
}

// Load reads the config files in priority order (last wins). A non-empty
// explicit path is loaded last and must exist.
func Load(explicit string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}
	if explicit != "" {
		if err := k.Load(file.Provider(explicit), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", explicit, err)
		}
	}

	cfg := &Config{
		EventBuffer: defaultEventBuffer,
		Extensions:  []string{".mp3", ".flac", ".wav"},
		MPRIS:       true,
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	for i, src := range cfg.LibrarySources {
		cfg.LibrarySources[i] = expandPath(src)
	}
	cfg.Database = expandPath(cfg.Database)
	for i, ext := range cfg.Extensions {
		cfg.Extensions[i] = strings.ToLower(ext)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/wavesq/config.toml
	if xdg.ConfigHome != "" {
		paths = append(paths, filepath.Join(xdg.ConfigHome, appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Validate reports the first invalid value.
func (c *Config) Validate() error {
	if c.EventBuffer < 1 || c.EventBuffer > maxEventBuffer {
		return fmt.Errorf("%w: event_buffer must be between 1 and %d, got %d",
			ErrInvalidConfig, maxEventBuffer, c.EventBuffer)
	}
	for _, ext := range c.Extensions {
		if len(ext) < 2 || ext[0] != '.' {
			return fmt.Errorf("%w: extension %q must start with a dot", ErrInvalidConfig, ext)
		}
	}
	switch c.Icons {
	case "", "nerd", "unicode", "none":
	default:
		return fmt.Errorf("%w: unknown icon style %q", ErrInvalidConfig, c.Icons)
	}
	for _, src := range c.LibrarySources {
		if src == "" {
			return fmt.Errorf("%w: empty library source", ErrInvalidConfig)
		}
	}
	return nil
}

// HasLibrary returns true if at least one library source is configured.
func (c *Config) HasLibrary() bool {
	return len(c.LibrarySources) > 0
}

// MatchExtension reports whether path has one of the configured extensions.
func (c *Config) MatchExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range c.Extensions {
		if e == ext {
			return true
		}
	}
	return false
}
