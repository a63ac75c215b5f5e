// Package config loads the optional sheetsmith.toml configuration file and
// supplies platform-appropriate defaults for everything it omits.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"

	"github.com/fennwick/sheetsmith/pkg/errors"
)

// DefaultFilename is the config file looked up in the working directory.
const DefaultFilename = "sheetsmith.toml"

// Duration wraps time.Duration so TOML can carry values like "24h".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Cache configures the build cache backend.
type Cache struct {
	// Backend is "file", "redis", or "none".
	Backend string `toml:"backend"`
	// Dir is the file backend directory.
	Dir string `toml:"dir"`
	// RedisAddr is the redis backend address (host:port).
	RedisAddr string `toml:"redis_addr"`
	// TTL bounds the lifetime of cached artifacts. Zero means no expiry.
	TTL Duration `toml:"ttl"`
}

// PDF configures the optional PDF conversion step.
type PDF struct {
	// ChromePath overrides headless Chrome binary discovery.
	ChromePath string `toml:"chrome_path"`
}

// Config is the full application configuration.
type Config struct {
	// DocumentsDir holds the JSON documents.
	DocumentsDir string `toml:"documents_dir"`
	// StylesDir optionally overrides the embedded stylesheets.
	StylesDir string `toml:"styles_dir"`
	// OutputDir receives generated files.
	OutputDir string `toml:"output_dir"`

	Cache Cache `toml:"cache"`
	PDF   PDF   `toml:"pdf"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		DocumentsDir: "documents",
		OutputDir:    "output",
		Cache: Cache{
			Backend: "file",
			Dir:     filepath.Join(xdg.CacheHome, "sheetsmith"),
			TTL:     Duration{7 * 24 * time.Hour},
		},
	}
}

// Load reads a config file, layering it over the defaults. An empty path
// looks for DefaultFilename in the working directory; a missing file there
// is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFilename
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to parse %s", path)
	}
	return cfg, nil
}
