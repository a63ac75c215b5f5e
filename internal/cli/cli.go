// Package cli implements the sheetsmith command-line interface.
//
// The main commands are:
//   - build: Render one document to HTML (and optionally PDF)
//   - batch: Render every document in the documents directory
//   - serve: Preview documents in the browser
//   - cache: Manage the build cache
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/fennwick/sheetsmith/pkg/buildinfo"
	"github.com/fennwick/sheetsmith/pkg/cache"
	"github.com/fennwick/sheetsmith/pkg/config"
	"github.com/fennwick/sheetsmith/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "sheetsmith"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Sheetsmith renders tabletop documents as printable HTML",
		Long:         `Sheetsmith turns JSON descriptions of character sheets and item cards into paginated, print-ready HTML documents.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default sheetsmith.toml)")

	// Register all subcommands
	root.AddCommand(c.buildCommand())
	root.AddCommand(c.batchCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the configuration file selected via --config.
func (c *CLI) loadConfig() (config.Config, error) {
	return config.Load(c.configPath)
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, cfg config.Config, noCache bool) *pipeline.Runner {
	runner := pipeline.NewRunner(c.newCache(ctx, cfg, noCache), c.Logger)
	runner.TTL = cfg.Cache.TTL.Duration
	return runner
}

// newCache builds the cache backend selected by the configuration. Backend
// failures degrade to a NullCache rather than failing the build.
func (c *CLI) newCache(ctx context.Context, cfg config.Config, noCache bool) cache.Cache {
	if noCache || cfg.Cache.Backend == "none" {
		return cache.NewNullCache()
	}
	if cfg.Cache.Backend == "redis" {
		rc, err := cache.NewRedisCache(ctx, cfg.Cache.RedisAddr)
		if err != nil {
			c.Logger.Warn("redis cache unavailable, caching disabled", "addr", cfg.Cache.RedisAddr, "error", err)
			return cache.NewNullCache()
		}
		// Redis servers are often shared; scope our keys.
		return cache.NewScopedCache(rc, appName+":")
	}
	fc, err := cache.NewFileCache(cfg.Cache.Dir)
	if err != nil {
		c.Logger.Warn("file cache unavailable, caching disabled", "dir", cfg.Cache.Dir, "error", err)
		return cache.NewNullCache()
	}
	return fc
}
