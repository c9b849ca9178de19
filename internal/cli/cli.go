// Package cli implements the phipebble command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/phipebble/pkg/buildinfo"
	"github.com/matzehuels/phipebble/pkg/cache"
	"github.com/matzehuels/phipebble/pkg/errors"
	"github.com/matzehuels/phipebble/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "phipebble"

	// Cache backends selectable with --cache or PHIPEBBLE_CACHE.
	backendFile  = "file"
	backendNone  = "none"
	backendRedis = "redis"
	backendMongo = "mongo"
)

// Environment variables read as flag defaults.
const (
	envCache      = "PHIPEBBLE_CACHE"
	envCacheScope = "PHIPEBBLE_CACHE_SCOPE"
	envRedisAddr  = "PHIPEBBLE_REDIS_ADDR"
	envMongoURI   = "PHIPEBBLE_MONGO_URI"
)

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

	cache cacheConfig
}

// cacheConfig selects and configures the cache backend.
type cacheConfig struct {
	backend   string
	scope     string
	redisAddr string
	mongoURI  string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "phipebble checks phi-pebbling sufficiency on small graphs",
		Long: `phipebble decides whether a number of pebbles suffices to reach every vertex
of a graph under phi-pebbling rules: one free phi-step in which every pebble may
stay or move to a neighbor, followed by standard pebbling moves.

The check is a bounded heuristic: phi-step outcomes are subsampled beyond a
fixed cap and each reachability search stops after a fixed number of states.
Verdicts that may be affected by these bounds are flagged.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.cache.backend, "cache", envOr(envCache, backendFile), "cache backend: file, none, redis, mongo")
	flags.StringVar(&c.cache.scope, "cache-scope", os.Getenv(envCacheScope), "prefix for cache keys on a shared backend")
	flags.StringVar(&c.cache.redisAddr, "redis-addr", envOr(envRedisAddr, "localhost:6379"), "redis address for --cache redis")
	flags.StringVar(&c.cache.mongoURI, "mongo-uri", envOr(envMongoURI, "mongodb://localhost:27017"), "mongodb URI for --cache mongo")

	// Register all subcommands
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.sweepCommand())
	root.AddCommand(c.diameterCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.graphsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cfg := c.cache
	if noCache {
		cfg.backend = backendNone
	}
	store, err := newCache(ctx, cfg, c.Logger)
	if err != nil {
		return nil, err
	}

	var keyer cache.Keyer
	if cfg.scope != "" {
		keyer = cache.NewScopedKeyer(nil, cfg.scope+":")
	}
	return pipeline.NewRunner(store, keyer, c.Logger), nil
}

// newCache opens the configured backend. A file cache that cannot be created
// degrades to no caching; network backends that cannot be reached are errors.
func newCache(ctx context.Context, cfg cacheConfig, logger *log.Logger) (cache.Cache, error) {
	switch strings.ToLower(cfg.backend) {
	case backendNone:
		return cache.NewNullCache(), nil
	case backendFile, "":
		dir, err := cacheDir()
		if err != nil {
			logger.Warn("caching disabled", "reason", err)
			return cache.NewNullCache(), nil
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			logger.Warn("caching disabled", "dir", dir, "reason", err)
			return cache.NewNullCache(), nil
		}
		return fc, nil
	case backendRedis:
		logger.Debug("connecting to redis", "addr", cfg.redisAddr)
		rc, err := cache.NewRedisCache(ctx, cfg.redisAddr)
		if err != nil {
			return nil, err
		}
		return rc, nil
	case backendMongo:
		logger.Debug("connecting to mongodb")
		mc, err := cache.NewMongoCache(ctx, cfg.mongoURI, "", "")
		if err != nil {
			return nil, err
		}
		return mc, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"unknown cache backend %q (must be one of: file, none, redis, mongo)", cfg.backend)
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/phipebble/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// graphOpts fills the graph selection of opts from the positional argument
// and --named flag.
func graphOpts(opts *pipeline.Options, args []string, named string) {
	if len(args) > 0 {
		opts.GraphPath = args[0]
	}
	opts.Named = named
}

// envOr returns the value of the environment variable key, or def when unset.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// writeOutput writes data to path, or to w when path is empty or "-".
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	printFile(path)
	return nil
}
