package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/brickstack/pkg/buildinfo"
	"github.com/matzehuels/brickstack/pkg/cache"
	"github.com/matzehuels/brickstack/pkg/config"
	"github.com/matzehuels/brickstack/pkg/observability"
	"github.com/matzehuels/brickstack/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "brickstack"

	// envConfig names a config file used when --config is not given.
	envConfig = "BRICKSTACK_CONFIG"
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

	configPath  string
	metricsFile string
	metrics     *observability.PrometheusHooks
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
		Short: "Brickstack generates 3D brick assembly puzzles",
		Long: `Brickstack builds a random structure of studded bricks, then prints the
pieces, a step-by-step assembly manual and the outline the finished build must
match. Solve it on paper or with real bricks and check your answer with
"brickstack verify".`,
		Version:            buildinfo.Version,
		SilenceUsage:       true,
		PersistentPreRunE:  c.startMetrics,
		PersistentPostRunE: c.flushMetrics,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "config file (.toml, .yaml); defaults to $"+envConfig)
	root.PersistentFlags().StringVar(&c.metricsFile, "metrics-file", "", "write Prometheus metrics to this file when the command finishes")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.verifyCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Metrics
// =============================================================================

func (c *CLI) startMetrics(cmd *cobra.Command, args []string) error {
	if c.metricsFile == "" {
		return nil
	}
	c.metrics = observability.NewPrometheusHooks()
	observability.SetPipelineHooks(c.metrics)
	observability.SetCacheHooks(c.metrics)
	return nil
}

func (c *CLI) flushMetrics(cmd *cobra.Command, args []string) error {
	if c.metrics == nil {
		return nil
	}
	defer observability.Reset()
	if err := c.metrics.WriteTextfile(c.metricsFile); err != nil {
		return err
	}
	c.Logger.Debug("wrote metrics", "path", c.metricsFile)
	return nil
}

// =============================================================================
// Config & Runner Factory
// =============================================================================

// loadConfig reads --config, then $BRICKSTACK_CONFIG, then the defaults.
func (c *CLI) loadConfig() (config.Config, error) {
	path := c.configPath
	if path == "" {
		path = os.Getenv(envConfig)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if path != "" {
		c.Logger.Debug("loaded config", "path", path)
	}
	return cfg, nil
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, cfg config.Config, noCache bool) (*pipeline.Runner, error) {
	ch, err := newCache(ctx, cfg, noCache)
	if err != nil {
		return nil, err
	}
	r := pipeline.NewRunner(ch, nil, c.Logger)
	r.PuzzleTTL = cfg.Cache.TTL
	return r, nil
}

func newCache(ctx context.Context, cfg config.Config, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	opts := cacheOptions(cfg)
	if opts.Backend == cache.BackendFile || opts.Backend == "" {
		if opts.Dir == "" {
			dir, err := cacheDir()
			if err != nil {
				return cache.NewNullCache(), nil
			}
			opts.Dir = dir
		}
	}
	return cache.New(ctx, opts)
}

func cacheOptions(cfg config.Config) cache.Options {
	cc := cfg.Cache
	return cache.Options{
		Backend:         cc.Backend,
		Dir:             cc.Dir,
		RedisAddr:       cc.RedisAddr,
		RedisPassword:   cc.RedisPassword,
		RedisDB:         cc.RedisDB,
		MongoURI:        cc.MongoURI,
		MongoDatabase:   cc.MongoDatabase,
		MongoCollection: cc.MongoCollection,
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/brickstack/).
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

// optionsFromConfig maps a config file onto pipeline options.
func optionsFromConfig(cfg config.Config) (pipeline.Options, error) {
	rots, err := cfg.PageRotations()
	if err != nil {
		return pipeline.Options{}, err
	}
	face, err := cfg.SolutionFace()
	if err != nil {
		return pipeline.Options{}, err
	}
	solRot, err := cfg.SolutionRotation()
	if err != nil {
		return pipeline.Options{}, err
	}

	p, r := cfg.Puzzle, cfg.Render
	return pipeline.Options{
		Seed:             p.Seed,
		Pieces:           p.Pieces,
		Width:            p.Width,
		Depth:            p.Depth,
		Height:           p.Height,
		Palette:          p.Palette,
		Catalog:          cfg.Catalog(),
		AllowPartial:     p.AllowPartial,
		FixedHeight:      p.FixedHeight,
		RandomRotations:  cfg.Pages.RandomRotations,
		PageRotations:    rots,
		Face:             face,
		SolutionRotation: solRot,
		Formats:          r.Formats,
		CellSize:         r.CellSize,
		Columns:          r.Columns,
		HideTop:          r.HideTop,
		Detailed:         r.Detailed,
	}, nil
}

// parseFormats parses a comma-separated format string into a slice.
// Empty input returns nil so the config or pipeline default applies.
func parseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
