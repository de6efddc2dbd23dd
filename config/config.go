package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/katalvlaran/dsviz/command"
	"github.com/katalvlaran/dsviz/viz"
)

// Sentinel validation errors.
var (
	ErrInvalidInterval = errors.New("config: intervals must be positive")
	ErrInvalidRate     = errors.New("config: animation rate must be positive")
	ErrInvalidCanvas   = errors.New("config: layout width and height must be positive")
	ErrInvalidRandom   = errors.New("config: random range is empty or count negative")
	ErrInvalidLogging  = errors.New("config: unknown logging level or format")
)

// EnvPrefix prefixes every environment override, e.g. DSVIZ_PLAYBACK_INSTANT.
const EnvPrefix = "DSVIZ"

// Config holds all configuration for dsviz.
type Config struct {
	Playback  PlaybackConfig  `mapstructure:"playback"`
	Graph     GraphConfig     `mapstructure:"graph"`
	Animation AnimationConfig `mapstructure:"animation"`
	Layout    LayoutConfig    `mapstructure:"layout"`
	Random    RandomConfig    `mapstructure:"random"`
	History   HistoryConfig   `mapstructure:"history"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// PlaybackConfig paces the reveal of visited nodes.
type PlaybackConfig struct {
	StepInterval time.Duration `mapstructure:"step_interval"`
	Instant      bool          `mapstructure:"instant"`
}

// GraphConfig holds graph-screen settings.
type GraphConfig struct {
	KruskalInterval time.Duration `mapstructure:"kruskal_interval"`
}

// AnimationConfig holds the interpolation rate.
type AnimationConfig struct {
	Rate float64 `mapstructure:"rate"`
}

// LayoutConfig holds canvas and tree layout geometry.
type LayoutConfig struct {
	Width        float64 `mapstructure:"width"`
	Height       float64 `mapstructure:"height"`
	OriginY      float64 `mapstructure:"origin_y"`
	XOffset      float64 `mapstructure:"x_offset"`
	MinSpacing   float64 `mapstructure:"min_spacing"`
	LevelSpacing float64 `mapstructure:"level_spacing"`
	ListStartX   float64 `mapstructure:"list_start_x"`
	ListSpacing  float64 `mapstructure:"list_spacing"`
}

// RandomConfig holds the bounds of the "Random" command.
type RandomConfig struct {
	Count int   `mapstructure:"count"`
	Min   int   `mapstructure:"min"`
	Max   int   `mapstructure:"max"`
	Seed  int64 `mapstructure:"seed"`
}

// HistoryConfig caps undo depth; 0 means unlimited.
type HistoryConfig struct {
	Limit int `mapstructure:"limit"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load loads configuration from file and environment variables. An empty
// path searches for dsviz.yaml in the working directory and $HOME/.config/dsviz;
// a missing file there is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, errors.Wrap(err, "config: stat")
		}
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("dsviz")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/dsviz")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "config: read")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration Load yields with no file and no environment.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(errors.Wrap(err, "config: defaults do not decode"))
	}
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("playback.step_interval", "500ms")
	v.SetDefault("playback.instant", false)

	v.SetDefault("graph.kruskal_interval", "1s")

	v.SetDefault("animation.rate", command.DefaultAnimationRate)

	v.SetDefault("layout.width", viz.DefaultWidth)
	v.SetDefault("layout.height", viz.DefaultHeight)
	v.SetDefault("layout.origin_y", viz.DefaultOriginY)
	v.SetDefault("layout.x_offset", viz.DefaultXOffset)
	v.SetDefault("layout.min_spacing", viz.DefaultMinSpacing)
	v.SetDefault("layout.level_spacing", viz.DefaultLevelSpacing)
	v.SetDefault("layout.list_start_x", viz.DefaultListStartX)
	v.SetDefault("layout.list_spacing", viz.DefaultListSpacing)

	v.SetDefault("random.count", command.DefaultRandomCount)
	v.SetDefault("random.min", command.DefaultRandomMin)
	v.SetDefault("random.max", command.DefaultRandomMax)
	v.SetDefault("random.seed", 0)

	v.SetDefault("history.limit", 0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

func validate(cfg *Config) error {
	if cfg.Playback.StepInterval <= 0 || cfg.Graph.KruskalInterval <= 0 {
		return errors.Wrapf(ErrInvalidInterval, "step=%s kruskal=%s", cfg.Playback.StepInterval, cfg.Graph.KruskalInterval)
	}
	if cfg.Animation.Rate <= 0 {
		return errors.Wrapf(ErrInvalidRate, "%g", cfg.Animation.Rate)
	}
	if cfg.Layout.Width <= 0 || cfg.Layout.Height <= 0 || cfg.Layout.ListSpacing <= 0 {
		return errors.Wrapf(ErrInvalidCanvas, "%gx%g list spacing %g", cfg.Layout.Width, cfg.Layout.Height, cfg.Layout.ListSpacing)
	}
	if cfg.Random.Count < 0 || cfg.Random.Min > cfg.Random.Max {
		return errors.Wrapf(ErrInvalidRandom, "count=%d range=[%d,%d]", cfg.Random.Count, cfg.Random.Min, cfg.Random.Max)
	}
	if _, err := parseLevel(cfg.Logging.Level); err != nil {
		return err
	}
	switch cfg.Logging.Format {
	case "text", "json":
	default:
		return errors.Wrapf(ErrInvalidLogging, "format %q", cfg.Logging.Format)
	}

	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, errors.Wrapf(ErrInvalidLogging, "level %q", s)
	}
	return l, nil
}

// TreeLayout builds the tree layout from the layout section.
func (c *Config) TreeLayout() viz.TreeLayout {
	return viz.TreeLayout{
		OriginX:      c.Layout.Width / 2,
		OriginY:      c.Layout.OriginY,
		XOffset:      c.Layout.XOffset,
		MinSpacing:   c.Layout.MinSpacing,
		LevelSpacing: c.Layout.LevelSpacing,
	}
}

// ListLayout builds the list row, centred vertically on the canvas.
func (c *Config) ListLayout() viz.ListLayout {
	return viz.ListLayout{
		StartX:  c.Layout.ListStartX,
		Y:       c.Layout.Height / 2,
		Spacing: c.Layout.ListSpacing,
	}
}

// NewLogger builds a slog logger writing to w in the configured format.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.Logging.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Logging.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// EngineOptions translates the configuration into engine options.
func (c *Config) EngineOptions() []command.Option {
	opts := []command.Option{
		command.WithInterval(c.Playback.StepInterval),
		command.WithKruskalInterval(c.Graph.KruskalInterval),
		command.WithInstant(c.Playback.Instant),
		command.WithAnimationRate(c.Animation.Rate),
		command.WithCanvas(c.Layout.Width, c.Layout.Height),
		command.WithTreeLayout(c.TreeLayout()),
		command.WithListLayout(c.ListLayout()),
		command.WithHistoryLimit(c.History.Limit),
	}
	if c.Random.Seed != 0 {
		opts = append(opts, command.WithSeed(c.Random.Seed))
	}
	return opts
}
