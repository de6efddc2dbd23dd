package command

import (
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/dsviz/metrics"
	"github.com/katalvlaran/dsviz/playback"
	"github.com/katalvlaran/dsviz/viz"
)

// DefaultAnimationRate is the fraction of the remaining distance a node
// covers per second of frame time.
const DefaultAnimationRate = 2.0

// DefaultKruskalInterval paces one Kruskal edge per tick of the graph screen.
const DefaultKruskalInterval = time.Second

// Settings aggregates the knobs every engine accepts. Engines read it once
// at construction.
type Settings struct {
	Logger          *slog.Logger
	Recorder        metrics.Recorder
	Interval        time.Duration
	KruskalInterval time.Duration
	Instant         bool
	Rate            float64
	Rand            *rand.Rand
	HistoryLimit    int
	Tree            viz.TreeLayout
	List            viz.ListLayout
	Width           float64
	Height          float64
}

// Option mutates Settings.
type Option func(*Settings)

// NewSettings applies opts over the defaults.
func NewSettings(opts ...Option) Settings {
	s := Settings{
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		Recorder:        metrics.Nop{},
		Interval:        playback.DefaultInterval,
		KruskalInterval: DefaultKruskalInterval,
		Rate:            DefaultAnimationRate,
		Tree:            viz.DefaultTreeLayout(viz.DefaultWidth),
		List:            viz.DefaultListLayout(viz.DefaultHeight),
		Width:           viz.DefaultWidth,
		Height:          viz.DefaultHeight,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.Rand == nil {
		s.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return s
}

// Playback builds the engine's playback from the settings.
func (s Settings) Playback() *playback.Playback {
	return playback.New(playback.WithInterval(s.Interval), playback.WithInstant(s.Instant))
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("command: WithLogger(nil)")
	}
	return func(s *Settings) { s.Logger = l }
}

// WithRecorder sets the metrics sink. Panics on nil.
func WithRecorder(r metrics.Recorder) Option {
	if r == nil {
		panic("command: WithRecorder(nil)")
	}
	return func(s *Settings) { s.Recorder = r }
}

// WithInterval sets the reveal interval of playbacks. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(s *Settings) {
		if d > 0 {
			s.Interval = d
		}
	}
}

// WithKruskalInterval sets the pace of the graph's Kruskal animation.
func WithKruskalInterval(d time.Duration) Option {
	return func(s *Settings) {
		if d > 0 {
			s.KruskalInterval = d
		}
	}
}

// WithInstant disables pacing: playbacks finish on the next tick and
// nodes snap to their targets.
func WithInstant(on bool) Option {
	return func(s *Settings) { s.Instant = on }
}

// WithAnimationRate sets the interpolation rate. Non-positive values are ignored.
func WithAnimationRate(rate float64) Option {
	return func(s *Settings) {
		if rate > 0 {
			s.Rate = rate
		}
	}
}

// WithRand provides the RNG behind GenerateRandom. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("command: WithRand(nil)")
	}
	return func(s *Settings) { s.Rand = r }
}

// WithSeed seeds a private RNG.
func WithSeed(seed int64) Option {
	return func(s *Settings) { s.Rand = rand.New(rand.NewSource(seed)) }
}

// WithHistoryLimit caps the undo depth; 0 means unlimited.
func WithHistoryLimit(n int) Option {
	return func(s *Settings) { s.HistoryLimit = n }
}

// WithCanvas sets the drawing area and derives the default layouts from it.
func WithCanvas(width, height float64) Option {
	return func(s *Settings) {
		if width <= 0 || height <= 0 {
			return
		}
		s.Width, s.Height = width, height
		s.Tree.OriginX = width / 2
		s.List.Y = height / 2
	}
}

// WithTreeLayout overrides the tree layout.
func WithTreeLayout(l viz.TreeLayout) Option {
	return func(s *Settings) { s.Tree = l }
}

// WithListLayout overrides the list layout.
func WithListLayout(l viz.ListLayout) Option {
	return func(s *Settings) { s.List = l }
}
