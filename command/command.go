package command

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/dsviz/loader"
	"github.com/katalvlaran/dsviz/playback"
	"github.com/katalvlaran/dsviz/viz"
)

// Result is the outcome of insert/delete style commands.
type Result struct {
	// Committed is true when the structure changed and a snapshot was taken.
	Committed bool   `yaml:"committed"`
	Message   string `yaml:"message,omitempty"`
}

// LoadResult summarizes a file load.
type LoadResult struct {
	Count   int    `yaml:"count"`
	Message string `yaml:"message"`
}

// Random bounds used by the "Random" button.
const (
	DefaultRandomCount = 10
	DefaultRandomMin   = 1
	DefaultRandomMax   = 100
)

// Engine is the surface shared by all structures.
type Engine interface {
	viz.Hints

	Undo() (playback.Step, bool)
	Redo() (playback.Step, bool)
	Clear()
	LoadFromFile(path string) LoadResult
	Update(dt time.Duration)
	Playback() *playback.Playback
}

// Keyed is an Engine addressed by integer values: the tree, list and hash table.
type Keyed interface {
	Engine

	Insert(v int) Result
	Delete(v int) Result
	Search(v int) []playback.Step
	// GenerateRandom replaces the contents with random values. Invalid
	// bounds return a builder error and change nothing.
	GenerateRandom(count, lo, hi int) error
	Len() int
}

// Loaded formats the success message of a file load.
func Loaded(count int, path string) string {
	return fmt.Sprintf("Loaded %d values from %s", count, path)
}

// LoadedInstantly is the success message of a load with animation disabled.
func LoadedInstantly(count int, path string) string {
	return fmt.Sprintf("Instantly loaded %d values from %s", count, path)
}

// LoadFailed maps a load error to its user-facing message.
func LoadFailed(path string, err error) string {
	if errors.Is(err, loader.ErrFileIO) {
		return fmt.Sprintf("Failed to open file: %s", path)
	}
	return fmt.Sprintf("Failed to load %s: %v", path, err)
}

// Canceled is the message shown when no file was chosen.
const Canceled = "File selection canceled."
