package playback

import (
	"fmt"
	"time"
)

// DefaultInterval is the reveal pace for one path step.
const DefaultInterval = 500 * time.Millisecond

// Kind tags the operation a playback belongs to.
type Kind uint8

const (
	// KindTraverse is a generic reveal with no completion message.
	KindTraverse Kind = iota
	// KindSearch posts a found / not found message on completion.
	KindSearch
	// KindInsert reveals the descent that placed a new node.
	KindInsert
	// KindDelete reveals the descent that reached a removed node.
	KindDelete
)

func (k Kind) String() string {
	switch k {
	case KindSearch:
		return "search"
	case KindInsert:
		return "insert"
	case KindDelete:
		return "delete"
	default:
		return "traverse"
	}
}

// State of the playback machine.
type State uint8

const (
	Idle State = iota
	Revealing
)

func (s State) String() string {
	if s == Revealing {
		return "revealing"
	}
	return "idle"
}

// Step is one visited node. ID is the identifier the render hints use;
// Value is the payload compared against a search target.
type Step struct {
	ID    int `yaml:"id"`
	Value int `yaml:"value"`
}

// Option configures a Playback.
type Option func(*Playback)

// WithInterval sets the per-step pace. Non-positive values keep the default.
func WithInterval(d time.Duration) Option {
	return func(p *Playback) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithInstant enables instant mode.
func WithInstant(on bool) Option {
	return func(p *Playback) { p.instant = on }
}

// FoundMessage is the completion message of a successful search.
func FoundMessage(target int) string { return fmt.Sprintf("Node %d is found", target) }

// NotFoundMessage is the completion message of a failed search.
func NotFoundMessage(target int) string { return fmt.Sprintf("Node %d is not found", target) }
