package playback

import (
	"fmt"
	"time"
)

// Playback is the single-flight reveal driver. The zero value is not usable;
// call New.
type Playback struct {
	interval time.Duration
	instant  bool

	state   State
	kind    Kind
	target  int
	steps   []Step
	lines   []int
	index   int
	elapsed time.Duration
	message string
}

// New returns an idle Playback.
func New(opts ...Option) *Playback {
	p := &Playback{interval: DefaultInterval}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Start begins revealing steps, abandoning any playback in flight.
// lines may be nil. The slices are owned by the Playback afterwards.
// An empty path completes immediately.
func (p *Playback) Start(kind Kind, target int, steps []Step, lines []int) {
	p.kind = kind
	p.target = target
	p.steps = steps
	p.lines = lines
	p.index = 0
	p.elapsed = 0
	p.message = ""
	if kind == KindSearch {
		p.message = fmt.Sprintf("Searching for %d...", target)
	}
	if len(steps) == 0 {
		p.finish()
		return
	}
	p.state = Revealing
}

// Tick advances the reveal by one frame of dt. It returns true on the frame
// the playback completes.
func (p *Playback) Tick(dt time.Duration) bool {
	if p.state != Revealing {
		return false
	}
	if p.instant {
		p.index = len(p.steps)
		p.finish()
		return true
	}
	p.elapsed += dt
	if p.elapsed < p.interval {
		return false
	}
	p.elapsed = 0
	p.index++
	if p.index >= len(p.steps) {
		p.finish()
		return true
	}

	return false
}

// Cancel drops the in-flight playback without posting a message.
func (p *Playback) Cancel() {
	p.state = Idle
	p.steps = nil
	p.lines = nil
	p.index = 0
	p.elapsed = 0
	p.message = ""
}

func (p *Playback) finish() {
	if p.kind == KindSearch {
		if n := len(p.steps); n > 0 && p.steps[n-1].Value == p.target {
			p.message = FoundMessage(p.target)
		} else {
			p.message = NotFoundMessage(p.target)
		}
	}
	p.state = Idle
	p.steps = nil
	p.lines = nil
	p.index = 0
	p.elapsed = 0
}

// Current returns the step to highlight this frame.
func (p *Playback) Current() (Step, bool) {
	if p.state != Revealing || p.index >= len(p.steps) {
		return Step{}, false
	}

	return p.steps[p.index], true
}

// Line returns the pseudocode line for the current step, if lines were given.
func (p *Playback) Line() (int, bool) {
	if p.state != Revealing || len(p.lines) == 0 || len(p.steps) == 0 {
		return 0, false
	}
	i := p.index * len(p.lines) / len(p.steps)
	if i >= len(p.lines) {
		i = len(p.lines) - 1
	}

	return p.lines[i], true
}

// State reports Idle or Revealing.
func (p *Playback) State() State { return p.state }

// Busy reports whether a playback is in flight.
func (p *Playback) Busy() bool { return p.state == Revealing }

// Kind returns the kind of the most recently started playback.
func (p *Playback) Kind() Kind { return p.kind }

// Index returns the current path index.
func (p *Playback) Index() int { return p.index }

// Len returns the length of the path in flight.
func (p *Playback) Len() int { return len(p.steps) }

// Message returns the latest status message, possibly empty.
func (p *Playback) Message() string { return p.message }

// SetMessage overrides the status message; engines use it for command results.
func (p *Playback) SetMessage(msg string) { p.message = msg }

// Instant reports whether instant mode is on.
func (p *Playback) Instant() bool { return p.instant }

// SetInstant toggles instant mode. A playback in flight picks it up on its
// next Tick.
func (p *Playback) SetInstant(on bool) { p.instant = on }

// Interval returns the per-step pace.
func (p *Playback) Interval() time.Duration { return p.interval }
