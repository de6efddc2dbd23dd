package playback_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsviz/playback"
)

func path(values ...int) []playback.Step {
	steps := make([]playback.Step, len(values))
	for i, v := range values {
		steps[i] = playback.Step{ID: v, Value: v}
	}
	return steps
}

func TestPlayback_SearchFound(t *testing.T) {
	p := playback.New()
	p.Start(playback.KindSearch, 4, path(5, 3, 4), nil)
	assert.Equal(t, "Searching for 4...", p.Message())

	cur, ok := p.Current()
	require.True(t, ok)
	assert.Equal(t, 5, cur.ID)

	// Below the interval nothing moves.
	assert.False(t, p.Tick(300*time.Millisecond))
	cur, _ = p.Current()
	assert.Equal(t, 5, cur.ID)

	assert.False(t, p.Tick(200*time.Millisecond))
	cur, _ = p.Current()
	assert.Equal(t, 3, cur.ID)

	assert.False(t, p.Tick(500*time.Millisecond))
	cur, _ = p.Current()
	assert.Equal(t, 4, cur.ID)

	assert.True(t, p.Tick(500*time.Millisecond))
	assert.Equal(t, playback.Idle, p.State())
	assert.Equal(t, "Node 4 is found", p.Message())
	_, ok = p.Current()
	assert.False(t, ok)
}

func TestPlayback_SearchNotFound(t *testing.T) {
	p := playback.New(playback.WithInstant(true))
	p.Start(playback.KindSearch, 6, path(5, 8, 7), nil)
	assert.True(t, p.Busy())
	assert.True(t, p.Tick(time.Millisecond))
	assert.Equal(t, playback.NotFoundMessage(6), p.Message())
}

func TestPlayback_EmptyPathCompletesImmediately(t *testing.T) {
	p := playback.New()
	p.Start(playback.KindSearch, 1, nil, nil)
	assert.False(t, p.Busy())
	assert.Equal(t, "Node 1 is not found", p.Message())
}

func TestPlayback_InsertCompletesSilently(t *testing.T) {
	p := playback.New(playback.WithInterval(time.Second))
	p.Start(playback.KindInsert, 9, path(5, 9), nil)
	assert.False(t, p.Tick(time.Second))
	assert.True(t, p.Tick(time.Second))
	assert.Empty(t, p.Message())
}

func TestPlayback_StartCancelsInFlight(t *testing.T) {
	p := playback.New()
	p.Start(playback.KindSearch, 3, path(5, 3), nil)
	p.Tick(500 * time.Millisecond)

	p.Start(playback.KindInsert, 1, path(5, 3, 1), nil)
	assert.Equal(t, 0, p.Index())
	assert.Equal(t, playback.KindInsert, p.Kind())
	assert.Empty(t, p.Message())
	cur, _ := p.Current()
	assert.Equal(t, 5, cur.ID)
}

func TestPlayback_LineMapsProportionally(t *testing.T) {
	p := playback.New()
	p.Start(playback.KindInsert, 0, path(1, 2), []int{0, 2, 3, 5})

	line, ok := p.Line()
	require.True(t, ok)
	assert.Equal(t, 0, line) // index 0 → 0*4/2 = 0

	p.Tick(500 * time.Millisecond)
	line, ok = p.Line()
	require.True(t, ok)
	assert.Equal(t, 3, line) // index 1 → 1*4/2 = 2 → lines[2]
}

func TestPlayback_NoLines(t *testing.T) {
	p := playback.New()
	p.Start(playback.KindInsert, 0, path(1), nil)
	_, ok := p.Line()
	assert.False(t, ok)
}

func TestPlayback_CancelAndInstantToggle(t *testing.T) {
	p := playback.New()
	p.Start(playback.KindDelete, 2, path(1, 2), nil)
	p.Cancel()
	assert.Equal(t, playback.Idle, p.State())
	assert.False(t, p.Tick(time.Hour))

	p.Start(playback.KindDelete, 2, path(1, 2), nil)
	p.SetInstant(true)
	assert.True(t, p.Instant())
	assert.True(t, p.Tick(0))
}

func TestKindAndStateStrings(t *testing.T) {
	assert.Equal(t, "search", playback.KindSearch.String())
	assert.Equal(t, "insert", playback.KindInsert.String())
	assert.Equal(t, "delete", playback.KindDelete.String())
	assert.Equal(t, "traverse", playback.KindTraverse.String())
	assert.Equal(t, "revealing", playback.Revealing.String())
	assert.Equal(t, "idle", playback.Idle.String())
}
