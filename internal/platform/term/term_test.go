package term

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devmabbott/Invaders/internal/core"
	"github.com/devmabbott/Invaders/internal/engine"
	"github.com/devmabbott/Invaders/internal/platform"
	"github.com/devmabbott/Invaders/internal/sprite"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	return s
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestSurfaceDrawsFrameAndSprites(t *testing.T) {
	screen := newSimScreen(t, 12, 7)
	defer screen.Fini()

	surf := NewSurface(screen, 10, 4, "hi")
	surf.Clear()
	surf.Blit(sprite.New("ship", []string{"<#>"}, core.ColorBrightYellow), 8, 3)
	require.NoError(t, surf.Present())

	assert.Equal(t, tcell.RuneULCorner, runeAt(screen, 0, 0))
	assert.Equal(t, tcell.RuneLRCorner, runeAt(screen, 11, 5))
	assert.Equal(t, 'h', runeAt(screen, 0, 6))

	assert.Equal(t, '<', runeAt(screen, 9, 4))
	assert.Equal(t, '#', runeAt(screen, 10, 4))
	assert.Equal(t, tcell.RuneVLine, runeAt(screen, 11, 4), "sprites are clipped at the border")

	_, _, style, _ := screen.GetContent(9, 4)
	fg, _, _ := style.Decompose()
	assert.Equal(t, tcell.PaletteColor(core.ColorBrightYellow.ANSI()), fg)
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name   string
		ev     *tcell.EventKey
		want   core.Event
		wantOK bool
	}{
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), core.KeyDownEvent(core.KeyLeft), true},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), core.KeyDownEvent(core.KeyRight), true},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), core.KeyDownEvent(core.KeyFire), true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), core.QuitEvent(), true},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), core.QuitEvent(), true},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), core.Event{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := mapKey(tc.ev)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

// countingSim advances nothing but counts ticks.
type countingSim struct {
	ticks atomic.Int64
	keys  atomic.Int64
}

func (c *countingSim) HandleEvent(core.Event)         { c.keys.Add(1) }
func (c *countingSim) Advance()                       { c.ticks.Add(1) }
func (c *countingSim) Render(engine.Surface, float64) {}

func testOptions() platform.Options {
	rt := core.DefaultConfig()
	rt.Cols, rt.Rows = 10, 4
	return platform.Options{Runtime: rt, Hold: 200 * time.Millisecond}
}

func TestRunOnQuitsOnKey(t *testing.T) {
	screen := newSimScreen(t, 12, 7)
	sim := &countingSim{}

	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, RunOn(ctx, screen, sim, testOptions()))
	require.NoError(t, ctx.Err(), "the quit key should end the loop before the timeout")
	assert.Positive(t, sim.ticks.Load())
}

func TestRunOnRejectsSmallTerminal(t *testing.T) {
	screen := newSimScreen(t, 10, 4)

	err := RunOn(context.Background(), screen, &countingSim{}, testOptions())
	assert.ErrorIs(t, err, platform.ErrTerminalTooSmall)
}
