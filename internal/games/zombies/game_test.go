package zombies

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/zombie-arcade/internal/config"
	"github.com/vovakirdan/zombie-arcade/internal/core"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultZombiesConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 60, ScreenH: 24, TickRate: 60, Seed: 1})
	return g
}

func TestGameIdentity(t *testing.T) {
	g := New()
	assert.Equal(t, "zombies", g.ID())
	assert.Equal(t, "Zombie Shooter", g.Title())
	assert.Equal(t, core.GameState{}, g.State(), "no session before Reset")
}

func TestGameStepFires(t *testing.T) {
	g := newTestGame(t)

	in := core.NewInputFrame()
	in.Fire(core.V(0, 1))
	res := g.Step(in)

	assert.True(t, res.Fired)
	assert.Len(t, g.Session().Bullets(), 1)
	assert.Equal(t, uint64(1), g.Session().Ticks())

	res = g.Step(in)
	assert.False(t, res.Fired, "cooldown")
}

func TestGamePauseFreezesClock(t *testing.T) {
	g := newTestGame(t)
	g.Step(core.NewInputFrame())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	res := g.Step(pause)
	require.True(t, res.State.Paused)

	now := g.Session().Now()
	for iter := 0; iter < 120; iter++ {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, now, g.Session().Now())

	g.Step(pause)
	assert.False(t, g.State().Paused)
	g.Step(core.NewInputFrame())
	assert.Greater(t, g.Session().Now(), now)
}

func TestGameRestartAfterGameOver(t *testing.T) {
	g := newTestGame(t)
	s := g.Session()
	s.player.HP = 10
	placeZombie(s, core.V(0.1, 0))

	res := g.Step(core.NewInputFrame())
	require.True(t, res.State.GameOver)

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	res = g.Step(restart)

	assert.False(t, res.State.GameOver)
	assert.NotSame(t, s, g.Session())
	assert.Equal(t, 100, g.Session().Player().HP)
	assert.Equal(t, 1, res.State.Stage)
}

func TestGameRestartIgnoredWhileRunning(t *testing.T) {
	g := newTestGame(t)
	s := g.Session()

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	assert.Same(t, s, g.Session())
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t)
	scr := core.NewScreen(60, 24)

	g.Render(scr)

	assert.Contains(t, scr.Row(0), "Kills: 0  Stage: 1")
	assert.Contains(t, scr.Row(0), "100/100")
	assert.Equal(t, PlayerChar, scr.Get(30, 12))
	assert.Equal(t, '┌', scr.Get(0, 1))
	assert.NotContains(t, scr.String(), "GAME OVER")
}

func TestGameRenderGameOver(t *testing.T) {
	g := newTestGame(t)
	g.Session().player.HP = 10
	placeZombie(g.Session(), core.V(0.1, 0))
	g.Step(core.NewInputFrame())

	scr := core.NewScreen(60, 24)
	g.Render(scr)

	out := scr.String()
	assert.Contains(t, out, "GAME OVER")
	assert.Contains(t, out, "Press R to restart")
}

func TestGameRenderEntities(t *testing.T) {
	g := newTestGame(t)
	placeZombie(g.Session(), core.V(-0.9, 0.9))
	in := core.NewInputFrame()
	in.Fire(core.V(1, 0))
	g.Step(in) // moves the bullet off the player's cell

	scr := core.NewScreen(60, 24)
	g.Render(scr)

	out := scr.String()
	assert.Equal(t, 1, strings.Count(out, string(ZombieChar)))
	assert.Equal(t, 1, strings.Count(out, string(BulletChar)))
}

func TestLayoutRoundTrip(t *testing.T) {
	lay := NewLayout(60, 24, 1.05)
	for _, p := range []core.Vec2{{}, {X: 0.5, Y: -0.5}, {X: -1, Y: 1}, {X: 1.04, Y: 0.2}} {
		x, y := lay.ToCell(p)
		assert.True(t, lay.Field.Contains(x, y))
		back := lay.ToArena(x, y)
		cellW := 2 * lay.Half / float64(lay.Field.W)
		cellH := 2 * lay.Half / float64(lay.Field.H)
		assert.InDelta(t, p.X, back.X, cellW, "x of %v", p)
		assert.InDelta(t, p.Y, back.Y, cellH, "y of %v", p)
	}
}

func TestLayoutClampsOutsidePoints(t *testing.T) {
	lay := NewLayout(60, 24, 1.05)
	x, y := lay.ToCell(core.V(5, -5))
	assert.Equal(t, lay.Field.Right()-1, x)
	assert.Equal(t, lay.Field.Bottom()-1, y)
}

func TestAimAt(t *testing.T) {
	g := newTestGame(t)

	aim, ok := g.AimAt(45, 12)
	require.True(t, ok)
	assert.Greater(t, aim.X, 0.0)
	assert.InDelta(t, 0.0, aim.Y, 0.06)

	aim, ok = g.AimAt(30, 3)
	require.True(t, ok)
	assert.Greater(t, aim.Y, 0.0)

	// HUD row and border are not part of the arena
	_, ok = g.AimAt(30, 0)
	assert.False(t, ok)
	_, ok = g.AimAt(0, 12)
	assert.False(t, ok)
}

func TestHPBar(t *testing.T) {
	tests := []struct {
		hp, max, width int
		want           string
	}{
		{100, 100, 4, "████"},
		{50, 100, 4, "██░░"},
		{1, 100, 4, "█░░░"},
		{0, 100, 4, "░░░░"},
		{10, 0, 4, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HPBar(tt.hp, tt.max, tt.width))
	}
}

func TestGameRunSummary(t *testing.T) {
	g := newTestGame(t)

	_, ok := g.RunSummary()
	assert.False(t, ok)

	for iter := 0; iter < 30; iter++ {
		g.Step(core.NewInputFrame())
	}
	g.Session().player.HP = 10
	placeZombie(g.Session(), core.V(0.1, 0))
	g.Step(core.NewInputFrame())

	sum, ok := g.RunSummary()
	require.True(t, ok)
	assert.Equal(t, 0, sum.Kills)
	assert.Equal(t, 1, sum.Stage)
	assert.InDelta(t, 31.0/60.0, sum.Survived, 1e-9)
}

func TestGameResizeKeepsSession(t *testing.T) {
	g := newTestGame(t)
	s := g.Session()

	g.Resize(120, 40)

	assert.Same(t, s, g.Session())
	aim, ok := g.AimAt(100, 20)
	require.True(t, ok)
	assert.Greater(t, aim.X, 0.0)
}
