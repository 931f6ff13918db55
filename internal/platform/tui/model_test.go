package tui

import (
	"io"
	"math"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/zombie-arcade/internal/core"
	"github.com/vovakirdan/zombie-arcade/internal/storage"
)

// stubGame records what the platform hands it.
type stubGame struct {
	resets  int
	steps   []core.InputFrame
	state   core.GameState
	summary core.RunSummary
	resized [2]int
	logger  *log.Logger
}

func (g *stubGame) ID() string {
	return "stub"
}

func (g *stubGame) Title() string {
	return "Stub"
}

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState {
	return g.state
}

func (g *stubGame) AimAt(x, y int) (core.Vec2, bool) {
	if y == 0 {
		return core.Vec2{}, false
	}
	return core.V(float64(x), float64(-y)), true
}

func (g *stubGame) SetLogger(l *log.Logger) {
	g.logger = l
}

func (g *stubGame) Resize(w, h int) {
	g.resized = [2]int{w, h}
}

func (g *stubGame) RunSummary() (core.RunSummary, bool) {
	return g.summary, g.state.GameOver
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	cp := core.NewInputFrame()
	for a := range in.Actions {
		cp.Set(a)
	}
	cp.Aim = in.Aim
	g.steps = append(g.steps, cp)
	return core.StepResult{State: g.state}
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	d := 1 / math.Sqrt2

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		aim    core.Vec2
	}{
		{runeKey("w"), core.ActionFire, core.V(0, 1)},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionFire, core.V(0, 1)},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionFire, core.V(-1, 0)},
		{runeKey("d"), core.ActionFire, core.V(1, 0)},
		{runeKey("2"), core.ActionFire, core.V(0, -1)},
		{runeKey("7"), core.ActionFire, core.V(-d, d)},
		{runeKey("3"), core.ActionFire, core.V(d, -d)},
		{runeKey("p"), core.ActionPause, core.Vec2{}},
		{runeKey("r"), core.ActionRestart, core.Vec2{}},
		{runeKey("q"), core.ActionQuit, core.Vec2{}},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, core.Vec2{}},
		{runeKey("x"), core.ActionNone, core.Vec2{}},
	}
	for _, tt := range tests {
		action, aim := km.MapKey(tt.msg)
		assert.Equal(t, tt.action, action, "key %q", tt.msg.String())
		assert.InDelta(t, tt.aim.X, aim.X, 1e-12, "key %q", tt.msg.String())
		assert.InDelta(t, tt.aim.Y, aim.Y, 1e-12, "key %q", tt.msg.String())
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	assert.False(t, km.MapKeyToFrame(runeKey("a"), &frame))
	assert.True(t, frame.Has(core.ActionFire))
	assert.Equal(t, core.V(-1, 0), frame.Aim)

	assert.True(t, km.MapKeyToFrame(runeKey("q"), &frame))
}

func newStubModel(t *testing.T, store *storage.Store) (Model, *stubGame) {
	t.Helper()
	g := &stubGame{}
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1})
	m.Init()
	return m, g
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm
}

func TestModelReservesHelpRow(t *testing.T) {
	m, _ := newStubModel(t, nil)
	assert.Equal(t, 11, m.config.ScreenH)
	assert.Equal(t, 11, m.screen.Height())

	lines := strings.Split(m.View(), "\n")
	assert.Len(t, lines, 12)
}

func TestModelMouseClickFires(t *testing.T) {
	m, g := newStubModel(t, nil)

	m = update(t, m, tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg{})

	require.Len(t, g.steps, 1)
	assert.True(t, g.steps[0].Has(core.ActionFire))
	assert.Equal(t, core.V(5, -3), g.steps[0].Aim)

	// motion, release and clicks off the playfield do not fire
	m = update(t, m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionMotion})
	m = update(t, m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 4, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	update(t, m, TickMsg{})
	require.Len(t, g.steps, 2)
	assert.False(t, g.steps[1].Has(core.ActionFire))
}

func TestModelResizeKeepsGame(t *testing.T) {
	m, g := newStubModel(t, nil)

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Equal(t, 1, g.resets)
	assert.Equal(t, [2]int{100, 29}, g.resized)
	assert.Equal(t, 100, m.screen.Width())
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	m, g := newStubModel(t, store)
	g.state = core.GameState{Score: 12, Stage: 1, GameOver: true}
	g.summary = core.RunSummary{Kills: 12, Stage: 1, Survived: 40.5, Preset: "easy"}

	for iter := 0; iter < 3; iter++ {
		m = update(t, m, TickMsg{})
	}

	runs, err := store.RecentRuns("stub", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 12, runs[0].Kills)
	assert.Equal(t, "easy", runs[0].Preset)

	assert.Equal(t, 12, m.best)
	assert.Contains(t, m.View(), "Best: 12")

	// restart re-arms saving
	m = update(t, m, runeKey("r"))
	m = update(t, m, TickMsg{})
	assert.Equal(t, 2, g.resets)
	assert.False(t, m.runSaved)
}

func TestModelLoadsBestFromHistory(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	_, err = store.SaveRun(storage.RunRecord{GameID: "stub", Kills: 33, Stage: 2, Survived: 70})
	require.NoError(t, err)

	m, g := newStubModel(t, store)

	assert.Equal(t, 33, m.best)
	assert.Same(t, m.logger, g.logger, "the game logs through the model's logger")

	// a worse run keeps the record
	g.state = core.GameState{Score: 4, Stage: 1, GameOver: true}
	g.summary = core.RunSummary{Kills: 4, Stage: 1, Survived: 9}
	m = update(t, m, TickMsg{})
	assert.Equal(t, 33, m.best)
}

func TestSSHServerRequiresGame(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.DBPath = filepath.Join(t.TempDir(), "test.db")

	_, err := NewSSHServer(cfg, log.New(io.Discard))
	assert.Error(t, err)
}

func TestModelQuit(t *testing.T) {
	m, _ := newStubModel(t, nil)

	next, cmd := m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.True(t, next.(Model).quitting)
	assert.Empty(t, next.(Model).View())
}

func TestFormatSurvived(t *testing.T) {
	assert.Equal(t, "0:00", FormatSurvived(0.2))
	assert.Equal(t, "1:05", FormatSurvived(65.4))
	assert.Equal(t, "12:00", FormatSurvived(720))
}

func TestRunRows(t *testing.T) {
	rows := RunRows([]storage.RunRecord{
		{Kills: 40, Stage: 3, Survived: 90, Preset: "hard"},
		{Kills: 3, Stage: 1, Survived: 12},
	})
	require.Len(t, rows, 2)
	assert.Equal(t, "#1", rows[0][0])
	assert.Equal(t, "40", rows[0][1])
	assert.Equal(t, "1:30", rows[0][3])
	assert.Equal(t, "-", rows[1][4])
}
