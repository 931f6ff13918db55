// Package zombies implements a top-down zombie shooter.
// The player stands at the arena centre and shoots zombies that walk in from
// the edges; every 20 kills the stage rises and zombies get tougher and
// arrive faster.
package zombies

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zombie-arcade/internal/config"
	"github.com/vovakirdan/zombie-arcade/internal/core"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game wraps a Session for the terminal platform: fixed-rate Step calls,
// rendering, pause and restart.
type Game struct {
	session *Session
	runtime core.RuntimeConfig
	cfg     config.ZombiesConfig
	logger  *log.Logger
	paused  bool
	pinned  bool // cfg supplied by the caller, never reloaded
}

// New creates a new Zombie Shooter game instance.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
func NewWithConfig(cfg config.ZombiesConfig) *Game {
	return &Game{cfg: cfg, pinned: true}
}

// SetLogger routes session logs to l for subsequent resets.
func (g *Game) SetLogger(l *log.Logger) {
	g.logger = l
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "zombies"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Zombie Shooter"
}

// Reset discards the current session and starts a fresh one.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.pinned {
		cfg, err := config.LoadZombies(configPath)
		if err != nil {
			if g.logger != nil {
				g.logger.Warn("using default config", "path", configPath, "error", err)
			}
			cfg = config.DefaultZombiesConfig()
		}
		if difficultyPreset != "" {
			config.ApplyZombiesPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.paused = false
	g.session = NewSession(g.cfg, runtime.Seed, WithLogger(g.logger))
}

// Step advances the game by one platform tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.session.State() == StateGameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.session.State() == StateRunning {
		g.paused = !g.paused
	}

	if g.paused || g.session.State() == StateGameOver {
		return core.StepResult{State: g.State()}
	}

	fired := false
	if in.Has(core.ActionFire) {
		fired = g.session.RequestFire(in.Aim)
	}
	g.session.Tick(g.runtime.TickSeconds())

	return core.StepResult{State: g.State(), Fired: fired}
}

// State returns the current game state. Score is the kill count.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Kills(),
		Stage:    g.session.Stage(),
		GameOver: g.session.State() == StateGameOver,
		Paused:   g.paused,
	}
}

// Session exposes the running simulation for read-back.
func (g *Game) Session() *Session {
	return g.session
}

// AimAt converts a screen cell into an aim vector from the player toward it.
// ok is false for cells outside the playfield (HUD, border).
func (g *Game) AimAt(x, y int) (aim core.Vec2, ok bool) {
	lay := NewLayout(g.runtime.ScreenW, g.runtime.ScreenH, g.cfg.Arena.HalfExtent)
	if !lay.Field.Contains(x, y) {
		return core.Vec2{}, false
	}
	target := lay.ToArena(x, y)
	if g.session == nil {
		return target, true
	}
	return target.Sub(g.session.Player().Pos), true
}

// RunSummary reports the finished run; ok is false while it is still going.
func (g *Game) RunSummary() (core.RunSummary, bool) {
	if g.session == nil {
		return core.RunSummary{}, false
	}
	res, over := g.session.Result()
	if !over {
		return core.RunSummary{}, false
	}
	return core.RunSummary{
		Kills:    res.Kills,
		Stage:    res.Stage,
		Survived: res.Survived,
		Preset:   string(difficultyPreset),
	}, true
}

// Resize updates the screen size used to map mouse cells onto the arena.
// The simulation itself is resolution independent and keeps running.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}
