// Package tui runs a Game in the terminal with Bubble Tea and serves it
// over SSH.
package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zombie-arcade/internal/core"
)

// Game is what the platform drives. Games contain pure logic with no
// Bubble Tea dependency; the platform handles input mapping, timing and
// drawing the screen buffer to the terminal.
type Game interface {
	// ID is the stable identifier used for run history (e.g., "zombies").
	ID() string

	// Title is the display name (e.g., "Zombie Shooter").
	Title() string

	// Reset discards any running game and starts a fresh one.
	// Called once at start and again when restarting after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState

	// AimAt converts the screen cell under the pointer into an aim vector.
	// ok is false when the cell is not part of the playfield.
	AimAt(x, y int) (aim core.Vec2, ok bool)

	// Resize adapts to a new screen size without restarting.
	Resize(w, h int)

	// RunSummary describes the finished run; ok is false while it is running.
	RunSummary() (core.RunSummary, bool)

	// SetLogger routes game logs to l.
	SetLogger(l *log.Logger)
}
