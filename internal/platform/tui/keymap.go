package tui

import (
	"math"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/zombie-arcade/internal/core"
)

// KeyMap defines the key bindings for playing.
type KeyMap struct {
	FireUp        key.Binding
	FireDown      key.Binding
	FireLeft      key.Binding
	FireRight     key.Binding
	FireUpLeft    key.Binding
	FireUpRight   key.Binding
	FireDownLeft  key.Binding
	FireDownRight key.Binding
	Pause         key.Binding
	Restart       key.Binding
	Screenshot    key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FireUp, k.FireUpLeft, k.Pause, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FireUp, k.FireDown, k.FireLeft, k.FireRight},
		{k.FireUpLeft, k.FireUpRight, k.FireDownLeft, k.FireDownRight},
		{k.Pause, k.Restart, k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings. Mouse clicks fire toward the
// pointer; the keyboard fires in the eight compass directions.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		FireUp: key.NewBinding(
			key.WithKeys("up", "w", "8"),
			key.WithHelp("↑/w/8", "fire"),
		),
		FireDown: key.NewBinding(
			key.WithKeys("down", "s", "2"),
			key.WithHelp("↓/s/2", "fire down"),
		),
		FireLeft: key.NewBinding(
			key.WithKeys("left", "a", "4"),
			key.WithHelp("←/a/4", "fire left"),
		),
		FireRight: key.NewBinding(
			key.WithKeys("right", "d", "6"),
			key.WithHelp("→/d/6", "fire right"),
		),
		FireUpLeft: key.NewBinding(
			key.WithKeys("7"),
			key.WithHelp("7/9/1/3", "diagonals"),
		),
		FireUpRight: key.NewBinding(
			key.WithKeys("9"),
			key.WithHelp("9", "fire up-right"),
		),
		FireDownLeft: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "fire down-left"),
		),
		FireDownRight: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "fire down-right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings in use, for the help view.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

var diag = 1 / math.Sqrt2

// MapKey translates a key message to an action. For ActionFire, aim holds
// the unit direction. Returns the action (may be ActionNone).
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, aim core.Vec2) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, aim
	case key.Matches(msg, k.FireUp):
		return core.ActionFire, core.V(0, 1)
	case key.Matches(msg, k.FireDown):
		return core.ActionFire, core.V(0, -1)
	case key.Matches(msg, k.FireLeft):
		return core.ActionFire, core.V(-1, 0)
	case key.Matches(msg, k.FireRight):
		return core.ActionFire, core.V(1, 0)
	case key.Matches(msg, k.FireUpLeft):
		return core.ActionFire, core.V(-diag, diag)
	case key.Matches(msg, k.FireUpRight):
		return core.ActionFire, core.V(diag, diag)
	case key.Matches(msg, k.FireDownLeft):
		return core.ActionFire, core.V(-diag, -diag)
	case key.Matches(msg, k.FireDownRight):
		return core.ActionFire, core.V(diag, -diag)
	case key.Matches(msg, k.Pause):
		return core.ActionPause, aim
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, aim
	}
	return core.ActionNone, aim
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, aim := km.MapKey(msg)
	switch action {
	case core.ActionQuit:
		return true
	case core.ActionFire:
		frame.Fire(aim)
	case core.ActionNone:
	default:
		frame.Set(action)
	}
	return false
}
