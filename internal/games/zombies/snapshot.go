package zombies

import (
	"math"

	"github.com/vovakirdan/zombie-arcade/internal/core"
)

// PlayerView is the read-only player state for presentation.
type PlayerView struct {
	Pos   core.Vec2
	HP    int
	MaxHP int
}

// EntityView is the read-only state of one live zombie or bullet.
type EntityView struct {
	ID  EntityID
	Pos core.Vec2
	HP  int // zero for bullets
}

// Player returns the player's position and health.
func (s *Session) Player() PlayerView {
	return PlayerView{Pos: s.player.Pos, HP: s.player.HP, MaxHP: s.player.MaxHP}
}

// Zombies returns a copy of every live zombie, in spawn order.
func (s *Session) Zombies() []EntityView {
	out := make([]EntityView, 0, len(s.zombies))
	for _, z := range s.zombies {
		if z.Alive {
			out = append(out, EntityView{ID: z.ID, Pos: z.Pos, HP: z.HP})
		}
	}
	return out
}

// Bullets returns a copy of every live bullet, in fire order.
func (s *Session) Bullets() []EntityView {
	out := make([]EntityView, 0, len(s.bullets))
	for _, b := range s.bullets {
		if b.Alive {
			out = append(out, EntityView{ID: b.ID, Pos: b.Pos})
		}
	}
	return out
}

// Snapshot contains the complete observable state for replays and
// determinism checks.
type Snapshot struct {
	Tick     uint64
	Time     float64
	State    string
	PlayerHP int
	MaxHP    int
	Kills    int
	Stage    int
	Zombies  []EntityView
	Bullets  []EntityView
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	p := s.Player()
	return Snapshot{
		Tick:     s.tick,
		Time:     s.loop.Now(),
		State:    s.state.String(),
		PlayerHP: p.HP,
		MaxHP:    p.MaxHP,
		Kills:    s.progress.Kills(),
		Stage:    s.progress.Stage(),
		Zombies:  s.Zombies(),
		Bullets:  s.Bullets(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + math.Float64bits(snap.Time)
	h = h*31 + uint64(snap.PlayerHP) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kills)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Stage)    //#nosec G115 -- hash computation

	for _, e := range snap.Zombies {
		h = h*31 + uint64(e.ID)
		h = h*31 + math.Float64bits(e.Pos.X)
		h = h*31 + math.Float64bits(e.Pos.Y)
		h = h*31 + uint64(e.HP) //#nosec G115 -- hash computation
	}
	for _, e := range snap.Bullets {
		h = h*31 + uint64(e.ID)
		h = h*31 + math.Float64bits(e.Pos.X)
		h = h*31 + math.Float64bits(e.Pos.Y)
	}
	return h
}
