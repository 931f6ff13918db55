package zombies

import (
	"github.com/vovakirdan/zombie-arcade/internal/config"
	"github.com/vovakirdan/zombie-arcade/internal/core"
)

// Edge names an arena side zombies can enter from.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// SpawnInterval is the delay before the next spawn once the previous one has
// fired: max(min_interval, base_interval - stage*interval_step).
func SpawnInterval(stage int, cfg config.SpawnConfig) float64 {
	return max(cfg.MinInterval, cfg.BaseInterval-float64(stage)*cfg.IntervalStep)
}

// EdgePoint places a spawn on the given edge at offset t in [-1, 1] along it.
func EdgePoint(edge Edge, t float64, arena config.ArenaConfig) core.Vec2 {
	along := t * arena.SpawnSpan
	h := arena.HalfExtent
	switch edge {
	case EdgeTop:
		return core.V(along, h)
	case EdgeBottom:
		return core.V(along, -h)
	case EdgeLeft:
		return core.V(-h, along)
	default:
		return core.V(h, along)
	}
}

// randomSpawnPoint picks an edge uniformly, then a uniform point along it.
func (s *Session) randomSpawnPoint() core.Vec2 {
	edge := Edge(s.rng.Intn(4))
	t := s.rng.Float64()*2 - 1
	return EdgePoint(edge, t, s.cfg.Arena)
}

// onSpawnTimer runs on the cooperative loop between ticks. It adds exactly
// one zombie and re-arms itself with an interval based on the live stage.
func (s *Session) onSpawnTimer() {
	if s.state != StateRunning {
		return
	}
	id := s.spawnZombieAt(s.randomSpawnPoint())
	s.spawnTimer.Reset(SpawnInterval(s.progress.Stage(), s.cfg.Spawn))
	s.logger.Debug("zombie spawned", "id", id, "alive", len(s.zombies), "next_in", s.NextSpawnIn())
}

// spawnZombieAt appends a stage-scaled zombie at pos.
func (s *Session) spawnZombieAt(pos core.Vec2) EntityID {
	id := s.newID()
	s.zombies = append(s.zombies, NewZombie(id, pos, s.progress.Stage(), s.cfg.Zombie))
	s.spawned++
	return id
}
