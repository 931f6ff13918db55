package zombies

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zombie-arcade/internal/config"
	"github.com/vovakirdan/zombie-arcade/internal/core"
	"github.com/vovakirdan/zombie-arcade/internal/sched"
)

// State is the session lifecycle. GameOver is terminal.
type State int

const (
	StateRunning State = iota
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// TickReport summarises what happened during one Tick.
type TickReport struct {
	Spawned  int // zombies added by the spawn timer at this tick's boundary
	Fired    int // queued fire requests that produced bullets
	Reaped   int // bullets that left the arena
	Contacts int // zombies destroyed by touching the player
	Hits     int // bullets consumed by a zombie
	Kills    int // zombies destroyed by bullets
	GameOver bool
}

// GameOverEvent is recorded once, at the Running -> GameOver transition.
type GameOverEvent struct {
	Kills    int
	Stage    int
	Survived float64 // simulation seconds
	Tick     uint64
}

// Session is one run of the simulation: the player, all zombies and bullets,
// kill/stage counters and the spawn timer. A new run needs a new Session.
//
// Session is single-threaded. Tick, RequestFire and the spawn callback all
// run on the caller's goroutine; the spawn timer only fires inside Tick,
// before the tick body.
type Session struct {
	cfg    config.ZombiesConfig
	logger *log.Logger
	rng    *rand.Rand

	loop       *sched.Loop
	spawnTimer *sched.Timer

	player   Player
	zombies  []Zombie
	bullets  []Bullet
	progress Progression

	state   State
	tick    uint64
	nextID  EntityID
	spawned int

	inTick       bool
	pendingFires []core.Vec2

	done   chan struct{}
	result GameOverEvent
}

// Option configures a Session.
type Option func(*Session)

// WithLogger routes session logs to l. By default logs are discarded.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession creates a running session. The first zombie arrives after
// spawn.initial_delay seconds of simulated time.
func NewSession(cfg config.ZombiesConfig, seed int64, opts ...Option) *Session {
	s := &Session{
		cfg:      cfg,
		logger:   log.New(io.Discard),
		rng:      rand.New(rand.NewSource(seed)),
		loop:     sched.New(),
		player:   NewPlayer(cfg.Player),
		zombies:  make([]Zombie, 0, 32),
		bullets:  make([]Bullet, 0, 32),
		progress: NewProgression(cfg.Stage.KillsPerStage),
		state:    StateRunning,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.spawnTimer = s.loop.AfterFunc(cfg.Spawn.InitialDelay, s.onSpawnTimer)
	return s
}

// RequestFire asks for one bullet along aim. It is a no-op (returns false)
// during the cooldown, for aim vectors shorter than player.min_aim, and after
// game over. Calls made while a tick is running are queued for the next tick
// boundary; they return true if queued.
func (s *Session) RequestFire(aim core.Vec2) bool {
	if s.state != StateRunning {
		return false
	}
	if s.inTick {
		s.pendingFires = append(s.pendingFires, aim)
		return true
	}
	return s.fire(aim)
}

func (s *Session) fire(aim core.Vec2) bool {
	now := s.loop.Now()
	if !s.player.CanShoot(now, s.cfg.Player.ShootCooldown) {
		return false
	}
	b, ok := NewBullet(s.newID(), s.player.Pos, aim, s.cfg.Player.MinAim, s.cfg.Bullet)
	if !ok {
		return false
	}
	s.bullets = append(s.bullets, b)
	s.player.LastShot = now
	s.player.HasShot = true
	return true
}

// Tick advances the simulation by dt seconds. After game over it does nothing.
//
// Order: due timers (spawns) and queued fires at the boundary, then bullets
// move and leave, zombies move, zombie-vs-player, bullet-vs-zombie.
func (s *Session) Tick(dt float64) TickReport {
	var rep TickReport
	if s.state != StateRunning {
		rep.GameOver = true
		return rep
	}
	if dt < 0 {
		dt = 0
	}

	before := s.spawned
	s.loop.Advance(dt)
	rep.Spawned = s.spawned - before

	queued := s.pendingFires
	s.pendingFires = nil
	for _, aim := range queued {
		if s.fire(aim) {
			rep.Fired++
		}
	}

	s.inTick = true
	defer func() { s.inTick = false }()
	s.tick++

	// 1. bullets
	for i := range s.bullets {
		advanceBullet(&s.bullets[i], dt, s.cfg.Arena.HalfExtent)
		if !s.bullets[i].Alive {
			rep.Reaped++
		}
	}
	s.bullets = compactBullets(s.bullets)

	// 2. zombies
	for i := range s.zombies {
		advanceZombie(&s.zombies[i], s.player.Pos, dt, s.cfg.Zombie.ArriveEpsilon)
	}

	// 3. zombie vs player
	died := s.resolveContacts(&rep)
	s.zombies = compactZombies(s.zombies)
	if died {
		s.endGame()
		rep.GameOver = true
		return rep
	}

	// 4. bullet vs zombie
	s.resolveBulletHits(&rep)
	s.bullets = compactBullets(s.bullets)
	s.zombies = compactZombies(s.zombies)

	return rep
}

func (s *Session) onKill() {
	if s.progress.OnKill() {
		s.logger.Debug("stage up",
			"stage", s.progress.Stage(),
			"kills", s.progress.Kills(),
			"next_spawn_interval", SpawnInterval(s.progress.Stage(), s.cfg.Spawn),
		)
	}
}

// endGame performs the one-time Running -> GameOver transition.
func (s *Session) endGame() {
	if s.state == StateGameOver {
		return
	}
	s.state = StateGameOver
	s.spawnTimer.Stop()
	s.pendingFires = nil
	s.result = GameOverEvent{
		Kills:    s.progress.Kills(),
		Stage:    s.progress.Stage(),
		Survived: s.loop.Now(),
		Tick:     s.tick,
	}
	close(s.done)
	s.logger.Info("game over",
		"kills", s.result.Kills,
		"stage", s.result.Stage,
		"survived", s.result.Survived,
		"ticks", s.Ticks(),
	)
}

func (s *Session) newID() EntityID {
	s.nextID++
	return s.nextID
}

// GameOver returns a channel closed exactly once, when the player dies.
func (s *Session) GameOver() <-chan struct{} {
	return s.done
}

// Result returns the game-over record; ok is false while running.
func (s *Session) Result() (GameOverEvent, bool) {
	return s.result, s.state == StateGameOver
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Kills returns the number of bullet kills.
func (s *Session) Kills() int {
	return s.progress.Kills()
}

// Stage returns the current stage.
func (s *Session) Stage() int {
	return s.progress.Stage()
}

// Now returns the simulation time in seconds.
func (s *Session) Now() float64 {
	return s.loop.Now()
}

// Ticks returns the number of ticks processed.
func (s *Session) Ticks() uint64 {
	return s.tick
}

// NextSpawnIn returns seconds until the next spawn, or -1 once cancelled.
func (s *Session) NextSpawnIn() float64 {
	if !s.spawnTimer.Armed() {
		return -1
	}
	return s.spawnTimer.Due() - s.loop.Now()
}
