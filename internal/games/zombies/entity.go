package zombies

import (
	"math"

	"github.com/vovakirdan/zombie-arcade/internal/config"
	"github.com/vovakirdan/zombie-arcade/internal/core"
)

// EntityID identifies a zombie or bullet for its whole lifetime. IDs are never
// reused within a session, so presentation can key render handles by them.
type EntityID uint64

// Player is the stationary shooter at the arena centre.
type Player struct {
	Pos      core.Vec2
	HP       int
	MaxHP    int
	Radius   float64
	LastShot float64 // simulation time of the last accepted shot
	HasShot  bool
}

// NewPlayer creates a full-health player at the origin.
func NewPlayer(cfg config.PlayerConfig) Player {
	return Player{
		Pos:    core.Vec2{},
		HP:     cfg.MaxHP,
		MaxHP:  cfg.MaxHP,
		Radius: cfg.Radius,
	}
}

// TakeDamage lowers HP, never below zero.
func (p *Player) TakeDamage(n int) {
	p.HP = max(p.HP-n, 0)
}

// clockSlack absorbs float drift from summing frame deltas on the clock.
const clockSlack = 1e-9

// CanShoot reports whether the cooldown has elapsed at time now.
func (p Player) CanShoot(now, cooldown float64) bool {
	return !p.HasShot || now-p.LastShot+clockSlack >= cooldown
}

// Circle returns the player's collision disc.
func (p Player) Circle() core.Circle {
	return core.Circle{Center: p.Pos, R: p.Radius}
}

// Zombie is a hostile agent walking toward the player.
type Zombie struct {
	ID     EntityID
	Pos    core.Vec2
	HP     int
	Speed  float64
	Radius float64
	Alive  bool
}

// NewZombie creates a zombie with stats scaled for the given stage.
func NewZombie(id EntityID, pos core.Vec2, stage int, cfg config.ZombieConfig) Zombie {
	return Zombie{
		ID:     id,
		Pos:    pos,
		HP:     ScaledHP(stage, cfg),
		Speed:  ScaledSpeed(stage, cfg),
		Radius: cfg.Radius,
		Alive:  true,
	}
}

// ScaledHP returns base_hp * (1 + hp_growth*(stage-1)), truncated, at least 1.
func ScaledHP(stage int, cfg config.ZombieConfig) int {
	scale := 1.0 + cfg.HPGrowth*float64(max(stage, 1)-1)
	// 1e-9 absorbs float error so 30*1.2 truncates to 36, not 35.
	hp := int(math.Floor(float64(cfg.BaseHP)*scale + 1e-9))
	return max(hp, 1)
}

// ScaledSpeed returns base_speed * (1 + speed_growth*(stage-1)).
func ScaledSpeed(stage int, cfg config.ZombieConfig) float64 {
	return cfg.BaseSpeed * (1.0 + cfg.SpeedGrowth*float64(max(stage, 1)-1))
}

// Hurt applies damage, clamping HP at zero. Returns true if this hit killed
// the zombie.
func (z *Zombie) Hurt(dmg int) bool {
	if !z.Alive {
		return false
	}
	z.HP = max(z.HP-dmg, 0)
	if z.HP == 0 {
		z.Alive = false
		return true
	}
	return false
}

// Destroy removes the zombie regardless of remaining HP.
func (z *Zombie) Destroy() {
	z.Alive = false
}

// Circle returns the zombie's collision disc.
func (z Zombie) Circle() core.Circle {
	return core.Circle{Center: z.Pos, R: z.Radius}
}

// Bullet is a single-use projectile fired by the player.
type Bullet struct {
	ID     EntityID
	Pos    core.Vec2
	Dir    core.Vec2 // unit length
	Speed  float64
	Damage int
	Radius float64
	Alive  bool
}

// NewBullet creates a bullet at pos travelling along aim. ok is false when aim
// is shorter than minAim, in which case no bullet should be spawned.
func NewBullet(id EntityID, pos, aim core.Vec2, minAim float64, cfg config.BulletConfig) (Bullet, bool) {
	dir, ok := aim.Normalize(minAim)
	if !ok {
		return Bullet{}, false
	}
	return Bullet{
		ID:     id,
		Pos:    pos,
		Dir:    dir,
		Speed:  cfg.Speed,
		Damage: cfg.Damage,
		Radius: cfg.Radius,
		Alive:  true,
	}, true
}

// Destroy marks the bullet as spent.
func (b *Bullet) Destroy() {
	b.Alive = false
}

// Circle returns the bullet's collision disc.
func (b Bullet) Circle() core.Circle {
	return core.Circle{Center: b.Pos, R: b.Radius}
}
