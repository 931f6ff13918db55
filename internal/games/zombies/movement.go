package zombies

import (
	"math"

	"github.com/vovakirdan/zombie-arcade/internal/core"
)

// advanceZombie steps z toward target by speed*dt, re-aiming every call.
// Within eps of the target it stays put.
func advanceZombie(z *Zombie, target core.Vec2, dt, eps float64) {
	if !z.Alive {
		return
	}
	delta := target.Sub(z.Pos)
	dist := delta.Len()
	if dist <= eps {
		return
	}
	z.Pos = z.Pos.Add(delta.Scale(z.Speed * dt / dist))
}

// advanceBullet moves b along its direction and marks it dead once it leaves
// the arena.
func advanceBullet(b *Bullet, dt, halfExtent float64) {
	if !b.Alive {
		return
	}
	b.Pos = b.Pos.Add(b.Dir.Scale(b.Speed * dt))
	if math.Abs(b.Pos.X) > halfExtent || math.Abs(b.Pos.Y) > halfExtent {
		b.Destroy()
	}
}
