package zombies

// Collision resolution runs in two passes per tick, zombie-vs-player first.
// Entities are only flagged dead while a pass iterates; compaction happens
// between passes so no slice is mutated under an active range loop.

// resolveContacts handles zombies reaching the player. Contact always
// destroys the zombie and never counts as a kill. Returns true if the player
// died, in which case the remaining zombies are left unresolved.
func (s *Session) resolveContacts(rep *TickReport) bool {
	player := s.player.Circle()
	for i := range s.zombies {
		z := &s.zombies[i]
		if !z.Alive || !z.Circle().Overlaps(player) {
			continue
		}
		s.player.TakeDamage(s.cfg.Zombie.ContactDamage)
		z.Destroy()
		rep.Contacts++
		if s.player.HP <= 0 {
			return true
		}
	}
	return false
}

// resolveBulletHits lets every live bullet damage at most one zombie: the
// first live one it overlaps, in spawn order.
func (s *Session) resolveBulletHits(rep *TickReport) {
	for bi := range s.bullets {
		b := &s.bullets[bi]
		if !b.Alive {
			continue
		}
		bc := b.Circle()
		for zi := range s.zombies {
			z := &s.zombies[zi]
			if !z.Alive || !z.Circle().Overlaps(bc) {
				continue
			}
			b.Destroy()
			rep.Hits++
			if z.Hurt(b.Damage) {
				rep.Kills++
				s.onKill()
			}
			break
		}
	}
}

// compactZombies drops dead zombies in place, keeping spawn order.
func compactZombies(zs []Zombie) []Zombie {
	alive := zs[:0]
	for _, z := range zs {
		if z.Alive {
			alive = append(alive, z)
		}
	}
	clear(zs[len(alive):])
	return alive
}

// compactBullets drops spent bullets in place, keeping fire order.
func compactBullets(bs []Bullet) []Bullet {
	alive := bs[:0]
	for _, b := range bs {
		if b.Alive {
			alive = append(alive, b)
		}
	}
	clear(bs[len(alive):])
	return alive
}
