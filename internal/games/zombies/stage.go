package zombies

// Progression tracks bullet kills and the difficulty stage they unlock.
// A quota of zero disables promotion; the stage then stays at 1.
type Progression struct {
	kills int
	stage int
	quota int
}

// NewProgression starts at stage 1 with no kills.
func NewProgression(quota int) Progression {
	return Progression{stage: 1, quota: quota}
}

// OnKill records one kill and promotes the stage when kills reaches a
// positive multiple of the quota. Returns true on promotion.
func (p *Progression) OnKill() bool {
	p.kills++
	if p.quota > 0 && p.kills%p.quota == 0 {
		p.stage++
		return true
	}
	return false
}

// Kills returns the number of bullet kills so far.
func (p Progression) Kills() int {
	return p.kills
}

// Stage returns the current stage, starting at 1.
func (p Progression) Stage() int {
	return p.stage
}
