package config

import (
	_ "embed"
)

//go:embed defaults/zombies.yaml
var defaultZombiesYAML []byte

// DefaultZombiesConfig returns the default Zombie Shooter configuration.
func DefaultZombiesConfig() ZombiesConfig {
	return ZombiesConfig{
		Arena: ArenaConfig{
			HalfExtent: 1.05,
			SpawnSpan:  1.0,
		},
		Player: PlayerConfig{
			MaxHP:         100,
			Radius:        0.08,
			ShootCooldown: 0.2,
			MinAim:        0.01,
		},
		Zombie: ZombieConfig{
			BaseHP:        30,
			BaseSpeed:     0.25,
			Radius:        0.09,
			HPGrowth:      0.2,
			SpeedGrowth:   0.1,
			ContactDamage: 10,
			ArriveEpsilon: 0.001,
		},
		Bullet: BulletConfig{
			Speed:  3.0,
			Radius: 0.03,
			Damage: 10,
		},
		Spawn: SpawnConfig{
			InitialDelay: 2.0,
			BaseInterval: 2.0,
			IntervalStep: 0.1,
			MinInterval:  0.5,
		},
		Stage: StageConfig{
			KillsPerStage: 20,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "zombies":
		return defaultZombiesYAML
	default:
		return nil
	}
}
