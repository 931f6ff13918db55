// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

// ZombiesConfig contains all tuning for the Zombie Shooter simulation.
type ZombiesConfig struct {
	Arena  ArenaConfig  `yaml:"arena"`
	Player PlayerConfig `yaml:"player"`
	Zombie ZombieConfig `yaml:"zombie"`
	Bullet BulletConfig `yaml:"bullet"`
	Spawn  SpawnConfig  `yaml:"spawn"`
	Stage  StageConfig  `yaml:"stage"`
}

// ArenaConfig defines the playfield bounds.
type ArenaConfig struct {
	HalfExtent float64 `yaml:"half_extent"`
	SpawnSpan  float64 `yaml:"spawn_span"`
}

// PlayerConfig defines the stationary player.
type PlayerConfig struct {
	MaxHP         int     `yaml:"max_hp"`
	Radius        float64 `yaml:"radius"`
	ShootCooldown float64 `yaml:"shoot_cooldown"`
	MinAim        float64 `yaml:"min_aim"`
}

// ZombieConfig defines hostile agents at stage 1 and how they scale.
type ZombieConfig struct {
	BaseHP        int     `yaml:"base_hp"`
	BaseSpeed     float64 `yaml:"base_speed"`
	Radius        float64 `yaml:"radius"`
	HPGrowth      float64 `yaml:"hp_growth"`
	SpeedGrowth   float64 `yaml:"speed_growth"`
	ContactDamage int     `yaml:"contact_damage"`
	ArriveEpsilon float64 `yaml:"arrive_epsilon"`
}

// BulletConfig defines player projectiles.
type BulletConfig struct {
	Speed  float64 `yaml:"speed"`
	Radius float64 `yaml:"radius"`
	Damage int     `yaml:"damage"`
}

// SpawnConfig defines the spawn timer cadence.
type SpawnConfig struct {
	InitialDelay float64 `yaml:"initial_delay"`
	BaseInterval float64 `yaml:"base_interval"`
	IntervalStep float64 `yaml:"interval_step"`
	MinInterval  float64 `yaml:"min_interval"`
}

// StageConfig defines difficulty progression.
type StageConfig struct {
	KillsPerStage int `yaml:"kills_per_stage"`
}
