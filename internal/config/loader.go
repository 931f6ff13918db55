package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// LoadZombies loads Zombie Shooter configuration.
// Search order: customPath -> ~/.arcade/configs/zombies.yaml -> ./configs/zombies.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file only needs the keys it
// changes.
func LoadZombies(customPath string) (ZombiesConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ZombiesConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseZombies(data)
		if err != nil {
			return ZombiesConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("zombies.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseZombies(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/zombies.yaml"); err == nil {
		if cfg, err := ParseZombies(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseZombies(defaultZombiesYAML)
	if err != nil {
		return DefaultZombiesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseZombies decodes YAML over the hardcoded defaults and validates the result.
func ParseZombies(data []byte) (ZombiesConfig, error) {
	cfg := DefaultZombiesConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ZombiesConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return ZombiesConfig{}, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c ZombiesConfig) Validate() error {
	checks := []struct {
		ok   bool
		name string
	}{
		{c.Arena.HalfExtent > 0, "arena.half_extent"},
		{c.Arena.SpawnSpan > 0, "arena.spawn_span"},
		{c.Player.MaxHP > 0, "player.max_hp"},
		{c.Player.Radius > 0, "player.radius"},
		{c.Player.ShootCooldown >= 0, "player.shoot_cooldown"},
		{c.Player.MinAim > 0, "player.min_aim"},
		{c.Zombie.BaseHP > 0, "zombie.base_hp"},
		{c.Zombie.BaseSpeed > 0, "zombie.base_speed"},
		{c.Zombie.Radius > 0, "zombie.radius"},
		{c.Zombie.ContactDamage >= 0, "zombie.contact_damage"},
		{c.Bullet.Speed > 0, "bullet.speed"},
		{c.Bullet.Radius > 0, "bullet.radius"},
		{c.Bullet.Damage > 0, "bullet.damage"},
		{c.Spawn.InitialDelay >= 0, "spawn.initial_delay"},
		{c.Spawn.MinInterval > 0, "spawn.min_interval"},
		{c.Stage.KillsPerStage >= 0, "stage.kills_per_stage"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("config: %w: %s out of range", ErrInvalidConfig, chk.name)
		}
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
