package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. The empty string means
// "no preset" and is accepted.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyZombiesPreset modifies the config based on a difficulty preset.
// Normal and the empty preset leave the config as loaded.
func ApplyZombiesPreset(cfg *ZombiesConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.MaxHP = 150
		cfg.Zombie.BaseSpeed *= 0.8
		cfg.Spawn.MinInterval = 0.8
	case DifficultyHard:
		cfg.Zombie.ContactDamage = 20
		cfg.Zombie.BaseSpeed *= 1.25
		cfg.Spawn.MinInterval = 0.35
	case DifficultyFixed:
		cfg.Stage.KillsPerStage = 0
	}
}
