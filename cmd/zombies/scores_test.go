package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/zombie-arcade/internal/config"
	"github.com/vovakirdan/zombie-arcade/internal/storage"
)

func TestPrintRuns(t *testing.T) {
	var buf bytes.Buffer
	printRuns(&buf, "Best Runs - Zombie Shooter", []storage.RunRecord{
		{Kills: 41, Stage: 3, Survived: 125, Preset: "hard"},
	})

	out := buf.String()
	assert.Contains(t, out, "Best Runs - Zombie Shooter")
	assert.Contains(t, out, "Survived")
	line := strings.Fields(strings.Split(out, "\n")[4])
	assert.Equal(t, []string{"#1", "41", "3", "2:05", "hard"}, line[:5])
}

// seedRuns points --db at a fresh database holding runs.
func seedRuns(t *testing.T, runs ...storage.RunRecord) []storage.RunRecord {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scores.db")
	store, err := storage.Open(path)
	require.NoError(t, err)
	defer store.Close()

	saved := make([]storage.RunRecord, 0, len(runs))
	for _, r := range runs {
		rec, err := store.SaveRun(r)
		require.NoError(t, err)
		saved = append(saved, rec)
	}

	prev := flagDBPath
	flagDBPath = path
	t.Cleanup(func() {
		flagDBPath = prev
		flagRunID = ""
		flagClear = false
		scoresCmd.SetOut(nil)
	})
	return saved
}

func TestScoresShowsSingleRun(t *testing.T) {
	runs := seedRuns(t,
		storage.RunRecord{GameID: gameID, Kills: 27, Stage: 2, Survived: 64, Preset: "easy"},
		storage.RunRecord{GameID: gameID, Kills: 3, Stage: 1, Survived: 11},
	)
	var buf bytes.Buffer
	scoresCmd.SetOut(&buf)
	flagRunID = runs[0].RunID

	require.NoError(t, runScores(scoresCmd, nil))

	out := buf.String()
	assert.Contains(t, out, runs[0].RunID)
	assert.Contains(t, out, "Kills     27")
	assert.Contains(t, out, "Survived  1:04")
	assert.Contains(t, out, "Preset    easy")
}

func TestScoresUnknownRun(t *testing.T) {
	seedRuns(t)
	flagRunID = "0b6f3c1e-8a4d-4f52-9d39-2f1d7c4e5a10"

	err := runScores(scoresCmd, nil)
	assert.ErrorContains(t, err, "no run with id")
}

func TestScoresClear(t *testing.T) {
	seedRuns(t,
		storage.RunRecord{GameID: gameID, Kills: 5, Stage: 1},
		storage.RunRecord{GameID: gameID, Kills: 9, Stage: 1},
	)
	var buf bytes.Buffer
	scoresCmd.SetOut(&buf)
	flagClear = true

	require.NoError(t, runScores(scoresCmd, nil))
	assert.Contains(t, buf.String(), "Cleared 2 runs.")

	buf.Reset()
	flagClear = false
	require.NoError(t, runScores(scoresCmd, nil))
	assert.Contains(t, buf.String(), "No runs recorded yet.")
}

func TestPrintRunsEmpty(t *testing.T) {
	var buf bytes.Buffer
	printRuns(&buf, "Recent Runs", nil)
	assert.Contains(t, buf.String(), "No runs recorded yet.")
}

func TestConfigCommandAppliesPreset(t *testing.T) {
	t.Setenv("HOME", t.TempDir()) // keep user configs out of the search order
	var buf bytes.Buffer
	configCmd.SetOut(&buf)
	t.Cleanup(func() {
		flagDumpDifficulty = ""
		configCmd.SetOut(nil)
	})
	flagDumpDifficulty = "hard"

	require.NoError(t, runConfig(configCmd, nil))

	var cfg config.ZombiesConfig
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &cfg))
	assert.Equal(t, 20, cfg.Zombie.ContactDamage)
	assert.Equal(t, 20, cfg.Stage.KillsPerStage)
}

func TestConfigCommandRejectsUnknownPreset(t *testing.T) {
	t.Cleanup(func() { flagDumpDifficulty = "" })
	flagDumpDifficulty = "nightmare"

	err := runConfig(configCmd, nil)
	assert.Error(t, err)
}
