package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(RunRecord{GameID: "zombies", Kills: 12, Stage: 1}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	best, err := store.BestKills("zombies")
	if err != nil {
		t.Fatalf("BestKills() failed: %v", err)
	}
	if best != 12 {
		t.Errorf("Expected best kills 12 after reopen, got %d", best)
	}
}

func TestStoreBestKills(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestKills("zombies")
	if err != nil {
		t.Fatalf("BestKills() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty history, got %d", best)
	}

	for _, kills := range []int{10, 30, 20} {
		store.SaveRun(RunRecord{GameID: "zombies", Kills: kills, Stage: 1})
	}
	store.SaveRun(RunRecord{GameID: "other", Kills: 99, Stage: 1})

	best, err = store.BestKills("zombies")
	if err != nil {
		t.Fatalf("BestKills() failed: %v", err)
	}
	if best != 30 {
		t.Errorf("Expected best kills 30, got %d", best)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{GameID: "zombies", Kills: 10, Stage: 1})
	store.SaveRun(RunRecord{GameID: "zombies", Kills: 20, Stage: 2})
	store.SaveRun(RunRecord{GameID: "other", Kills: 30, Stage: 2})

	n, err := store.ClearRuns("zombies")
	if err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("ClearRuns() removed %d runs, want 2", n)
	}

	runs, _ := store.RecentRuns("zombies", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}

	other, _ := store.RecentRuns("other", 10)
	if len(other) != 1 {
		t.Errorf("Other game's runs should not be affected")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{GameID: "zombies", Kills: 10, Stage: 1, Survived: 40})
	store.SaveRun(RunRecord{GameID: "zombies", Kills: 30, Stage: 2, Survived: 95.5})

	stats, err := store.Stats("zombies")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.BestKills != 30 || stats.BestStage != 2 || stats.TotalKills != 40 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.AvgKills != 20 {
		t.Errorf("AvgKills = %v, want 20", stats.AvgKills)
	}
	if stats.LongestSurvived != 95.5 {
		t.Errorf("LongestSurvived = %v, want 95.5", stats.LongestSurvived)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.Stats("nothing")
	if err != nil {
		t.Fatalf("Stats() on empty history failed: %v", err)
	}
	if empty.Runs != 0 || empty.BestKills != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty history: %+v", empty)
	}
}

func TestStoreSaveRunAssignsID(t *testing.T) {
	store := openTestStore(t)

	saved, err := store.SaveRun(RunRecord{
		GameID:   "zombies",
		Kills:    42,
		Stage:    3,
		Survived: 95.5,
		Preset:   "hard",
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if saved.ID == 0 {
		t.Error("expected row ID to be set")
	}
	if _, err := uuid.Parse(saved.RunID); err != nil {
		t.Errorf("RunID %q is not a uuid: %v", saved.RunID, err)
	}

	got, err := store.RunByID(saved.RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil")
	}
	if got.Kills != 42 || got.Stage != 3 || got.Survived != 95.5 || got.Preset != "hard" {
		t.Errorf("unexpected run: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreSaveRunRejectsBadID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(RunRecord{RunID: "not-a-uuid", GameID: "zombies"}); err == nil {
		t.Error("expected error for malformed run id")
	}

	id := uuid.NewString()
	if _, err := store.SaveRun(RunRecord{RunID: id, GameID: "zombies"}); err != nil {
		t.Fatalf("SaveRun() with explicit id failed: %v", err)
	}
	if _, err := store.SaveRun(RunRecord{RunID: id, GameID: "zombies"}); err == nil {
		t.Error("expected error for duplicate run id")
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RunByID(uuid.NewString())
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for unknown run, got %+v", got)
	}
}

func TestStoreRecentAndBestRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{GameID: "zombies", Kills: 5, Stage: 1, Survived: 30},
		{GameID: "zombies", Kills: 20, Stage: 2, Survived: 80},
		{GameID: "zombies", Kills: 20, Stage: 2, Survived: 95},
		{GameID: "zombies", Kills: 1, Stage: 1, Survived: 10},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns("zombies", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Kills != 1 || recent[1].Survived != 95 {
		t.Errorf("unexpected recent runs: %+v", recent)
	}

	best, err := store.BestRuns("zombies", 3)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(best) != 3 {
		t.Fatalf("Expected 3 best runs, got %d", len(best))
	}
	if best[0].Survived != 95 || best[1].Survived != 80 || best[2].Kills != 5 {
		t.Errorf("unexpected best runs order: %+v", best)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
