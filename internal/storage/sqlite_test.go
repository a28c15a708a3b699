package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		outcome string
		score   int
		level   string
	}{
		{"lose", 100, "meadow"},
		{"win", 300, "summit"},
		{"lose", 50, "caves"},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r.outcome, r.score, r.level, 90*time.Second); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}
	if top[0].Score != 300 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("Runs not sorted by score: %+v", top)
	}
	if top[0].Outcome != "win" || top[0].Level != "summit" || top[0].Duration != 90 {
		t.Errorf("Top run fields wrong: %+v", top[0])
	}
	if top[0].RunID == "" {
		t.Error("RunID should be generated")
	}

	recent, err := store.RecentRuns(1)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 1 || recent[0].Level != "caves" {
		t.Errorf("RecentRuns(1) = %+v, want the caves run", recent)
	}
}

func TestStoreRejectsEmptyOutcome(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun("", 10, "meadow", 0); err == nil {
		t.Error("SaveRun without outcome should fail")
	}
}

func TestStoreRunByID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun("win", 42, "summit", time.Minute)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil || run.Score != 42 || run.Duration != 60 {
		t.Errorf("RunByID() = %+v", run)
	}

	missing, err := store.RunByID("nope")
	if err != nil || missing != nil {
		t.Errorf("RunByID(nope) = %+v, %v; want nil, nil", missing, err)
	}
}

func TestStoreBestScoreAndStats(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best score of 0 with no runs, got %d", best)
	}

	store.SaveRun("lose", 100, "meadow", 0)
	store.SaveRun("win", 300, "summit", 0)
	store.SaveRun("forced", 200, "caves", 0)

	best, err = store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("Expected best score of 300, got %d", best)
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.Wins != 1 || stats.Losses != 1 {
		t.Errorf("Stats = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %g, want 200", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("lose", 10, "meadow", 0)
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(top))
	}
}
