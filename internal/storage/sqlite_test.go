package storage

import (
	"os"
	"path/filepath"
	"testing"
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

func mustSave(t *testing.T, store *Store, sc Score) string {
	t.Helper()
	id, err := store.SaveScore(sc)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	return id
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Score{GameID: "brickbreaker", Player: "ann", Score: 100, Level: 2})
	mustSave(t, store, Score{GameID: "brickbreaker", Player: "bob", Score: 50, Level: 1})
	mustSave(t, store, Score{GameID: "brickbreaker", Player: "ann", Score: 200, Level: 3})
	mustSave(t, store, Score{GameID: "other", Score: 500})

	scores, err := store.TopScores("brickbreaker", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}
	if scores[0].Player != "ann" || scores[0].Level != 3 {
		t.Errorf("top entry = %+v, want ann at level 3", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreRunIDs(t *testing.T) {
	store := openTestStore(t)

	a := mustSave(t, store, Score{GameID: "brickbreaker", Score: 10})
	b := mustSave(t, store, Score{GameID: "brickbreaker", Score: 10})
	if a == "" || a == b {
		t.Errorf("generated run IDs = %q, %q; want distinct and non-empty", a, b)
	}

	fixed := mustSave(t, store, Score{GameID: "brickbreaker", RunID: "run-1", Score: 5})
	if fixed != "run-1" {
		t.Errorf("explicit run ID = %q, want run-1", fixed)
	}
	if _, err := store.SaveScore(Score{GameID: "brickbreaker", RunID: "run-1", Score: 5}); err == nil {
		t.Error("duplicate run ID should be rejected")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		mustSave(t, store, Score{GameID: "test", Score: (i + 1) * 100})
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, err := store.TopScores("test", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("default limit should return all 5, got %d", len(all))
	}
}

func TestStoreTiesKeepInsertOrder(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Score{GameID: "g", Player: "first", Score: 40})
	mustSave(t, store, Score{GameID: "g", Player: "second", Score: 40})

	scores, err := store.TopScores("g", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Player != "first" {
		t.Errorf("tie winner = %q, want first", scores[0].Player)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("brickbreaker")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	for _, s := range []int{100, 300, 200} {
		mustSave(t, store, Score{GameID: "brickbreaker", Score: s})
	}

	high, err = store.HighScore("brickbreaker")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("brickbreaker")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	mustSave(t, store, Score{GameID: "brickbreaker", Score: 100, Level: 1})
	mustSave(t, store, Score{GameID: "brickbreaker", Score: 300, Level: 4})

	stats, err := store.Stats("brickbreaker")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.BestLevel != 4 || stats.AvgScore != 200 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Score{GameID: "brickbreaker", Score: 100})
	mustSave(t, store, Score{GameID: "brickbreaker", Score: 200})
	mustSave(t, store, Score{GameID: "other", Score: 300})

	if err := store.ClearScores("brickbreaker"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("brickbreaker", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("Other games should not be affected by clearing")
	}
}
