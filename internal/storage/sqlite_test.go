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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, run := range []struct{ score, level int }{
		{100, 3}, {50, 1}, {200, 5},
	} {
		if _, err := store.SaveScore("labyrinth", run.score, run.level); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("labyrinth", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted by score descending, with the level preserved.
	if scores[0].Score != 200 || scores[0].Level != 5 {
		t.Errorf("Top entry = score %d level %d, want 200/5", scores[0].Score, scores[0].Level)
	}
	if scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("labyrinth", (i+1)*100, i+1)
	}

	scores, err := store.TopScores("labyrinth", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScoreAndBestLevel(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("labyrinth")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("labyrinth", 100, 2)
	store.SaveScore("labyrinth", 300, 4)
	store.SaveScore("labyrinth", 200, 7)

	high, err = store.HighScore("labyrinth")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	// Best level is independent of best score.
	level, err := store.BestLevel("labyrinth")
	if err != nil {
		t.Fatalf("BestLevel() failed: %v", err)
	}
	if level != 7 {
		t.Errorf("Expected best level 7, got %d", level)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("labyrinth", 100, 1)
	store.SaveScore("labyrinth", 200, 2)
	store.SaveScore("other", 300, 3)

	if err := store.ClearScores("labyrinth"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	labScores, _ := store.TopScores("labyrinth", 10)
	if len(labScores) != 0 {
		t.Errorf("Expected 0 labyrinth scores after clear, got %d", len(labScores))
	}
	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Error("Other game's scores should not be affected by the clear")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("labyrinth", i*10, i/4+1)
	}

	scores, err := store.AllScores("labyrinth")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("labyrinth", 100, 3)
	store.SaveScore("labyrinth", 300, 8)

	stats, err := store.GetGameStats("labyrinth")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 || stats.BestLevel != 8 {
		t.Errorf("HighScore/BestLevel = %d/%d, want 300/8", stats.HighScore, stats.BestLevel)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
}

func TestStoreNestedPath(t *testing.T) {
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
