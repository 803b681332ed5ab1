package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	results := []Result{
		{Score: 100, Turns: 12, MaxTile: 32, Seed: 42, Outcome: "quit"},
		{Score: 50, Turns: 8, MaxTile: 16, Seed: 7, Outcome: "lost"},
		{Score: 200, Turns: 30, MaxTile: 64, Seed: 42, Outcome: "lost"},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	// Retrieve top results
	top, err := store.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(top) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(top))
	}

	// Should be sorted descending
	if top[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", top[0].Score)
	}
	if top[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", top[1].Score)
	}
	if top[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", top[2].Score)
	}

	// The full record round-trips
	if top[0].Turns != 30 || top[0].MaxTile != 64 || top[0].Seed != 42 || top[0].Outcome != "lost" {
		t.Errorf("Top result lost fields: %+v", top[0])
	}
}

func TestStoreTopResultsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 results
	for i := 0; i < 5; i++ {
		store.SaveResult(Result{Score: (i + 1) * 100, Outcome: "quit"})
	}

	// Request only top 3
	top, err := store.TopResults(3)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(top) != 3 {
		t.Errorf("Expected 3 results with limit, got %d", len(top))
	}

	// Should be 500, 400, 300 (top 3)
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Results not in expected order: %v", top)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No results yet
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	// Add results
	store.SaveResult(Result{Score: 100, Outcome: "quit"})
	store.SaveResult(Result{Score: 300, Outcome: "lost"})
	store.SaveResult(Result{Score: 200, Outcome: "quit"})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearResults(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveResult(Result{Score: 100, Outcome: "quit"})
	store.SaveResult(Result{Score: 200, Outcome: "lost"})

	if err := store.ClearResults(); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	top, _ := store.TopResults(10)
	if len(top) != 0 {
		t.Errorf("Expected 0 results after clear, got %d", len(top))
	}
}

func TestStoreGetStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Empty store has zero stats
	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveResult(Result{Score: 100, MaxTile: 32, Outcome: "quit"})
	store.SaveResult(Result{Score: 300, MaxTile: 128, Outcome: "lost"})

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}

	if stats.GamesCount != 2 {
		t.Errorf("Expected 2 games, got %d", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", stats.HighScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("Expected total score 400, got %d", stats.TotalScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average score 200, got %f", stats.AvgScore)
	}
	if stats.BestTile != 128 {
		t.Errorf("Expected best tile 128, got %d", stats.BestTile)
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

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
