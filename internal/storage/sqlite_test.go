package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, d := range []float64{100, 50, 200} {
		if _, err := store.SaveRun(Run{SceneID: "skyline", Direction: "left", Distance: d, Recycles: 3}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun(Run{SceneID: "river", Direction: "up", Distance: 500}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns("skyline", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	want := []float64{200, 100, 50}
	for i, r := range runs {
		if r.Distance != want[i] {
			t.Errorf("runs[%d].Distance = %f, expected %f", i, r.Distance, want[i])
		}
		if r.Direction != "left" || r.Recycles != 3 {
			t.Errorf("runs[%d] = %+v", i, r)
		}
	}

	river, err := store.TopRuns("river", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(river) != 1 {
		t.Errorf("Expected 1 river run, got %d", len(river))
	}
}

func TestStoreRunID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{SceneID: "skyline", Direction: "left", Duration: 1500 * time.Millisecond})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("generated run id %q is not a uuid: %v", id, err)
	}

	fixed := uuid.NewString()
	got, err := store.SaveRun(Run{RunID: fixed, SceneID: "skyline", Direction: "left"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if got != fixed {
		t.Errorf("SaveRun() = %q, expected %q", got, fixed)
	}

	if _, err := store.SaveRun(Run{RunID: fixed, SceneID: "skyline", Direction: "left"}); err == nil {
		t.Error("duplicate run id should fail")
	}

	runs, err := store.TopRuns("skyline", 10)
	if err != nil {
		t.Fatal(err)
	}
	var found bool
	for _, r := range runs {
		if r.RunID == id {
			found = true
			if r.Duration != 1500*time.Millisecond {
				t.Errorf("Duration = %v, expected 1.5s", r.Duration)
			}
		}
	}
	if !found {
		t.Errorf("run %s not returned", id)
	}
}

func TestStoreSaveRunRequiresScene(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(Run{Direction: "left"}); err == nil {
		t.Error("SaveRun() without scene id should fail")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 10; i++ {
		store.SaveRun(Run{SceneID: "starfield", Direction: "down", Distance: float64(i * 10)})
	}

	runs, err := store.TopRuns("starfield", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Distance != 100 || runs[1].Distance != 90 || runs[2].Distance != 80 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreBestDistanceAndCount(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestDistance("highway")
	if err != nil {
		t.Fatalf("BestDistance() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty scene, got %f", best)
	}

	store.SaveRun(Run{SceneID: "highway", Direction: "right", Distance: 120.5})
	store.SaveRun(Run{SceneID: "highway", Direction: "right", Distance: 300.25})

	best, err = store.BestDistance("highway")
	if err != nil {
		t.Fatalf("BestDistance() failed: %v", err)
	}
	if best != 300.25 {
		t.Errorf("Expected best distance 300.25, got %f", best)
	}

	n, err := store.RunCount("highway")
	if err != nil {
		t.Fatalf("RunCount() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("RunCount() = %d, expected 2", n)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{SceneID: "skyline", Direction: "left", Distance: 10})
	store.SaveRun(Run{SceneID: "river", Direction: "up", Distance: 20})

	if err := store.ClearRuns("skyline"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if n, _ := store.RunCount("skyline"); n != 0 {
		t.Errorf("Expected 0 skyline runs after clear, got %d", n)
	}
	if n, _ := store.RunCount("river"); n != 1 {
		t.Error("River runs should not be affected by clearing skyline")
	}
}

func TestStoreAllSceneStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{SceneID: "skyline", Direction: "left", Distance: 10, Recycles: 1})
	store.SaveRun(Run{SceneID: "skyline", Direction: "left", Distance: 30, Recycles: 4})
	store.SaveRun(Run{SceneID: "river", Direction: "up", Distance: 5})

	stats, err := store.AllSceneStats()
	if err != nil {
		t.Fatalf("AllSceneStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 scenes, got %d", len(stats))
	}

	sky := stats["skyline"]
	if sky.Runs != 2 || sky.BestDistance != 30 || sky.TotalDistance != 40 || sky.TotalRecycles != 5 {
		t.Errorf("skyline stats = %+v", sky)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	nestedPath := filepath.Join(tmpDir, "nested", "dir", "test.db")

	store, err := Open(nestedPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(nestedPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
