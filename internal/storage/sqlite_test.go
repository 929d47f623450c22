package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveRun(Run{Mode: "skyjump", Distance: 420}); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	best, err := store.BestDistance("skyjump")
	if err != nil {
		t.Fatal(err)
	}
	if best != 420 {
		t.Errorf("best after reopen = %v, expected 420", best)
	}
}

func TestSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Mode: "skyjump", Distance: 1200.5, Stones: 2, Ticks: 900},
		{Mode: "skyjump", Distance: 3400, Stones: 5, HasLeg: true, Won: true, Ticks: 4000},
		{Mode: "skyjump", Distance: 640, Stones: 0, Ticks: 300},
		{Mode: "skyjump", Distance: 1200.5, Stones: 1, Ticks: 950},
		{Mode: "skyjump_endless", Distance: 9000, Stones: 3, HasLeg: true, Ticks: 8000},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("skyjump", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 4 {
		t.Fatalf("Expected 4 runs, got %d", len(top))
	}

	expected := []float64{3400, 1200.5, 1200.5, 640}
	for i, r := range top {
		if r.Distance != expected[i] {
			t.Errorf("run %d distance = %v, expected %v", i, r.Distance, expected[i])
		}
	}
	if !top[0].Won || !top[0].HasLeg || top[0].Stones != 5 || top[0].Ticks != 4000 {
		t.Errorf("winning run fields lost: %+v", top[0])
	}
	if top[1].Stones != 2 || top[2].Stones != 1 {
		t.Errorf("equal distances not in insertion order: %+v, %+v", top[1], top[2])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("created_at not parsed")
	}

	limited, err := store.TopRuns("skyjump", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 2 {
		t.Errorf("limit 2 returned %d runs", len(limited))
	}

	endless, err := store.TopRuns("skyjump_endless", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(endless) != 1 || endless[0].Distance != 9000 {
		t.Errorf("endless runs = %+v", endless)
	}
}

func TestBestDistance(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestDistance("skyjump")
	if err != nil {
		t.Fatal(err)
	}
	if best != 0 {
		t.Errorf("Expected 0 with no runs, got %v", best)
	}

	for _, d := range []float64{100, 2500.25, 800} {
		if _, err := store.SaveRun(Run{Mode: "skyjump", Distance: d}); err != nil {
			t.Fatal(err)
		}
	}
	best, err = store.BestDistance("skyjump")
	if err != nil {
		t.Fatal(err)
	}
	if best != 2500.25 {
		t.Errorf("Expected best 2500.25, got %v", best)
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("skyjump")
	if err != nil {
		t.Fatal(err)
	}
	if empty.Runs != 0 || empty.Best != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	for _, r := range []Run{
		{Mode: "skyjump", Distance: 1000, Stones: 1},
		{Mode: "skyjump", Distance: 3200, Stones: 5, HasLeg: true, Won: true},
		{Mode: "skyjump", Distance: 500, Stones: 0},
		{Mode: "skyjump_endless", Distance: 7000, Stones: 4},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatal(err)
		}
	}

	st, err := store.Stats("skyjump")
	if err != nil {
		t.Fatal(err)
	}
	if st.Runs != 3 {
		t.Errorf("runs = %d, expected 3", st.Runs)
	}
	if st.Wins != 1 {
		t.Errorf("wins = %d, expected 1", st.Wins)
	}
	if st.Best != 3200 {
		t.Errorf("best = %v, expected 3200", st.Best)
	}
	if st.AvgDistance != 1566.6666666666667 && (st.AvgDistance < 1566.66 || st.AvgDistance > 1566.67) {
		t.Errorf("avg distance = %v, expected ~1566.67", st.AvgDistance)
	}
	if st.AvgStones != 2 {
		t.Errorf("avg stones = %v, expected 2", st.AvgStones)
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 || all[0].Mode != "skyjump" || all[1].Mode != "skyjump_endless" {
		t.Fatalf("all stats = %+v", all)
	}
	if all[1].Best != 7000 || all[1].Wins != 0 {
		t.Errorf("endless stats = %+v", all[1])
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	for _, mode := range []string{"skyjump", "skyjump", "skyjump_endless"} {
		if _, err := store.SaveRun(Run{Mode: mode, Distance: 100}); err != nil {
			t.Fatal(err)
		}
	}

	n, err := store.ClearRuns("skyjump")
	if err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("cleared %d runs, expected 2", n)
	}

	runs, err := store.TopRuns("skyjump", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}

	n, err = store.ClearRuns("")
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("cleared %d runs, expected 1", n)
	}
}
