package index

import (
	"testing"

	"doc-qa-be/pkg/store"
)

func passage(id string, position int, vector []float32) store.Passage {
	return store.Passage{
		Id:         id,
		SourceFile: "doc.pdf",
		Position:   position,
		Text:       id,
		Vector:     vector,
	}
}

func TestSearchRanking(t *testing.T) {
	ix := New([]store.Passage{
		passage("far", 0, []float32{0, 1}),
		passage("near", 1, []float32{1, 0.1}),
		passage("exact", 2, []float32{1, 0}),
	})

	results := ix.Search([]float32{1, 0}, 3)
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	wantOrder := []string{"exact", "near", "far"}
	for i, want := range wantOrder {
		if results[i].Passage.Id != want {
			t.Errorf("result %d = %s, want %s", i, results[i].Passage.Id, want)
		}
	}

	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("scores not non-increasing at %d: %f > %f", i, results[i].Score, results[i-1].Score)
		}
	}
}

func TestSearchTieBreakIsStable(t *testing.T) {
	// Identical vectors score identically; earlier position must win.
	ix := New([]store.Passage{
		passage("first", 0, []float32{1, 0}),
		passage("second", 1, []float32{1, 0}),
		passage("third", 2, []float32{1, 0}),
	})

	for run := 0; run < 5; run++ {
		results := ix.Search([]float32{1, 0}, 3)
		for i, want := range []string{"first", "second", "third"} {
			if results[i].Passage.Id != want {
				t.Fatalf("run %d: result %d = %s, want %s", run, i, results[i].Passage.Id, want)
			}
		}
	}
}

func TestSearchKBounds(t *testing.T) {
	ix := New([]store.Passage{
		passage("a", 0, []float32{1, 0}),
		passage("b", 1, []float32{0, 1}),
	})

	if got := ix.Search([]float32{1, 0}, 0); got != nil {
		t.Errorf("k=0: got %d results, want none", len(got))
	}
	if got := ix.Search([]float32{1, 0}, -3); got != nil {
		t.Errorf("k<0: got %d results, want none", len(got))
	}

	// k beyond the index size returns every passage exactly once.
	results := ix.Search([]float32{1, 0}, 10)
	if len(results) != 2 {
		t.Fatalf("k>n: got %d results, want 2", len(results))
	}
	seen := map[string]int{}
	for _, r := range results {
		seen[r.Passage.Id]++
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("passage %s returned %d times", id, count)
		}
	}
}

func TestSearchEmptyIndex(t *testing.T) {
	ix := New(nil)
	if got := ix.Search([]float32{1, 0}, 5); got != nil {
		t.Errorf("empty index: got %d results, want none", len(got))
	}
}

func TestCosineZeroVector(t *testing.T) {
	ix := New([]store.Passage{passage("zero", 0, []float32{0, 0})})
	results := ix.Search([]float32{1, 0}, 1)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Score != 0 {
		t.Errorf("zero vector score = %f, want 0", results[0].Score)
	}
}
