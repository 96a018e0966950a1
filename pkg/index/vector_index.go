package index

import (
	"math"
	"sort"

	"doc-qa-be/pkg/store"
)

// Result pairs a retrieved passage with its similarity score.
type Result struct {
	Passage store.Passage
	Score   float64
}

// VectorIndex is an exact brute-force cosine similarity index over the
// passages of one session. It is immutable once built, so concurrent
// searches need no locking.
type VectorIndex struct {
	passages []store.Passage
}

func New(passages []store.Passage) *VectorIndex {
	return &VectorIndex{passages: passages}
}

func (ix *VectorIndex) Len() int { return len(ix.passages) }

// Search returns up to k passages ranked by descending cosine similarity to
// the query vector. Ties keep original passage order, so repeated searches
// are deterministic. k <= 0 yields an empty result; k larger than the index
// yields every passage ranked.
func (ix *VectorIndex) Search(query []float32, k int) []Result {
	if k <= 0 || len(ix.passages) == 0 {
		return nil
	}

	results := make([]Result, len(ix.passages))
	for i, p := range ix.passages {
		results[i] = Result{Passage: p, Score: cosine(query, p.Vector)}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if k < len(results) {
		results = results[:k]
	}
	return results
}

func cosine(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
	}
	for _, v := range a {
		normA += float64(v) * float64(v)
	}
	for _, v := range b {
		normB += float64(v) * float64(v)
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
