package search

import (
	"math"
	"testing"

	"searchlens-api/core/domain"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical vectors", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"opposite vectors", []float32{1, 0}, []float32{-1, 0}, -1},
		{"orthogonal vectors", []float32{1, 0}, []float32{0, 1}, 0},
		{"mismatched lengths", []float32{1, 2}, []float32{1, 2, 3}, 0},
		{"empty vectors", nil, nil, 0},
		{"zero magnitude", []float32{0, 0}, []float32{1, 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("cosineSimilarity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDeduplicate_DropsLaterDuplicate(t *testing.T) {
	results := []domain.EnrichedResult{
		{URL: "a", Embedding: []float32{1, 0}},
		{URL: "b", Embedding: []float32{0.999, 0.001}},
		{URL: "c", Embedding: []float32{0, 1}},
	}

	got := deduplicate(results, DedupThreshold)

	if len(got) != 2 {
		t.Fatalf("got %d survivors, want 2", len(got))
	}
	if got[0].URL != "a" || got[1].URL != "c" {
		t.Errorf("survivors = %s, %s; want a, c", got[0].URL, got[1].URL)
	}
}

func TestDeduplicate_KeepsNilEmbeddings(t *testing.T) {
	results := []domain.EnrichedResult{
		{URL: "a", Embedding: []float32{1, 0}},
		{URL: "b"},
		{URL: "c"},
		{URL: "d", Embedding: []float32{1, 0}},
	}

	got := deduplicate(results, DedupThreshold)

	if len(got) != 3 {
		t.Fatalf("got %d survivors, want 3", len(got))
	}
	if got[0].URL != "a" || got[1].URL != "b" || got[2].URL != "c" {
		t.Error("nil-embedding results must always survive in rank order")
	}
}

func TestDeduplicate_BelowThresholdKeepsBoth(t *testing.T) {
	results := []domain.EnrichedResult{
		{URL: "a", Embedding: []float32{1, 0}},
		{URL: "b", Embedding: []float32{0.7, 0.7}},
	}

	got := deduplicate(results, DedupThreshold)

	if len(got) != 2 {
		t.Errorf("got %d survivors, want 2", len(got))
	}
}

func TestDeduplicate_Idempotent(t *testing.T) {
	results := []domain.EnrichedResult{
		{URL: "a", Embedding: []float32{1, 0, 0}},
		{URL: "b", Embedding: []float32{1, 0.001, 0}},
		{URL: "c", Embedding: []float32{0, 1, 0}},
		{URL: "d"},
		{URL: "e", Embedding: []float32{0, 0, 1}},
	}

	once := deduplicate(results, DedupThreshold)
	twice := deduplicate(once, DedupThreshold)

	if len(once) != len(twice) {
		t.Fatalf("second pass changed survivor count: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].URL != twice[i].URL {
			t.Errorf("survivor %d changed between passes: %s vs %s", i, once[i].URL, twice[i].URL)
		}
	}
}

func TestDeduplicate_EmptyInput(t *testing.T) {
	got := deduplicate(nil, DedupThreshold)
	if len(got) != 0 {
		t.Errorf("got %d survivors from empty input", len(got))
	}
}
