// ABOUTME: Embedding-based near-duplicate suppression for enriched results
// ABOUTME: Keeps the highest-ranked representative of each duplicate cluster

package search

import (
	"math"

	"searchlens-api/core/domain"
)

// DedupThreshold is the cosine similarity above which a later-ranked
// result is considered a duplicate of an earlier one.
const DedupThreshold = 0.95

// cosineSimilarity computes the cosine similarity of two vectors.
// Returns 0 for mismatched lengths or zero-magnitude vectors.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// deduplicate removes results whose embedding is near-identical to an
// earlier-ranked survivor. Processing follows rank order, so the later
// entry of a duplicate pair is always the one dropped. Results without an
// embedding are never dropped. Idempotent: running it over its own output
// yields the same set.
//
// O(n^2) pairwise comparisons, acceptable at the result-count scale
// (<=50) the system targets.
func deduplicate(results []domain.EnrichedResult, threshold float64) []domain.EnrichedResult {
	survivors := make([]domain.EnrichedResult, 0, len(results))
	var kept [][]float32

	for _, result := range results {
		if result.Embedding == nil {
			survivors = append(survivors, result)
			continue
		}

		duplicate := false
		for _, embedding := range kept {
			if cosineSimilarity(result.Embedding, embedding) >= threshold {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}

		survivors = append(survivors, result)
		kept = append(kept, result.Embedding)
	}

	return survivors
}
