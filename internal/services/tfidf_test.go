package services

import (
	"math"
	"testing"
)

func TestVectorizeTFIDF_RowsAreUnitLength(t *testing.T) {
	docs := []string{
		"python, sql",
		"python, sql, excel",
		"python, sql, docker",
	}

	vectors := vectorizeTFIDF(docs)
	if len(vectors) != len(docs) {
		t.Fatalf("got %d vectors for %d documents", len(vectors), len(docs))
	}

	for i, vec := range vectors {
		var sum float64
		for _, v := range vec {
			sum += v * v
		}
		if math.Abs(math.Sqrt(sum)-1) > 1e-9 {
			t.Errorf("vector %d has norm %v, want 1", i, math.Sqrt(sum))
		}
	}
}

func TestVectorizeTFIDF_RarerTermsWeighMore(t *testing.T) {
	docs := []string{
		"python excel",
		"python docker",
		"python cloud",
	}

	vectors := vectorizeTFIDF(docs)

	// "python" appears in every document, "excel" in one; within the
	// first vector the rare term must carry more weight. Both terms
	// occur once, so the weights differ only through IDF.
	var weights []float64
	for _, v := range vectors[0] {
		if v != 0 {
			weights = append(weights, v)
		}
	}
	if len(weights) != 2 {
		t.Fatalf("expected 2 nonzero weights in first vector, got %v", weights)
	}
	if weights[0] == weights[1] {
		t.Errorf("rare and common terms weigh the same: %v", weights)
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"zero vector guarded", []float64{0, 0}, []float64{1, 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("cosineSimilarity(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestVectorizeTFIDF_EmptyDocumentScoresZero(t *testing.T) {
	docs := []string{"", "python sql"}
	vectors := vectorizeTFIDF(docs)

	if got := cosineSimilarity(vectors[0], vectors[1]); got != 0 {
		t.Errorf("similarity against empty document = %v, want 0", got)
	}
}
