package services

import (
	"math"
	"strings"
)

// vectorizeTFIDF turns a document set into L2-normalized TF-IDF vectors.
// Weights use the smoothed inverse document frequency
// ln((1+n)/(1+df)) + 1 over raw term counts, so scores line up with the
// usual TF-IDF defaults. The vocabulary and IDF weights are derived
// fresh from exactly the documents passed in; nothing is cached between
// calls.
func vectorizeTFIDF(docs []string) [][]float64 {
	counts := make([]map[string]int, len(docs))
	df := make(map[string]int)

	for i, doc := range docs {
		c := make(map[string]int)
		for _, token := range skillTokenPattern.FindAllString(strings.ToLower(doc), -1) {
			c[token]++
		}
		counts[i] = c
		for term := range c {
			df[term]++
		}
	}

	index := make(map[string]int, len(df))
	for term := range df {
		index[term] = len(index)
	}

	n := float64(len(docs))
	idf := make([]float64, len(index))
	for term, j := range index {
		idf[j] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	vectors := make([][]float64, len(docs))
	for i, c := range counts {
		vec := make([]float64, len(index))
		for term, count := range c {
			j := index[term]
			vec[j] = float64(count) * idf[j]
		}
		normalizeL2(vec)
		vectors[i] = vec
	}

	return vectors
}

func normalizeL2(vec []float64) {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for j := range vec {
		vec[j] /= norm
	}
}

// cosineSimilarity over already-normalized vectors reduces to a dot
// product, but the norms are guarded anyway so an all-zero document
// scores 0 instead of NaN.
func cosineSimilarity(a, b []float64) float64 {
	var dot, normA, normB float64
	for j := range a {
		dot += a[j] * b[j]
		normA += a[j] * a[j]
		normB += b[j] * b[j]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
