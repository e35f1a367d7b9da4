// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package recommend

import "math"

// SimilarityMatrix is a dense, symmetric N x N cosine similarity matrix.
type SimilarityMatrix [][]float64

// Row returns the similarities of document i against every document.
func (s SimilarityMatrix) Row(i int) []float64 {
	return s[i]
}

// CosineMatrix computes all-pairs cosine similarity over m.
//
// Each pair is computed once and written to both cells, so the result is
// exactly symmetric. A non-empty row has similarity 1 with itself; an empty
// row has similarity 0 with everything, itself included.
func CosineMatrix(m *CountMatrix) SimilarityMatrix {
	n := len(m.Rows)
	sq := make([]int, n)
	for i, row := range m.Rows {
		sq[i] = dot(row, row)
	}

	sim := make(SimilarityMatrix, n)
	for i := range sim {
		sim[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		if sq[i] == 0 {
			continue
		}
		sim[i][i] = 1.0
		for j := i + 1; j < n; j++ {
			if sq[j] == 0 {
				continue
			}
			score := cosine(dot(m.Rows[i], m.Rows[j]), sq[i], sq[j])
			sim[i][j] = score
			sim[j][i] = score
		}
	}
	return sim
}

// dot merges two rows sorted by term index.
func dot(a, b CountRow) int {
	var sum, i, j int
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Term == b[j].Term:
			sum += a[i].Count * b[j].Count
			i++
			j++
		case a[i].Term < b[j].Term:
			i++
		default:
			j++
		}
	}
	return sum
}

// cosine divides by the square root of the product of squared norms so
// identical rows score exactly 1.
func cosine(dotAB, sqA, sqB int) float64 {
	score := float64(dotAB) / math.Sqrt(float64(sqA)*float64(sqB))
	if score > 1 {
		return 1
	}
	return score
}

// CosineSimilarity returns the cosine similarity of two rows, or 0 when
// either row is empty.
func CosineSimilarity(a, b CountRow) float64 {
	sqA, sqB := dot(a, a), dot(b, b)
	if sqA == 0 || sqB == 0 {
		return 0
	}
	return cosine(dot(a, b), sqA, sqB)
}
