// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package recommend

import (
	"sort"
	"strings"
)

// Vocabulary maps each corpus term to its column index. Terms are sorted,
// so the columns depend only on which terms the corpus contains.
type Vocabulary struct {
	Terms []string
	index map[string]int
}

// Index returns the column of term, or -1 if it is not in the vocabulary.
func (v *Vocabulary) Index(term string) int {
	if i, ok := v.index[term]; ok {
		return i
	}
	return -1
}

// Len returns the number of terms.
func (v *Vocabulary) Len() int {
	return len(v.Terms)
}

// TermCount is one non-zero cell of a count matrix row.
type TermCount struct {
	Term  int
	Count int
}

// CountRow is a sparse document row ordered by term index.
type CountRow []TermCount

// Empty reports whether the row has no terms.
func (r CountRow) Empty() bool {
	return len(r) == 0
}

// CountMatrix holds raw term counts, one row per document in corpus order.
type CountMatrix struct {
	Rows []CountRow
	Cols int
}

// At returns the count of term col in document row.
func (m *CountMatrix) At(row, col int) int {
	r := m.Rows[row]
	i := sort.Search(len(r), func(k int) bool { return r[k].Term >= col })
	if i < len(r) && r[i].Term == col {
		return r[i].Count
	}
	return 0
}

// Tokenize splits a soup on whitespace and drops English stop words.
func Tokenize(soup string) []string {
	fields := strings.Fields(soup)
	tokens := fields[:0]
	for _, f := range fields {
		if !IsStopWord(f) {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// Vectorize builds the vocabulary of soups and their raw term-count matrix.
// Row i of the matrix corresponds to soups[i].
func Vectorize(soups []string) (*Vocabulary, *CountMatrix) {
	docs := make([][]string, len(soups))
	seen := make(map[string]struct{})
	for i, soup := range soups {
		docs[i] = Tokenize(soup)
		for _, tok := range docs[i] {
			seen[tok] = struct{}{}
		}
	}

	terms := make([]string, 0, len(seen))
	for term := range seen {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	vocab := &Vocabulary{Terms: terms, index: make(map[string]int, len(terms))}
	for i, term := range terms {
		vocab.index[term] = i
	}

	matrix := &CountMatrix{Rows: make([]CountRow, len(docs)), Cols: len(terms)}
	for i, tokens := range docs {
		counts := make(map[int]int, len(tokens))
		for _, tok := range tokens {
			counts[vocab.index[tok]]++
		}
		row := make(CountRow, 0, len(counts))
		for term, n := range counts {
			row = append(row, TermCount{Term: term, Count: n})
		}
		sort.Slice(row, func(a, b int) bool { return row[a].Term < row[b].Term })
		matrix.Rows[i] = row
	}

	return vocab, matrix
}
