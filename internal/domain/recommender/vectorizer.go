package recommender

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// tokenize lowercases text and keeps word runs of at least two runes.
// Punctuation splits words, so "c++" yields nothing.
func tokenize(text string, stop map[string]struct{}) []string {
	lowered := strings.ToLower(text)
	words := strings.FieldsFunc(lowered, func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
	})
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if len([]rune(w)) < 2 {
			continue
		}
		if _, skip := stop[w]; skip {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// tfidf holds the fitted vocabulary and one unit-length row per document.
type tfidf struct {
	vocabulary []string
	idf        []float64
	rows       [][]float64
}

// fitTransform builds a smoothed TF-IDF space over docs.
// idf(t) = ln((1+n)/(1+df(t))) + 1, rows are L2-normalized.
func fitTransform(docs []string, stop map[string]struct{}) tfidf {
	tokenized := make([][]string, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		tokenized[i] = tokenize(doc, stop)
		seen := make(map[string]struct{}, len(tokenized[i]))
		for _, tok := range tokenized[i] {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	vocabulary := make([]string, 0, len(df))
	for term := range df {
		vocabulary = append(vocabulary, term)
	}
	sort.Strings(vocabulary)
	index := make(map[string]int, len(vocabulary))
	for i, term := range vocabulary {
		index[term] = i
	}

	n := float64(len(docs))
	idf := make([]float64, len(vocabulary))
	for i, term := range vocabulary {
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	rows := make([][]float64, len(docs))
	for i, tokens := range tokenized {
		row := make([]float64, len(vocabulary))
		for _, tok := range tokens {
			row[index[tok]]++
		}
		var norm float64
		for j := range row {
			row[j] *= idf[j]
			norm += row[j] * row[j]
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for j := range row {
				row[j] /= norm
			}
		}
		rows[i] = row
	}
	return tfidf{vocabulary: vocabulary, idf: idf, rows: rows}
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
