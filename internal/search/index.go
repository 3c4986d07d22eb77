// Package search provides a simple, deterministic, concurrency-safe in-memory
// search index over feature titles and descriptions. It is intentionally
// small:
//
//   - No logging in the library (callers decide how/what to log)
//   - Unicode-aware tokenization with case folding (golang.org/x/text/cases)
//   - Immutable, read-only index after construction (safe for concurrent use)
//   - Deterministic scoring and sorting (stable order for ties)
//
// Scoring uses Jaccard similarity between the query token set and each
// feature's token set: score = |Q ∩ F| / |Q ∪ F|. The index is rebuilt from
// the current feature rows per query at this corpus size; nothing is cached
// across requests.
package search

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/tbourn/go-votes-backend/internal/domain"
)

// Result is a ranked feature with its similarity score.
type Result struct {
	Feature domain.FeatureWithVotes
	Score   float64
}

// Index is the minimal interface implemented by the feature index.
type Index interface {
	TopK(query string, k int) []Result
}

// folder performs Unicode case folding so "Straße" and "STRASSE" tokenize
// identically; strings.ToLower gets the long tail of non-ASCII wrong.
var folder = cases.Fold()

type doc struct {
	feature domain.FeatureWithVotes
	tokens  map[string]struct{}
}

type index struct {
	docs []doc
}

// NewIndex builds an Index from the given augmented feature rows. Each
// feature is tokenized over its title and description.
func NewIndex(features []domain.FeatureWithVotes) Index {
	docs := make([]doc, 0, len(features))
	for _, f := range features {
		docs = append(docs, doc{
			feature: f,
			tokens:  tokenize(f.Title + " " + f.Description),
		})
	}
	return &index{docs: docs}
}

// TopK returns up to k features ranked by descending Jaccard similarity to
// the query. Features with zero overlap are omitted. Ties keep the input
// order (which is the score-ranked listing order), so equally matching
// features still surface best-scored first.
func (i *index) TopK(query string, k int) []Result {
	if k <= 0 {
		return nil
	}
	q := tokenize(query)
	if len(q) == 0 {
		return nil
	}

	buf := make([]Result, 0, len(i.docs))
	for _, d := range i.docs {
		inter := overlap(q, d.tokens)
		if inter == 0 {
			continue
		}
		union := len(q) + len(d.tokens) - inter
		buf = append(buf, Result{
			Feature: d.feature,
			Score:   float64(inter) / float64(union),
		})
	}

	sort.SliceStable(buf, func(a, b int) bool {
		return buf[a].Score > buf[b].Score
	})
	if len(buf) > k {
		buf = buf[:k]
	}
	return buf
}

// tokenize lowercases (Unicode case-folds) s and splits it into a set of
// letter/digit runs.
func tokenize(s string) map[string]struct{} {
	folded := folder.String(s)
	fields := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		out[f] = struct{}{}
	}
	return out
}

// overlap counts tokens present in both sets, iterating the smaller one.
func overlap(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for t := range a {
		if _, ok := b[t]; ok {
			n++
		}
	}
	return n
}
