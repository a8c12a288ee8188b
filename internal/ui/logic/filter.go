package logic

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Matcher derives the suggestion sequence from the candidate list, the
// current selection and the query. Implementations must not mutate their
// inputs and must keep candidates in their original relative order.
type Matcher func(candidates, selection []string, query string) []string

// Match modes accepted by MatcherByName
const (
	MatchPrefix = "prefix"
	MatchFuzzy  = "fuzzy"
)

// PrefixMatcher is the default matcher
var PrefixMatcher Matcher = Suggestions

// MatcherByName resolves a match mode from configuration
func MatcherByName(name string) (Matcher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", MatchPrefix:
		return Suggestions, nil
	case MatchFuzzy:
		return FuzzySuggestions, nil
	default:
		return nil, fmt.Errorf("unknown match mode %q (want %q or %q)", name, MatchPrefix, MatchFuzzy)
	}
}

// Suggestions returns the candidates that are not selected and whose label
// starts with query, ignoring case. An empty query matches every
// unselected candidate.
func Suggestions(candidates, selection []string, query string) []string {
	lowerQuery := strings.ToLower(query)
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if contains(selection, c) {
			continue
		}
		if strings.HasPrefix(strings.ToLower(c), lowerQuery) {
			out = append(out, c)
		}
	}
	return out
}

// FuzzySuggestions is Suggestions with subsequence matching instead of
// prefix matching. Results keep candidate order rather than score order.
func FuzzySuggestions(candidates, selection []string, query string) []string {
	available := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if !contains(selection, c) {
			available = append(available, c)
		}
	}
	if query == "" {
		return available
	}

	matches := fuzzy.Find(query, available)
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Index < matches[j].Index
	})

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, available[m.Index])
	}
	return out
}

func contains(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}
