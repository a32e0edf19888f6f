package dispatchers

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"
)

// maxSuggestDistance is the largest edit distance still worth suggesting.
const maxSuggestDistance = 3

// levenshtein is the case-insensitive edit distance between a and b, counted
// in runes so CJK names compare per character.
func levenshtein(a, b string) int {
	src := []rune(strings.ToLower(a))
	dst := []rune(strings.ToLower(b))
	if len(src) < len(dst) {
		src, dst = dst, src
	}

	// Single row over the shorter string.
	row := make([]int, len(dst)+1)
	for j := range row {
		row[j] = j
	}
	for i, sr := range src {
		diag := row[0]
		row[0] = i + 1
		for j, dr := range dst {
			up := row[j+1]
			sub := diag
			if sr != dr {
				sub++
			}
			row[j+1] = min(up+1, row[j]+1, sub)
			diag = up
		}
	}
	return row[len(dst)]
}

// FindSimilarCommands returns up to maxResults subcommand names within edit
// distance 3 of input, closest first and alphabetical among equals. A short
// name that is closer to input than its own length suggests the full name.
func FindSimilarCommands(input string, subs []Subcommand, maxResults int) []string {
	type candidate struct {
		name string
		dist int
	}

	var found []candidate
	for _, s := range subs {
		dist := levenshtein(input, s.name)
		if s.short != "" {
			if d := levenshtein(input, s.short); d < utf8.RuneCountInString(s.short) {
				dist = min(dist, d)
			}
		}
		if dist == 0 || dist > maxSuggestDistance {
			continue
		}
		found = append(found, candidate{s.name, dist})
	}

	slices.SortFunc(found, func(x, y candidate) int {
		return cmp.Or(cmp.Compare(x.dist, y.dist), strings.Compare(x.name, y.name))
	})

	names := make([]string, 0, min(len(found), maxResults))
	for _, c := range found[:min(len(found), maxResults)] {
		names = append(names, c.name)
	}
	return names
}

func (a *App) suggest(token string) []string {
	return FindSimilarCommands(token, a.subs, defaultSuggestionsCount)
}
