package errors

import "strings"

// Suggest returns up to max candidates resembling the input, for did-you-mean
// hints. Matching is tiered: case-insensitive exact match first, then prefix
// and substring matches, then small edit distances. Candidates are considered
// in order and deduplicated.
func Suggest(input string, candidates []string, max int) []string {
	if input == "" || max <= 0 {
		return nil
	}
	lower := strings.ToLower(input)

	seen := make(map[string]bool, len(candidates))
	var out []string
	add := func(c string) {
		if !seen[c] && len(out) < max {
			seen[c] = true
			out = append(out, c)
		}
	}

	for _, c := range candidates {
		if strings.ToLower(c) == lower {
			add(c)
		}
	}
	for _, c := range candidates {
		cl := strings.ToLower(c)
		if strings.HasPrefix(cl, lower) || strings.HasPrefix(lower, cl) {
			add(c)
		}
	}
	for _, c := range candidates {
		cl := strings.ToLower(c)
		if strings.Contains(cl, lower) || strings.Contains(lower, cl) {
			add(c)
		}
	}
	for _, c := range candidates {
		if editDistance(lower, strings.ToLower(c)) <= 2 {
			add(c)
		}
	}
	return out
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
