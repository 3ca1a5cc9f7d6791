// Package lcs provides string helpers based on common prefixes and the longest
// common subsequence. errenum uses them to name generated types and to suggest
// identifiers for misspelled ones.
package lcs

import (
	"slices"
	"strings"
)

// CommonPrefix returns the longest common prefix of the strings in ss.
func CommonPrefix(ss []string) string {
	// This implementation is based on os.path.commonprefix in Python.
	// https://github.com/python/cpython/blob/ed24702bd0f9925908ce48584c31dfad732208b2/Lib/genericpath.py#L105
	if len(ss) == 0 {
		return ""
	}

	// The longest common prefix of the lexicographically smallest and largest
	// strings is the longest common prefix of all.
	lo := slices.Min(ss)
	hi := slices.Max(ss)

	for i := range []byte(lo) {
		if lo[i] != hi[i] {
			return lo[:i]
		}
	}

	// lo itself is the longest common prefix.
	return lo
}

// Len returns the length of the longest common subsequence of a and b in
// runes.
func Len(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	// Two rows of the dynamic programming table are enough.
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			switch {
			case ra[i-1] == rb[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// Similarity returns how similar a and b are in [0, 1]. It compares case
// insensitively.
func Similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	total := len([]rune(a)) + len([]rune(b))
	if total == 0 {
		return 1
	}
	return float64(2*Len(a, b)) / float64(total)
}

// minSimilarity is the threshold for [Suggest].
const minSimilarity = 0.6

// Suggest returns the candidate most similar to word. It returns false if no
// candidate is similar enough. Ties are broken by the longer common prefix,
// then by the order of candidates.
func Suggest(word string, candidates []string) (string, bool) {
	best, bestScore, bestPrefix := "", 0.0, 0
	for _, c := range candidates {
		if c == word {
			continue
		}

		score := Similarity(word, c)
		if score < minSimilarity {
			continue
		}

		prefix := len(CommonPrefix([]string{strings.ToLower(word), strings.ToLower(c)}))
		if score > bestScore || score == bestScore && prefix > bestPrefix {
			best, bestScore, bestPrefix = c, score, prefix
		}
	}
	return best, best != ""
}
