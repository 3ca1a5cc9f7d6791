package lcs

import (
	"cmp"
	"slices"
	"strings"
)

// CommonWordPrefix returns the longest common prefix of the strings in ss based
// on word boundaries detected by SplitWords.
func CommonWordPrefix(ss []string) string {
	var sss [][]string
	for _, s := range ss {
		sss = append(sss, SplitWords(s))
	}
	return strings.Join(commonWords(sss), "")
}

// HasWordPrefix reports whether s starts with prefix on a word boundary and
// has more words after it.
//
//	HasWordPrefix("ErrIO", "Err")     => true
//	HasWordPrefix("Errors", "Err")    => false
//	HasWordPrefix("Err", "Err")       => false
func HasWordPrefix(s, prefix string) bool {
	if prefix == "" || len(s) <= len(prefix) {
		return false
	}
	return CommonWordPrefix([]string{s, prefix}) == prefix
}

// commonWords returns the longest common prefix of the word lists.
func commonWords(words [][]string) []string {
	if len(words) == 0 {
		return nil
	}

	cmpFn := func(a, b []string) int {
		for i := 0; i < min(len(a), len(b)); i++ {
			if c := cmp.Compare(a[i], b[i]); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(a), len(b))
	}

	lo := slices.MinFunc(words, cmpFn)
	hi := slices.MaxFunc(words, cmpFn)

	for i := range lo {
		if lo[i] != hi[i] {
			return lo[:i]
		}
	}
	return lo
}

// SplitWords splits a string into words based on character transitions. It
// detects word boundaries at:
//   - Uppercase letter after lowercase letter: "getID" -> "get" + "ID"
//   - Around underscores: "send_nowait" -> "send" + "_" + "nowait"
//   - Around digits: "file2name" -> "file" + "2" + "name"
func SplitWords(s string) []string {
	var words []string
	start := 0
	for i := 1; i < len(s); i++ {
		var next byte
		if i != len(s)-1 {
			next = s[i+1]
		}
		if isWordBoundary(s[i-1], s[i], next) {
			words = append(words, s[start:i])
			start = i
		}
	}
	if start < len(s) {
		words = append(words, s[start:])
	}
	return words
}

func isLower(c byte) bool  { return c >= 'a' && c <= 'z' }
func isUpper(c byte) bool  { return c >= 'A' && c <= 'Z' }
func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return isLower(c) || isUpper(c) }

// isWordBoundary detects word boundaries based on character transitions.
func isWordBoundary(prev, curr, next byte) bool {
	switch {
	case isLower(prev) && isUpper(curr):
		// camelCase transition: "getId"
		return true
	case isUpper(curr) && isLower(next) && isUpper(prev):
		// end of an acronym: "IOError" -> "IO" + "Error"
		return true
	case prev != '_' && curr == '_', prev == '_' && curr != '_':
		return true
	case isLetter(prev) && isDigit(curr), isDigit(prev) && isLetter(curr):
		return true
	}
	return false
}
