package match

import (
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"
)

var (
	nonAlnumRe   = regexp.MustCompile(`[^a-z0-9 ]+`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// normalize lowercases, strips everything outside [a-z0-9 ], collapses
// whitespace runs and trims.
func normalize(s string) string {
	s = strings.ToLower(s)
	s = nonAlnumRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// FuzzyMatch reports whether value satisfies a free-text filter with
// typo tolerance: substring either way, otherwise bounded edit
// distance (1 typo for short filters, 2 for longer ones). An empty
// filter matches everything; an empty value matches nothing.
func FuzzyMatch(value, filter string) bool {
	if filter == "" {
		return true
	}
	if value == "" {
		return false
	}

	v := normalize(value)
	f := normalize(filter)

	if strings.Contains(v, f) || strings.Contains(f, v) {
		return true
	}

	threshold := 2
	if len(f) <= 4 {
		threshold = 1
	}
	return levenshtein.ComputeDistance(v, f) <= threshold
}

// SameCity treats two locations as equal when one contains the other,
// case-insensitively ("Mumbai" vs "Mumbai, Maharashtra"). Blank on
// either side is never a match.
func SameCity(a, b string) bool {
	c1 := strings.ToLower(strings.TrimSpace(a))
	c2 := strings.ToLower(strings.TrimSpace(b))
	if c1 == "" || c2 == "" {
		return false
	}
	return strings.Contains(c1, c2) || strings.Contains(c2, c1)
}
