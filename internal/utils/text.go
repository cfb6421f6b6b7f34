package utils

import (
	"strings"

	"golang.org/x/text/cases"
)

// FoldCase returns the Unicode case-folded form of s, used for
// case-insensitive comparisons. A new Caser is built per call since
// Casers keep state and are not safe for concurrent use.
func FoldCase(s string) string {
	return cases.Fold().String(s)
}

// IsBlank reports whether s is empty or only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
