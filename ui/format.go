package ui

import (
	"math/big"
	"strconv"
	"strings"
)

// FormatResult renders the answer line, e.g. "The factorial of  5  is  120".
// The fragments are joined by single spaces, which is where the doubled
// spaces around each value come from. Never coloured: scripts parse it.
func FormatResult(x int64, result *big.Int) string {
	return strings.Join([]string{
		"The factorial of ",
		strconv.FormatInt(x, 10),
		" is ",
		result.String(),
	}, " ")
}

// Truncate shortens s to at most max runes, marking the cut with "...".
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max || max < 4 {
		return s
	}
	return string(r[:max-3]) + "..."
}
