package mapping

import (
	"strings"

	"golang.org/x/text/cases"
)

var foldCaser = cases.Fold()

// NormalizeName prepares a client or company name for auto-map comparison:
// surrounding whitespace is trimmed, interior runs of whitespace collapse to
// a single space, and the result is Unicode case-folded. Matching is exact on
// the normalized form; no fuzzy or partial matching is attempted.
func NormalizeName(name string) string {
	collapsed := strings.Join(strings.Fields(name), " ")
	return foldCaser.String(collapsed)
}
