package pure_utils

import (
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// NameSimilarity compares two person or company names with Jaro-Winkler, ignoring case and surrounding spaces.
// It returns a value in [0, 1].
func NameSimilarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return 0
	}
	return strutil.Similarity(a, b, metrics.NewJaroWinkler())
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
