package scoring

import (
	"fmt"
	"strings"
)

// Key canonicalizes a match or night identifier. Identifiers arrive from
// imports and older clients as integers, floats, or strings, and a float
// round-trip turns "7" into "7.0". Joining predictions to results uses the
// canonical form on both sides.
func Key(id interface{}) string {
	s := strings.TrimSpace(fmt.Sprint(id))
	if trimmed, ok := strings.CutSuffix(s, ".0"); ok && trimmed != "" && allDigits(trimmed) {
		return trimmed
	}
	return s
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
