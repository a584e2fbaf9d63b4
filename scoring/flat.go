package scoring

import (
	"fmt"
	"strconv"
	"strings"
)

// Points awarded for a flat fixture prediction.
const (
	ExactScorePoints    = 3
	CorrectWinnerPoints = 1
)

// MaxLegs is the largest leg count a flat prediction may carry per side.
const MaxLegs = 10

// ParseScore splits an "A-B" score string into its two leg counts.
func ParseScore(score string) (int, int, error) {
	parts := strings.SplitN(strings.TrimSpace(score), "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed score %q", score)
	}
	a, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("malformed score %q", score)
	}
	b, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("malformed score %q", score)
	}
	if a < 0 || b < 0 {
		return 0, 0, fmt.Errorf("malformed score %q", score)
	}
	return a, b, nil
}

// ValidScore reports whether a score string is acceptable for submission:
// two integers in [0, MaxLegs].
func ValidScore(score string) bool {
	a, b, err := ParseScore(score)
	return err == nil && a <= MaxLegs && b <= MaxLegs
}

// ScoreFlat awards points for one flat prediction against the official
// result: 3 for the exact score, 1 for the right winner with a different
// score, 0 otherwise. A predicted draw never earns the winner point, and a
// malformed score string on either side scores 0 rather than failing.
func ScoreFlat(predicted, actual string) int {
	u1, u2, err := ParseScore(predicted)
	if err != nil {
		return 0
	}
	r1, r2, err := ParseScore(actual)
	if err != nil {
		return 0
	}
	if u1 == r1 && u2 == r2 {
		return ExactScorePoints
	}
	if (u1 > u2 && r1 > r2) || (u1 < u2 && r1 < r2) {
		return CorrectWinnerPoints
	}
	return 0
}
