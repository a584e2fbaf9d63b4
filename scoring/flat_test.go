package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreFlat(t *testing.T) {
	tests := []struct {
		name      string
		predicted string
		actual    string
		want      int
	}{
		{"exact score", "3-1", "3-1", 3},
		{"right winner wrong score", "3-1", "3-0", 1},
		{"opposite winner", "3-1", "1-3", 0},
		{"predicted draw never wins", "2-2", "3-1", 0},
		{"exact draw still exact", "2-2", "2-2", 3},
		{"malformed prediction", "abc", "3-1", 0},
		{"malformed result", "3-1", "abc", 0},
		{"empty prediction", "", "3-1", 0},
		{"negative legs rejected", "-1-3", "3-1", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreFlat(tt.predicted, tt.actual))
		})
	}
}

func TestParseScore(t *testing.T) {
	a, b, err := ParseScore("3-2")
	assert.NoError(t, err)
	assert.Equal(t, 3, a)
	assert.Equal(t, 2, b)

	a, b, err = ParseScore(" 10 - 0 ")
	assert.NoError(t, err)
	assert.Equal(t, 10, a)
	assert.Equal(t, 0, b)

	_, _, err = ParseScore("3")
	assert.Error(t, err)
	_, _, err = ParseScore("three-two")
	assert.Error(t, err)
}

func TestValidScore(t *testing.T) {
	assert.True(t, ValidScore("0-0"))
	assert.True(t, ValidScore("10-10"))
	assert.False(t, ValidScore("11-0"), "legs are capped at 10")
	assert.False(t, ValidScore("3"))
	assert.False(t, ValidScore(""))
}
