package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var nightOne = [4]Pair{
	{A: "Humphries", B: "Littler"},
	{A: "Van Gerwen", B: "Aspinall"},
	{A: "Price", B: "Dobey"},
	{A: "Rock", B: "Bunting"},
}

func completePicks() Picks {
	return Picks{
		QF1: "Humphries", QF2: "Aspinall", QF3: "Price", QF4: "Bunting",
		SF1: "Humphries", SF2: "Bunting",
		Final: "Humphries",
	}
}

func TestSemiFinalPairsRequireAllQuarterFinalPicks(t *testing.T) {
	p := Picks{QF1: "Humphries", QF2: "Aspinall", QF3: "Price"}
	_, ok := SemiFinalPairs(nightOne, p)
	assert.False(t, ok, "missing QF4 pick must block the semi-finals")

	p.QF4 = "Bunting"
	sf, ok := SemiFinalPairs(nightOne, p)
	assert.True(t, ok)
	assert.Equal(t, Pair{A: "Humphries", B: "Aspinall"}, sf[0])
	assert.Equal(t, Pair{A: "Price", B: "Bunting"}, sf[1])
}

func TestSemiFinalPairsRejectIllegalPick(t *testing.T) {
	p := Picks{QF1: "Price", QF2: "Aspinall", QF3: "Price", QF4: "Bunting"}
	_, ok := SemiFinalPairs(nightOne, p)
	assert.False(t, ok, "Price is not a QF1 entrant")
}

func TestFinalPairDerivesFromSemiFinalPicks(t *testing.T) {
	p := completePicks()
	final, ok := FinalPair(nightOne, p)
	assert.True(t, ok)
	assert.Equal(t, Pair{A: "Humphries", B: "Bunting"}, final)

	p.SF1 = "Littler" // eliminated in the user's own QF1 pick
	_, ok = FinalPair(nightOne, p)
	assert.False(t, ok)
}

func TestCompleteEnforcesLegalityChain(t *testing.T) {
	p := completePicks()
	assert.True(t, Complete(nightOne, p))

	p.Final = "Price" // not one of the user's SF winners
	assert.False(t, Complete(nightOne, p))

	p = completePicks()
	p.SF2 = ""
	assert.False(t, Complete(nightOne, p))
}

func TestNextOptionsRevealRoundsProgressively(t *testing.T) {
	opts := NextOptions(nightOne, Picks{})
	assert.Equal(t, nightOne, opts.QuarterFinals)
	assert.Empty(t, opts.SemiFinals)
	assert.Nil(t, opts.Final)
	assert.False(t, opts.Complete)

	p := Picks{QF1: "Humphries", QF2: "Aspinall", QF3: "Price", QF4: "Bunting"}
	opts = NextOptions(nightOne, p)
	assert.Len(t, opts.SemiFinals, 2)
	assert.Nil(t, opts.Final)

	p.SF1, p.SF2 = "Humphries", "Bunting"
	opts = NextOptions(nightOne, p)
	assert.NotNil(t, opts.Final)
	assert.False(t, opts.Complete)

	p.Final = "Bunting"
	opts = NextOptions(nightOne, p)
	assert.True(t, opts.Complete)
}

func TestScoreBracketAllSlotsCorrect(t *testing.T) {
	p := completePicks()
	assert.Equal(t, 19, ScoreBracket(p, p))
	assert.Equal(t, MaxNightPoints, ScoreBracket(p, p))
}

func TestScoreBracketPartialMatches(t *testing.T) {
	picks := completePicks()
	official := Picks{
		QF1: "Humphries", QF2: "Van Gerwen", QF3: "Price", QF4: "Rock",
		SF1: "Van Gerwen", SF2: "Rock",
		Final: "Rock",
	}
	// Only QF1 and QF3 agree.
	assert.Equal(t, 4, ScoreBracket(picks, official))
}

func TestScoreBracketNoMatches(t *testing.T) {
	official := Picks{
		QF1: "Littler", QF2: "Van Gerwen", QF3: "Dobey", QF4: "Rock",
		SF1: "Littler", SF2: "Rock",
		Final: "Littler",
	}
	assert.Equal(t, 0, ScoreBracket(completePicks(), official))
}

func TestScoreBracketIsLenientAcrossRounds(t *testing.T) {
	// The user got QF1 wrong, yet typed the eventual champion into the
	// Final slot. The Final still scores.
	picks := Picks{
		QF1: "Humphries", QF2: "Aspinall", QF3: "Price", QF4: "Bunting",
		SF1: "Humphries", SF2: "Price",
		Final: "Littler",
	}
	official := Picks{
		QF1: "Littler", QF2: "Van Gerwen", QF3: "Price", QF4: "Rock",
		SF1: "Littler", SF2: "Price",
		Final: "Littler",
	}
	// QF3 (+2), SF2 (+3), Final (+5).
	assert.Equal(t, 10, ScoreBracket(picks, official))
}

func TestScoreBracketEmptySlotsNeverScore(t *testing.T) {
	assert.Equal(t, 0, ScoreBracket(Picks{}, Picks{}))
}
