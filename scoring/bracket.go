package scoring

// A Pair is the two entrants of a single bracket matchup.
type Pair struct {
	A string `json:"a"`
	B string `json:"b"`
}

// Contains reports whether name is one of the pair's entrants. The empty
// string is never an entrant, so an unpicked slot can't match.
func (p Pair) Contains(name string) bool {
	return name != "" && (name == p.A || name == p.B)
}

// Picks holds a user's predicted winners for one night. Empty string means
// "no selection". The same shape carries the official result.
type Picks struct {
	QF1   string `json:"qf1"`
	QF2   string `json:"qf2"`
	QF3   string `json:"qf3"`
	QF4   string `json:"qf4"`
	SF1   string `json:"sf1"`
	SF2   string `json:"sf2"`
	Final string `json:"final"`
}

func (p Picks) quarterFinals() [4]string {
	return [4]string{p.QF1, p.QF2, p.QF3, p.QF4}
}

// SemiFinalPairs derives the two semi-final matchups implied by the
// quarter-final picks. The second return is false until all four QF picks
// are present and legal, i.e. the semi-finals are not yet renderable.
func SemiFinalPairs(qf [4]Pair, p Picks) ([2]Pair, bool) {
	picks := p.quarterFinals()
	for i, pick := range picks {
		if !qf[i].Contains(pick) {
			return [2]Pair{}, false
		}
	}
	return [2]Pair{
		{A: picks[0], B: picks[1]},
		{A: picks[2], B: picks[3]},
	}, true
}

// FinalPair derives the final matchup from the semi-final picks. It is
// renderable only once the semi-finals themselves are renderable and both
// SF picks are legal entrants.
func FinalPair(qf [4]Pair, p Picks) (Pair, bool) {
	sf, ok := SemiFinalPairs(qf, p)
	if !ok {
		return Pair{}, false
	}
	if !sf[0].Contains(p.SF1) || !sf[1].Contains(p.SF2) {
		return Pair{}, false
	}
	return Pair{A: p.SF1, B: p.SF2}, true
}

// Complete reports whether every round holds a legal pick: each QF pick is
// one of its night's entrants, SF1 comes from {QF1,QF2}, SF2 from {QF3,QF4}
// and the Final pick from {SF1,SF2}. Only complete brackets may be submitted.
func Complete(qf [4]Pair, p Picks) bool {
	final, ok := FinalPair(qf, p)
	return ok && final.Contains(p.Final)
}

// Options is the progressive round-reveal payload: the quarter-finals are
// always shown, the semi-finals only once the QF picks are legal, the final
// only once the SF picks are legal. An invalid or missing pick withholds
// everything downstream rather than erroring.
type Options struct {
	QuarterFinals [4]Pair `json:"quarter_finals"`
	SemiFinals    []Pair  `json:"semi_finals,omitempty"`
	Final         *Pair   `json:"final,omitempty"`
	Complete      bool    `json:"complete"`
}

// NextOptions resolves which rounds are currently renderable for the given
// partial picks.
func NextOptions(qf [4]Pair, p Picks) Options {
	opts := Options{QuarterFinals: qf}
	sf, ok := SemiFinalPairs(qf, p)
	if !ok {
		return opts
	}
	opts.SemiFinals = sf[:]
	final, ok := FinalPair(qf, p)
	if !ok {
		return opts
	}
	opts.Final = &final
	opts.Complete = Complete(qf, p)
	return opts
}

// Points awarded per slot of a night bracket.
const (
	QuarterFinalPoints = 2
	SemiFinalPoints    = 3
	FinalPoints        = 5
	MaxNightPoints     = 4*QuarterFinalPoints + 2*SemiFinalPoints + FinalPoints
)

// ScoreBracket compares a user's picks against the official result slot by
// slot: 2 points per quarter-final, 3 per semi-final, 5 for the final.
// Slots are scored independently against what the user actually picked, so
// a wrong QF pick does not void a correct SF or Final pick. Empty slots on
// either side never score.
func ScoreBracket(picks, result Picks) int {
	points := 0
	for i, pick := range picks.quarterFinals() {
		if pick != "" && pick == result.quarterFinals()[i] {
			points += QuarterFinalPoints
		}
	}
	if picks.SF1 != "" && picks.SF1 == result.SF1 {
		points += SemiFinalPoints
	}
	if picks.SF2 != "" && picks.SF2 == result.SF2 {
		points += SemiFinalPoints
	}
	if picks.Final != "" && picks.Final == result.Final {
		points += FinalPoints
	}
	return points
}
