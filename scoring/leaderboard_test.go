package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeaderboardJoinsOnNormalizedIdentifiers(t *testing.T) {
	// Dom predicted match 7; the admin keyed the result as "7.0".
	rows := Leaderboard(
		[]string{"Dom"},
		[]PredictionRow{{Username: "Dom", MatchID: "7", Score: "3-2"}},
		[]ResultRow{{MatchID: "7.0", Score: "3-2"}},
		nil, nil,
	)
	assert.Equal(t, []Row{{Rank: 1, Username: "Dom", Points: 3}}, rows)
}

func TestLeaderboardIncludesZeroScoreUsers(t *testing.T) {
	rows := Leaderboard([]string{"alice", "bob"}, nil, nil, nil, nil)
	assert.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, 0, row.Points)
	}
}

func TestLeaderboardCountsUsersMissingFromRoster(t *testing.T) {
	rows := Leaderboard(
		nil,
		[]PredictionRow{{Username: "ghost", MatchID: "1", Score: "3-0"}},
		[]ResultRow{{MatchID: "1", Score: "3-0"}},
		nil, nil,
	)
	assert.Equal(t, []Row{{Rank: 1, Username: "ghost", Points: 3}}, rows)
}

func TestLeaderboardUnresolvedPredictionsScoreNothing(t *testing.T) {
	rows := Leaderboard(
		[]string{"alice"},
		[]PredictionRow{{Username: "alice", MatchID: "9", Score: "3-0"}},
		nil, nil, nil,
	)
	assert.Equal(t, 0, rows[0].Points)
}

func TestLeaderboardNightScenario(t *testing.T) {
	official := NightResultRow{Night: "Night 1", Picks: Picks{
		QF1: "Humphries", QF2: "Van Gerwen", QF3: "Price", QF4: "Rock",
		SF1: "Humphries", SF2: "Rock",
		Final: "Humphries",
	}}
	// Alice got QF1 and the Final right; Bob got nothing.
	alice := BracketRow{Username: "alice", Night: "Night 1", Picks: Picks{
		QF1: "Humphries", QF2: "Aspinall", QF3: "Dobey", QF4: "Bunting",
		SF1: "Aspinall", SF2: "Bunting",
		Final: "Humphries",
	}}
	bob := BracketRow{Username: "bob", Night: "Night 1", Picks: Picks{
		QF1: "Littler", QF2: "Aspinall", QF3: "Dobey", QF4: "Bunting",
		SF1: "Littler", SF2: "Dobey",
		Final: "Littler",
	}}

	rows := Leaderboard([]string{"alice", "bob"}, nil, nil, []BracketRow{alice, bob}, []NightResultRow{official})
	assert.Equal(t, "alice", rows[0].Username)
	assert.Equal(t, 7, rows[0].Points)
	assert.Equal(t, "bob", rows[1].Username)
	assert.Equal(t, 0, rows[1].Points)
}

func TestLeaderboardMixesFlatAndNightPoints(t *testing.T) {
	rows := Leaderboard(
		[]string{"alice"},
		[]PredictionRow{{Username: "alice", MatchID: "3", Score: "3-1"}},
		[]ResultRow{{MatchID: "3", Score: "3-0"}},
		[]BracketRow{{Username: "alice", Night: "Night 2", Picks: Picks{QF1: "Price"}}},
		[]NightResultRow{{Night: "Night 2", Picks: Picks{QF1: "Price"}}},
	)
	// 1 for the winner + 2 for QF1.
	assert.Equal(t, 3, rows[0].Points)
}

func TestLeaderboardTieBreaksOnUsername(t *testing.T) {
	rows := Leaderboard([]string{"zoe", "ann", "mid"}, nil, nil, nil, nil)
	assert.Equal(t, []string{"ann", "mid", "zoe"}, []string{rows[0].Username, rows[1].Username, rows[2].Username})
	assert.Equal(t, []int{1, 2, 3}, []int{rows[0].Rank, rows[1].Rank, rows[2].Rank})
}

func TestLeaderboardIsIdempotent(t *testing.T) {
	preds := []PredictionRow{
		{Username: "alice", MatchID: "1", Score: "3-2"},
		{Username: "bob", MatchID: "1", Score: "2-3"},
	}
	results := []ResultRow{{MatchID: "1.0", Score: "3-2"}}
	first := Leaderboard([]string{"alice", "bob"}, preds, results, nil, nil)
	second := Leaderboard([]string{"alice", "bob"}, preds, results, nil, nil)
	assert.Equal(t, first, second)
}
