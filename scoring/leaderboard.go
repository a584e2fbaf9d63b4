package scoring

import "sort"

// PredictionRow is one flat prediction as read from storage.
type PredictionRow struct {
	Username string
	MatchID  string
	Score    string
}

// ResultRow is one official flat result.
type ResultRow struct {
	MatchID string
	Score   string
}

// BracketRow is one submitted night bracket.
type BracketRow struct {
	Username string
	Night    string
	Picks    Picks
}

// NightResultRow is one official night result.
type NightResultRow struct {
	Night string
	Picks Picks
}

// Row is one ranked leaderboard entry.
type Row struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Points   int    `json:"points"`
}

// Leaderboard rebuilds the ranked table from scratch on every call. Results
// may be corrected after publication, so totals are never patched
// incrementally. Every roster user appears, scoring zero when none of their
// predictions have a result yet; predictions from users missing from the
// roster are counted too. Identifiers are joined on their canonical Key
// form. Ties break on username so the ordering is deterministic.
func Leaderboard(usernames []string, preds []PredictionRow, results []ResultRow, entries []BracketRow, nightResults []NightResultRow) []Row {
	totals := make(map[string]int)
	order := make([]string, 0, len(usernames))
	seen := make(map[string]bool)
	add := func(username string) {
		if username != "" && !seen[username] {
			seen[username] = true
			order = append(order, username)
			totals[username] = 0
		}
	}
	for _, u := range usernames {
		add(u)
	}
	for _, p := range preds {
		add(p.Username)
	}
	for _, e := range entries {
		add(e.Username)
	}

	resultByMatch := make(map[string]string, len(results))
	for _, r := range results {
		resultByMatch[Key(r.MatchID)] = r.Score
	}
	for _, p := range preds {
		if actual, ok := resultByMatch[Key(p.MatchID)]; ok {
			totals[p.Username] += ScoreFlat(p.Score, actual)
		}
	}

	resultByNight := make(map[string]Picks, len(nightResults))
	for _, r := range nightResults {
		resultByNight[Key(r.Night)] = r.Picks
	}
	for _, e := range entries {
		if official, ok := resultByNight[Key(e.Night)]; ok {
			totals[e.Username] += ScoreBracket(e.Picks, official)
		}
	}

	rows := make([]Row, 0, len(order))
	for _, username := range order {
		rows = append(rows, Row{Username: username, Points: totals[username]})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		return rows[i].Username < rows[j].Username
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}
