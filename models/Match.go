package models

import (
	"html"
	"strings"
	"time"

	"Predictor/scoring"

	"gorm.io/gorm"
)

// Match is a single flat fixture, predicted independently of any night
// bracket. MatchKey is the canonical identifier every prediction and result
// joins on; imports deliver it as "7", "7.0" or a bare number and Prepare
// canonicalizes whatever arrived. Fixtures are immutable once created.
type Match struct {
	ID        uint       `gorm:"primary_key;autoIncrement" json:"id"`
	MatchKey  string     `gorm:"size:64;not null;uniqueIndex;column:match_key" json:"match_key"`
	Player1   string     `gorm:"size:255;not null" json:"player1"`
	Player2   string     `gorm:"size:255;not null" json:"player2"`
	StartTime *time.Time `json:"start_time"`
	P1Image   string     `gorm:"size:255" json:"p1_image"`
	P2Image   string     `gorm:"size:255" json:"p2_image"`
	CreatedAt time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (m *Match) Prepare() {
	m.MatchKey = scoring.Key(m.MatchKey)
	m.Player1 = html.EscapeString(strings.TrimSpace(m.Player1))
	m.Player2 = html.EscapeString(strings.TrimSpace(m.Player2))
	m.P1Image = strings.TrimSpace(m.P1Image)
	m.P2Image = strings.TrimSpace(m.P2Image)
	m.CreatedAt = time.Now()
}

func (m *Match) Validate() map[string]string {
	errorMessages := make(map[string]string)
	if m.MatchKey == "" {
		errorMessages["Required_match_key"] = "Required Match Key"
	}
	if m.Player1 == "" {
		errorMessages["Required_player1"] = "Required Player 1"
	}
	if m.Player2 == "" {
		errorMessages["Required_player2"] = "Required Player 2"
	}
	if m.Player1 != "" && m.Player1 == m.Player2 {
		errorMessages["Invalid_players"] = "Players must differ"
	}
	return errorMessages
}

func (m *Match) SaveMatch(db *gorm.DB) (*Match, error) {
	if err := db.Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Match) FindAllMatches(db *gorm.DB) ([]Match, error) {
	var matches []Match
	err := db.Order("created_at ASC").Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func (m *Match) FindMatchByKey(db *gorm.DB, key string) (*Match, error) {
	err := db.Where("match_key = ?", scoring.Key(key)).Take(m).Error
	if err != nil {
		return nil, err
	}
	return m, nil
}
