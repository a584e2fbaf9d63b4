package models

import (
	"strings"
	"time"

	"Predictor/scoring"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Result is the admin-entered official outcome of a flat fixture. At most
// one exists per match; publishing again overwrites it and the leaderboard,
// which always recomputes from source, picks the correction up.
type Result struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	MatchKey  string    `gorm:"size:64;not null;uniqueIndex;column:match_key" json:"match_key"`
	Score     string    `gorm:"size:16;not null" json:"score"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (r *Result) Prepare() {
	r.MatchKey = scoring.Key(r.MatchKey)
	r.Score = strings.TrimSpace(r.Score)
	r.CreatedAt = time.Now()
	r.UpdatedAt = time.Now()
}

func (r *Result) Validate() map[string]string {
	errorMessages := make(map[string]string)
	if r.MatchKey == "" {
		errorMessages["Required_match_key"] = "Required Match Key"
	}
	if !scoring.ValidScore(r.Score) {
		errorMessages["Invalid_score"] = "Score must be two whole numbers between 0 and 10, like 3-1"
	}
	return errorMessages
}

// PublishResult upserts the official score for a match.
func (r *Result) PublishResult(db *gorm.DB) (*Result, error) {
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "match_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
	}).Create(r).Error
	if err != nil {
		return nil, err
	}
	return r, nil
}

// MatchHasResult reports whether the fixture is permanently closed.
func MatchHasResult(db *gorm.DB, matchKey string) (bool, error) {
	var count int64
	err := db.Model(&Result{}).Where("match_key = ?", scoring.Key(matchKey)).Count(&count).Error
	return count > 0, err
}

// ResultRows loads all official flat results in scoring shape.
func ResultRows(db *gorm.DB) ([]scoring.ResultRow, error) {
	var rows []scoring.ResultRow
	err := db.Model(&Result{}).
		Select("match_key AS match_id, score").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
