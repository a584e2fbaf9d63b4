package models

import (
	"strings"
	"time"

	"Predictor/scoring"

	"gorm.io/gorm"
)

// Prediction is one user's flat-fixture score pick. The unique index on
// (user_id, match_key) is the at-most-one-submission invariant: the gate
// check before the insert is advisory, the index is authoritative, so two
// tabs racing the same submit cannot both land.
type Prediction struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_prediction_user_match" json:"user_id"`
	MatchKey  string    `gorm:"size:64;not null;uniqueIndex:idx_prediction_user_match;column:match_key" json:"match_key"`
	Score     string    `gorm:"size:16;not null" json:"score"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (p *Prediction) Prepare() {
	p.User = User{}
	p.MatchKey = scoring.Key(p.MatchKey)
	p.Score = strings.TrimSpace(p.Score)
	p.CreatedAt = time.Now()
}

func (p *Prediction) Validate() map[string]string {
	errorMessages := make(map[string]string)
	if p.UserID == 0 {
		errorMessages["Required_user"] = "Required User"
	}
	if p.MatchKey == "" {
		errorMessages["Required_match_key"] = "Required Match Key"
	}
	if !scoring.ValidScore(p.Score) {
		errorMessages["Invalid_score"] = "Score must be two whole numbers between 0 and 10, like 3-1"
	}
	return errorMessages
}

func (p *Prediction) SavePrediction(db *gorm.DB) (*Prediction, error) {
	if err := db.Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Prediction) FindUserPredictions(db *gorm.DB, uid uint) ([]Prediction, error) {
	var predictions []Prediction
	err := db.Where("user_id = ?", uid).Order("created_at ASC").Find(&predictions).Error
	if err != nil {
		return nil, err
	}
	return predictions, nil
}

// UserHasPrediction is the fresh read-before-write check the submit path
// performs right before appending.
func UserHasPrediction(db *gorm.DB, uid uint, matchKey string) (bool, error) {
	var count int64
	err := db.Model(&Prediction{}).
		Where("user_id = ? AND match_key = ?", uid, scoring.Key(matchKey)).
		Count(&count).Error
	return count > 0, err
}

// PredictionRows loads every prediction joined to its owner's username, in
// the flat shape the scoring engine consumes.
func PredictionRows(db *gorm.DB) ([]scoring.PredictionRow, error) {
	var rows []scoring.PredictionRow
	err := db.Model(&Prediction{}).
		Select("users.username AS username, predictions.match_key AS match_id, predictions.score AS score").
		Joins("JOIN users ON users.id = predictions.user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
