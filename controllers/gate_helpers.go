package controllers

import (
	"time"

	"Predictor/models"
	"Predictor/scoring"

	"gorm.io/gorm"
)

// matchGateState evaluates the submission gate for one user and fixture.
// The flags are read fresh on every call; nothing is cached.
func matchGateState(db *gorm.DB, uid uint, match *models.Match, now time.Time) (scoring.GateState, error) {
	resulted, err := models.MatchHasResult(db, match.MatchKey)
	if err != nil {
		return "", err
	}
	submitted, err := models.UserHasPrediction(db, uid, match.MatchKey)
	if err != nil {
		return "", err
	}
	return scoring.Gate(now, match.StartTime, submitted, resulted), nil
}

// nightGateState evaluates the submission gate for one user and night.
func nightGateState(db *gorm.DB, uid uint, night *models.Night, now time.Time) (scoring.GateState, error) {
	resulted, err := models.NightHasResult(db, night.ID)
	if err != nil {
		return "", err
	}
	entered, err := models.UserHasEntry(db, uid, night.ID)
	if err != nil {
		return "", err
	}
	return scoring.Gate(now, &night.Cutoff, entered, resulted), nil
}
