package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"Predictor/cache"
	"Predictor/models"
	"Predictor/scoring"

	"github.com/gin-gonic/gin"
)

// leaderboardInputs loads the full prediction and result sets the
// aggregator joins. The table is always rebuilt from source: results can be
// corrected after publication, and there is no versioning to patch totals
// incrementally.
func (server *Server) leaderboardInputs() ([]string, []scoring.PredictionRow, []scoring.ResultRow, []scoring.BracketRow, []scoring.NightResultRow, error) {
	var usernames []string
	if err := server.DB.Model(&models.User{}).Order("username ASC").Pluck("username", &usernames).Error; err != nil {
		return nil, nil, nil, nil, nil, err
	}
	preds, err := models.PredictionRows(server.DB)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	results, err := models.ResultRows(server.DB)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	entries, err := models.BracketRows(server.DB)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	nightResults, err := models.NightResultRows(server.DB)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	return usernames, preds, results, entries, nightResults, nil
}

// serveLeaderboard computes (or serves from cache) one leaderboard variant.
func (server *Server) serveLeaderboard(c *gin.Context, cacheKey string, compute func() ([]scoring.Row, error)) {
	ctx := context.Background()

	if cached, err := cache.Get(ctx, cacheKey); err == nil && cached != "" {
		var rows []scoring.Row
		if err := json.Unmarshal([]byte(cached), &rows); err == nil {
			c.JSON(http.StatusOK, gin.H{
				"status":   http.StatusOK,
				"response": rows,
			})
			return
		}
	}

	rows, err := compute()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Please try again later"})
		return
	}

	if payload, err := json.Marshal(rows); err == nil {
		_ = cache.Set(ctx, cacheKey, payload, leaderboardCacheTTLSeconds*time.Second)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": rows,
	})
}

// GetLeaderboard returns the combined table: flat-match points plus night
// bracket points per user.
func (server *Server) GetLeaderboard(c *gin.Context) {
	server.serveLeaderboard(c, "leaderboard:combined", func() ([]scoring.Row, error) {
		usernames, preds, results, entries, nightResults, err := server.leaderboardInputs()
		if err != nil {
			return nil, err
		}
		return scoring.Leaderboard(usernames, preds, results, entries, nightResults), nil
	})
}

// GetMatchLeaderboard returns points from flat fixtures only.
func (server *Server) GetMatchLeaderboard(c *gin.Context) {
	server.serveLeaderboard(c, "leaderboard:matches", func() ([]scoring.Row, error) {
		usernames, preds, results, _, _, err := server.leaderboardInputs()
		if err != nil {
			return nil, err
		}
		return scoring.Leaderboard(usernames, preds, results, nil, nil), nil
	})
}

// GetNightLeaderboard returns points from night brackets only.
func (server *Server) GetNightLeaderboard(c *gin.Context) {
	server.serveLeaderboard(c, "leaderboard:nights", func() ([]scoring.Row, error) {
		usernames, _, _, entries, nightResults, err := server.leaderboardInputs()
		if err != nil {
			return nil, err
		}
		return scoring.Leaderboard(usernames, nil, nil, entries, nightResults), nil
	})
}
