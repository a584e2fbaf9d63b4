package controllers

import (
	"net/http"

	"Predictor/models"
	"Predictor/scoring"
	"Predictor/utils/formaterror"

	"github.com/gin-gonic/gin"
)

// PublishNightResult records the official winners for a night (admin only).
// Unlike user entries, the official result must be bracket-consistent: the
// recorded SF winners must come from the recorded QF winners and the Final
// winner from the SF winners, since it describes what actually happened.
// Re-publishing overwrites the previous result for after-the-fact
// corrections; every leaderboard read recomputes from source.
func (server *Server) PublishNightResult(c *gin.Context) {
	night, ok := findNight(server, c)
	if !ok {
		return
	}

	var picks scoring.Picks
	if err := c.ShouldBindJSON(&picks); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot parse request body"})
		return
	}

	if !scoring.Complete(night.QuarterFinals(), picks) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  gin.H{"Invalid_result": "Select a winner for every round, consistent with the bracket"},
		})
		return
	}

	result := models.NightResult{NightID: night.ID}
	result.SetPicks(picks)

	resultPublished, err := result.PublishNightResult(server.DB)
	if err != nil {
		formattedError := formaterror.FormatError(err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"errors": formattedError})
		return
	}

	invalidateLeaderboardCache()

	c.JSON(http.StatusCreated, gin.H{
		"status":   http.StatusCreated,
		"response": resultPublished,
	})
}
