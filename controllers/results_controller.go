package controllers

import (
	"net/http"

	"Predictor/models"
	"Predictor/utils/formaterror"

	"github.com/gin-gonic/gin"
)

// PublishResult records the official score for a fixture (admin only).
// Publishing closes the match to further predictions permanently.
// Re-publishing overwrites the previous score; the leaderboard recomputes
// from source, so corrections flow through on the next read.
func (server *Server) PublishResult(c *gin.Context) {
	match := models.Match{}
	matchGotten, err := match.FindMatchByKey(server.DB, c.Param("key"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
		return
	}

	var input struct {
		Score string `json:"score"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot parse request body"})
		return
	}

	result := models.Result{
		MatchKey: matchGotten.MatchKey,
		Score:    input.Score,
	}
	result.Prepare()
	errorMessages := result.Validate()
	if len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errorMessages})
		return
	}

	resultPublished, err := result.PublishResult(server.DB)
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
