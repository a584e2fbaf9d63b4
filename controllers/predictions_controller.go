package controllers

import (
	"net/http"
	"strconv"
	"time"

	"Predictor/models"
	"Predictor/scoring"
	"Predictor/utils/formaterror"
	httpctx "Predictor/utils/httpctx"

	"github.com/gin-gonic/gin"
)

// SubmitPrediction locks in the caller's score pick for one fixture. The
// gate is re-evaluated from a fresh read immediately before the insert, and
// the unique index on (user_id, match_key) catches the remaining race.
func (server *Server) SubmitPrediction(c *gin.Context) {
	uid, ok := httpctx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

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

	state, err := matchGateState(server.DB, uid, matchGotten, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Please try again later"})
		return
	}
	if state != scoring.StateOpen {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  gin.H{"Gate_closed": "Predictions are closed for this match"},
			"state":  state,
		})
		return
	}

	prediction := models.Prediction{
		UserID:   uid,
		MatchKey: matchGotten.MatchKey,
		Score:    input.Score,
	}
	prediction.Prepare()
	errorMessages := prediction.Validate()
	if len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errorMessages})
		return
	}

	predictionCreated, err := prediction.SavePrediction(server.DB)
	if err != nil {
		// A duplicate insert means another tab won the race.
		formattedError := formaterror.FormatError(err.Error())
		c.JSON(http.StatusConflict, gin.H{"errors": formattedError})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   http.StatusCreated,
		"response": predictionCreated,
		"state":    scoring.StateLockedSubmitted,
	})
}

// GetUserPredictions lists a user's flat predictions. Only the user
// themselves (or an admin) may read them; anyone else could copy picks on
// matches that are still open.
func (server *Server) GetUserPredictions(c *gin.Context) {
	userID := c.Param("id")
	uid, err := strconv.ParseUint(userID, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	tokenID, ok := httpctx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if tokenID != uint(uid) && !httpctx.IsAdminRequest(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	prediction := models.Prediction{}
	predictions, err := prediction.FindUserPredictions(server.DB, uint(uid))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Please try again later"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": predictions,
	})
}
