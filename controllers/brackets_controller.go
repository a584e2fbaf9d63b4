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

func findNight(server *Server, c *gin.Context) (*models.Night, bool) {
	nid, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid night ID"})
		return nil, false
	}
	night := models.Night{}
	nightGotten, err := night.FindNightByID(server.DB, uint(nid))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Night not found"})
		return nil, false
	}
	return nightGotten, true
}

// BracketOptions resolves which rounds the caller's partial picks unlock.
// The frontend posts the picks made so far and renders whatever comes back:
// the semi-final pairs appear once all four QF picks are legal, the final
// pair once both SF picks are. Illegal picks simply withhold the downstream
// rounds; nothing errors.
func (server *Server) BracketOptions(c *gin.Context) {
	night, ok := findNight(server, c)
	if !ok {
		return
	}

	var picks scoring.Picks
	if err := c.ShouldBindJSON(&picks); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot parse request body"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": scoring.NextOptions(night.QuarterFinals(), picks),
	})
}

// SubmitBracketEntry locks in the caller's bracket for a night. Only a
// complete bracket — a legal pick in all seven slots — is accepted, and
// only while the caller's gate for the night is open. The unique index on
// (user_id, night_id) catches a double submit that slips past the fresh
// gate read.
func (server *Server) SubmitBracketEntry(c *gin.Context) {
	uid, ok := httpctx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	night, ok := findNight(server, c)
	if !ok {
		return
	}

	var picks scoring.Picks
	if err := c.ShouldBindJSON(&picks); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot parse request body"})
		return
	}

	state, err := nightGateState(server.DB, uid, night, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Please try again later"})
		return
	}
	if state != scoring.StateOpen {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  gin.H{"Gate_closed": "Predictions are closed for this night"},
			"state":  state,
		})
		return
	}

	if !scoring.Complete(night.QuarterFinals(), picks) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  gin.H{"Incomplete_bracket": "Pick a winner for every round before submitting"},
		})
		return
	}

	entry := models.BracketEntry{
		UserID:  uid,
		NightID: night.ID,
	}
	entry.SetPicks(picks)
	entry.Prepare()

	entryCreated, err := entry.SaveBracketEntry(server.DB)
	if err != nil {
		formattedError := formaterror.FormatError(err.Error())
		c.JSON(http.StatusConflict, gin.H{"errors": formattedError})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   http.StatusCreated,
		"response": entryCreated,
		"state":    scoring.StateLockedSubmitted,
	})
}

// GetUserEntries lists a user's bracket entries. Only the user themselves
// (or an admin) may read them; anyone else could copy a bracket on a night
// that is still open.
func (server *Server) GetUserEntries(c *gin.Context) {
	uid, err := strconv.ParseUint(c.Param("id"), 10, 32)
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

	entry := models.BracketEntry{}
	entries, err := entry.FindUserEntries(server.DB, uint(uid))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Please try again later"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": entries,
	})
}
