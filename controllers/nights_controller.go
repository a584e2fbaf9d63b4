package controllers

import (
	"net/http"
	"strconv"
	"time"

	"Predictor/models"
	"Predictor/utils/formaterror"
	httpctx "Predictor/utils/httpctx"

	"github.com/gin-gonic/gin"
)

func nightResponse(night *models.Night, state interface{}, now time.Time) map[string]interface{} {
	// Seconds until cutoff drive the frontend countdown; zero once passed.
	countdown := int64(0)
	if remaining := night.Cutoff.Sub(now); remaining > 0 {
		countdown = int64(remaining.Seconds())
	}
	return map[string]interface{}{
		"night":             night,
		"state":             state,
		"countdown_seconds": countdown,
	}
}

// CreateNight publishes a night bracket (admin only). Nights are immutable
// once published.
func (server *Server) CreateNight(c *gin.Context) {
	var night models.Night

	if err := c.ShouldBindJSON(&night); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	night.Prepare()
	errorMessages := night.Validate()
	if len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errorMessages})
		return
	}

	nightCreated, err := night.SaveNight(server.DB)
	if err != nil {
		formattedError := formaterror.FormatError(err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"errors": formattedError})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   http.StatusCreated,
		"response": nightCreated,
	})
}

// GetNights lists every night with the caller's gate state and countdown.
func (server *Server) GetNights(c *gin.Context) {
	uid, ok := httpctx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	night := models.Night{}
	nights, err := night.FindAllNights(server.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Please try again later"})
		return
	}

	now := time.Now()
	responses := make([]map[string]interface{}, 0, len(nights))
	for i := range nights {
		state, err := nightGateState(server.DB, uid, &nights[i], now)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Please try again later"})
			return
		}
		responses = append(responses, nightResponse(&nights[i], state, now))
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": responses,
	})
}

// GetNight retrieves one night with the caller's gate state.
func (server *Server) GetNight(c *gin.Context) {
	uid, ok := httpctx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	nightID := c.Param("id")
	nid, err := strconv.ParseUint(nightID, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid night ID"})
		return
	}

	night := models.Night{}
	nightGotten, err := night.FindNightByID(server.DB, uint(nid))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Night not found"})
		return
	}

	now := time.Now()
	state, err := nightGateState(server.DB, uid, nightGotten, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Please try again later"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": nightResponse(nightGotten, state, now),
	})
}
