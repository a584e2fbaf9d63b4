package controllers

import (
	"net/http"
	"time"

	"Predictor/models"
	"Predictor/utils/formaterror"
	httpctx "Predictor/utils/httpctx"

	"github.com/gin-gonic/gin"
)

// CreateMatch publishes a flat fixture (admin only). Fixtures are immutable
// once created; there is no update route.
func (server *Server) CreateMatch(c *gin.Context) {
	var match models.Match

	if err := c.ShouldBindJSON(&match); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match.Prepare()
	errorMessages := match.Validate()
	if len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errorMessages})
		return
	}

	// Fill in roster headshots when the admin didn't supply images.
	if match.P1Image == "" || match.P2Image == "" {
		if lookup, err := models.ImageLookup(server.DB); err == nil {
			if match.P1Image == "" {
				match.P1Image = lookup[match.Player1]
			}
			if match.P2Image == "" {
				match.P2Image = lookup[match.Player2]
			}
		}
	}

	matchCreated, err := match.SaveMatch(server.DB)
	if err != nil {
		formattedError := formaterror.FormatError(err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"errors": formattedError})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   http.StatusCreated,
		"response": matchCreated,
	})
}

// GetMatches lists every fixture with the caller's gate state for each, so
// the frontend knows which cards still take a prediction.
func (server *Server) GetMatches(c *gin.Context) {
	uid, ok := httpctx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	match := models.Match{}
	matches, err := match.FindAllMatches(server.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Please try again later"})
		return
	}

	now := time.Now()
	responses := make([]map[string]interface{}, 0, len(matches))
	for i := range matches {
		state, err := matchGateState(server.DB, uid, &matches[i], now)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Please try again later"})
			return
		}
		responses = append(responses, map[string]interface{}{
			"match": matches[i],
			"state": state,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": responses,
	})
}

// GetMatch retrieves one fixture by its canonical key, with the caller's
// gate state.
func (server *Server) GetMatch(c *gin.Context) {
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

	state, err := matchGateState(server.DB, uid, matchGotten, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Please try again later"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"response": map[string]interface{}{
			"match": matchGotten,
			"state": state,
		},
	})
}
