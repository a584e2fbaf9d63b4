package controllers

import (
	"net/http"
	"strconv"

	"Predictor/models"
	"Predictor/utils/formaterror"

	"github.com/gin-gonic/gin"
)

// GetPlayers retrieves the roster
func (server *Server) GetPlayers(c *gin.Context) {
	player := models.Player{}

	players, err := player.FindAllPlayers(server.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No players found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": players,
	})
}

// CreatePlayer adds a roster entry (admin only)
func (server *Server) CreatePlayer(c *gin.Context) {
	var player models.Player

	if err := c.ShouldBindJSON(&player); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player.Prepare()
	errorMessages := player.Validate()
	if len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errorMessages})
		return
	}

	playerCreated, err := player.SavePlayer(server.DB)
	if err != nil {
		formattedError := formaterror.FormatError(err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"errors": formattedError})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   http.StatusCreated,
		"response": playerCreated,
	})
}

// UpdatePlayerImage uploads a headshot for a roster entry (admin only)
func (server *Server) UpdatePlayerImage(c *gin.Context) {
	playerID := c.Param("id")
	pid, err := strconv.ParseUint(playerID, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player ID"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file"})
		return
	}

	imageURL, err := uploadImage(file, "PlayerPics")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player := models.Player{ImageURL: imageURL}
	updatedPlayer, err := player.UpdatePlayerImage(server.DB, uint(pid))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot save image, please try again later"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": updatedPlayer,
	})
}
