package controllers

import (
	"net/http"
	"strconv"

	"Predictor/models"
	"Predictor/security"
	"Predictor/utils/formaterror"

	"github.com/gin-gonic/gin"
)

func userResponse(user *models.User) map[string]interface{} {
	return map[string]interface{}{
		"id":          user.ID,
		"public_id":   user.PublicID,
		"username":    user.Username,
		"email":       user.Email,
		"avatar_path": user.AvatarPath,
		"is_admin":    user.IsAdmin,
		"created_at":  user.CreatedAt,
		"updated_at":  user.UpdatedAt,
	}
}

// CreateUser handles user registration
func (server *Server) CreateUser(c *gin.Context) {
	var user models.User

	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user.Prepare()
	errorMessages := user.Validate("")
	if len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errorMessages})
		return
	}

	userCreated, err := user.SaveUser(server.DB)
	if err != nil {
		// Almost always a taken username or email.
		formattedError := formaterror.FormatError(err.Error())
		c.JSON(http.StatusConflict, gin.H{"errors": formattedError})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   http.StatusCreated,
		"response": userResponse(userCreated),
	})
}

// GetUsers retrieves all users
func (server *Server) GetUsers(c *gin.Context) {
	user := models.User{}

	users, err := user.FindAllUsers(server.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No users found"})
		return
	}

	userResponses := make([]map[string]interface{}, len(*users))
	for i := range *users {
		userResponses[i] = userResponse(&(*users)[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": userResponses,
	})
}

// GetUser retrieves a user by ID
func (server *Server) GetUser(c *gin.Context) {
	userID := c.Param("id")

	uid, err := strconv.ParseUint(userID, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	user := models.User{}

	userGotten, err := user.FindUserByID(server.DB, uint(uid))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": userResponse(userGotten),
	})
}

// UpdateAvatar allows a user to update their avatar image
func (server *Server) UpdateAvatar(c *gin.Context) {
	userID := c.Param("id")
	uid, err := strconv.ParseUint(userID, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	tokenID, exists := c.Get("userID")
	if !exists || tokenID != uint(uid) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file"})
		return
	}

	avatarURL, err := uploadImage(file, "UserProfilePics")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := models.User{AvatarPath: avatarURL}
	updatedUser, err := user.UpdateAUserAvatar(server.DB, uint(uid))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot save image, please try again later"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": userResponse(updatedUser)})
}

// UpdateUser allows a user to update their email and password
func (server *Server) UpdateUser(c *gin.Context) {
	userID := c.Param("id")

	uid, err := strconv.ParseUint(userID, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	tokenID, exists := c.Get("userID")
	if !exists || tokenID != uint(uid) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var requestBody map[string]string
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot parse request body"})
		return
	}

	formerUser := models.User{}
	err = server.DB.Model(&models.User{}).Where("id = ?", uint(uid)).Take(&formerUser).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	newUser := models.User{}
	newUser.Username = formerUser.Username // Usernames are immutable

	// Handle password change if requested
	if currentPassword, ok := requestBody["current_password"]; ok {
		newPassword, ok := requestBody["new_password"]
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "New password is required"})
			return
		}
		if len(newPassword) < 6 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password should be at least 6 characters"})
			return
		}
		err = security.VerifyPassword(formerUser.Password, currentPassword)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Current password is incorrect"})
			return
		}
		newUser.Password = newPassword
	}

	// Update email if provided
	if email, ok := requestBody["email"]; ok {
		newUser.Email = email
	} else {
		newUser.Email = formerUser.Email
	}

	newUser.Prepare()
	errorMessages := newUser.Validate("update")
	if len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errorMessages})
		return
	}

	updatedUser, err := newUser.UpdateAUser(server.DB, uint(uid))
	if err != nil {
		formattedError := formaterror.FormatError(err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"errors": formattedError})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": userResponse(updatedUser),
	})
}

// DeleteUser deletes a user and their predictions
func (server *Server) DeleteUser(c *gin.Context) {
	userID := c.Param("id")

	uid, err := strconv.ParseUint(userID, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	tokenID, exists := c.Get("userID")
	if !exists || tokenID != uint(uid) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user := models.User{}
	_, err = user.DeleteAUser(server.DB, uint(uid))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Please try again later"})
		return
	}

	invalidateLeaderboardCache()

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": "User deleted",
	})
}
