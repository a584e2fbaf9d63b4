package controllers

import (
	"net/http"

	"Predictor/mailer"
	"Predictor/models"
	"Predictor/utils/formaterror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ForgotPassword emails a one-time reset token to the given address. It
// answers 200 whether or not the address is registered.
func (server *Server) ForgotPassword(c *gin.Context) {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  "Cannot unmarshal body",
		})
		return
	}

	user := models.User{Email: input.Email}
	user.Prepare()
	if errorMessages := user.Validate("forgotpassword"); len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errorMessages,
		})
		return
	}

	err := server.DB.Model(models.User{}).Where("lower(email) = ?", user.Email).Take(&models.User{}).Error
	if err == nil {
		resetPassword := models.ResetPassword{
			Email: user.Email,
			Token: uuid.NewString(),
		}
		resetPassword.Prepare()
		if _, err := resetPassword.SaveDetails(server.DB); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status": http.StatusInternalServerError,
				"error":  "Please try again later",
			})
			return
		}
		if err := mailer.SendResetPassword(resetPassword.Email, resetPassword.Token); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status": http.StatusInternalServerError,
				"error":  "Could not send reset email, please try again later",
			})
			return
		}
	}

	// Do not reveal whether the email exists.
	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": "If that email is registered, a reset link is on its way",
	})
}

// ResetPassword exchanges a valid token for a new password.
func (server *Server) ResetPassword(c *gin.Context) {
	var input struct {
		Token          string `json:"token"`
		NewPassword    string `json:"new_password"`
		RetypePassword string `json:"retype_password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  "Cannot unmarshal body",
		})
		return
	}
	if input.Token == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  "Required reset token",
		})
		return
	}
	if len(input.NewPassword) < 6 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  "Password should be at least 6 characters",
		})
		return
	}
	if input.NewPassword != input.RetypePassword {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  "Passwords do not match",
		})
		return
	}

	resetPassword := models.ResetPassword{}
	details, err := resetPassword.FindEmailByToken(server.DB, input.Token)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  "Invalid or expired reset token",
		})
		return
	}

	user := models.User{Email: details.Email, Password: input.NewPassword}
	if err := user.UpdatePassword(server.DB); err != nil {
		formattedError := formaterror.FormatError(err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  formattedError,
		})
		return
	}
	if _, err := details.DeleteDetails(server.DB); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Please try again later",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": "Password updated, please log in",
	})
}
