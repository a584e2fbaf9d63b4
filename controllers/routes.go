package controllers

import (
	"net/http"

	"Predictor/middlewares"

	"github.com/gin-gonic/gin"
)

func (s *Server) initializeRoutes() {

	s.Router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRequired := middlewares.TokenAuthMiddleware(s.DB)
	adminOnly := middlewares.AdminOnlyMiddleware()

	v1 := s.Router.Group("/api/v1")
	{
		// Auth routes
		v1.POST("/login", middlewares.LoginRateLimitMiddleware(), s.Login)
		v1.POST("/password/forgot", middlewares.LoginRateLimitMiddleware(), s.ForgotPassword)
		v1.POST("/password/reset", middlewares.LoginRateLimitMiddleware(), s.ResetPassword)

		// Users routes
		v1.POST("/users", s.CreateUser)
		v1.GET("/users", s.GetUsers)
		v1.GET("/users/:id", s.GetUser)
		v1.PUT("/users/:id", authRequired, s.UpdateUser)
		v1.PUT("/users/:id/avatar", authRequired, s.UpdateAvatar)
		v1.DELETE("/users/:id", authRequired, s.DeleteUser)

		// Player roster
		v1.GET("/players", s.GetPlayers)
		v1.POST("/players", authRequired, adminOnly, s.CreatePlayer)
		v1.PUT("/players/:id/image", authRequired, adminOnly, s.UpdatePlayerImage)

		// Flat fixtures and their predictions
		v1.GET("/matches", authRequired, s.GetMatches)
		v1.GET("/matches/:key", authRequired, s.GetMatch)
		v1.POST("/matches", authRequired, adminOnly, s.CreateMatch)
		v1.POST("/matches/:key/predictions", authRequired, s.SubmitPrediction)
		v1.POST("/matches/:key/result", authRequired, adminOnly, s.PublishResult)
		v1.GET("/users/:id/predictions", authRequired, s.GetUserPredictions)

		// Nights and their bracket entries
		v1.GET("/nights", authRequired, s.GetNights)
		v1.GET("/nights/:id", authRequired, s.GetNight)
		v1.POST("/nights", authRequired, adminOnly, s.CreateNight)
		v1.POST("/nights/:id/options", authRequired, s.BracketOptions)
		v1.POST("/nights/:id/entries", authRequired, s.SubmitBracketEntry)
		v1.POST("/nights/:id/result", authRequired, adminOnly, s.PublishNightResult)
		v1.GET("/users/:id/entries", authRequired, s.GetUserEntries)

		// Leaderboards
		v1.GET("/leaderboard", s.GetLeaderboard)
		v1.GET("/leaderboard/matches", s.GetMatchLeaderboard)
		v1.GET("/leaderboard/nights", s.GetNightLeaderboard)
	}
}
