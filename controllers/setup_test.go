package controllers_test

import (
	"testing"
	"time"

	"Predictor/auth"
	"Predictor/controllers"
	"Predictor/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer builds a Server backed by an in-memory SQLite database with
// the full schema migrated.
func newTestServer(t *testing.T) (*controllers.Server, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("API_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{}, &models.Player{},
		&models.Match{}, &models.Night{},
		&models.Prediction{}, &models.Result{},
		&models.BracketEntry{}, &models.NightResult{},
		&models.ResetPassword{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate schema: %v", err)
	}

	server := &controllers.Server{DB: db}
	return server, gin.Default()
}

// createTestUser inserts a user directly and returns it with a valid bearer
// token. Passwords are hashed by the model's BeforeSave hook.
func createTestUser(t *testing.T, db *gorm.DB, username, email string, isAdmin bool) (models.User, string) {
	t.Helper()
	user := models.User{
		Username: username,
		Email:    email,
		Password: "password123",
		IsAdmin:  isAdmin,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	token, err := auth.CreateToken(user.ID)
	if err != nil {
		t.Fatalf("Failed to create token: %v", err)
	}
	return user, token
}

// createTestNight inserts a night whose cutoff is an hour away.
func createTestNight(t *testing.T, db *gorm.DB, name string) models.Night {
	t.Helper()
	night := models.Night{
		Name:   name,
		Venue:  "Test Arena",
		Cutoff: time.Now().Add(time.Hour),
		QF1P1: "Luke Humphries", QF1P2: "Stephen Bunting",
		QF2P1: "Luke Littler", QF2P2: "Josh Rock",
		QF3P1: "Michael van Gerwen", QF3P2: "Chris Dobey",
		QF4P1: "Gerwyn Price", QF4P2: "Nathan Aspinall",
	}
	if err := db.Create(&night).Error; err != nil {
		t.Fatalf("Failed to create test night: %v", err)
	}
	return night
}

// createTestMatch inserts a fixture starting an hour from now.
func createTestMatch(t *testing.T, db *gorm.DB, key string) models.Match {
	t.Helper()
	start := time.Now().Add(time.Hour)
	match := models.Match{
		MatchKey:  key,
		Player1:   "Luke Humphries",
		Player2:   "Luke Littler",
		StartTime: &start,
	}
	if err := db.Create(&match).Error; err != nil {
		t.Fatalf("Failed to create test match: %v", err)
	}
	return match
}
