package seed

import (
	"log"
	"time"

	"Predictor/models"

	"gorm.io/gorm"
)

var users = []models.User{
	{
		Username: "steven",
		Email:    "steven@example.com",
		Password: "password",
	},
	{
		Username: "martin",
		Email:    "luther@example.com",
		Password: "password",
	},
}

var players = []models.Player{
	{Name: "Luke Humphries"},
	{Name: "Luke Littler"},
	{Name: "Michael van Gerwen"},
	{Name: "Nathan Aspinall"},
	{Name: "Gerwyn Price"},
	{Name: "Chris Dobey"},
	{Name: "Josh Rock"},
	{Name: "Stephen Bunting"},
}

var nights = []models.Night{
	{
		Name:   "Night 1",
		Venue:  "Utilita Arena Belfast",
		Cutoff: time.Date(2026, time.February, 5, 19, 0, 0, 0, time.UTC),
		QF1P1:  "Luke Humphries",
		QF1P2:  "Stephen Bunting",
		QF2P1:  "Luke Littler",
		QF2P2:  "Josh Rock",
		QF3P1:  "Michael van Gerwen",
		QF3P2:  "Chris Dobey",
		QF4P1:  "Gerwyn Price",
		QF4P2:  "Nathan Aspinall",
	},
	{
		Name:   "Night 2",
		Venue:  "3Arena Dublin",
		Cutoff: time.Date(2026, time.February, 12, 19, 0, 0, 0, time.UTC),
		QF1P1:  "Luke Littler",
		QF1P2:  "Gerwyn Price",
		QF2P1:  "Luke Humphries",
		QF2P2:  "Chris Dobey",
		QF3P1:  "Nathan Aspinall",
		QF3P2:  "Josh Rock",
		QF4P1:  "Michael van Gerwen",
		QF4P2:  "Stephen Bunting",
	},
}

var matches = []models.Match{
	{MatchKey: "1", Player1: "Luke Humphries", Player2: "Luke Littler"},
	{MatchKey: "2", Player1: "Michael van Gerwen", Player2: "Gerwyn Price"},
}

// Load wipes and reseeds the development database. Never call it against
// production data.
func Load(db *gorm.DB) {
	err := db.Migrator().DropTable(
		&models.Prediction{}, &models.Result{},
		&models.BracketEntry{}, &models.NightResult{},
		&models.Match{}, &models.Night{},
		&models.Player{}, &models.User{},
	)
	if err != nil {
		log.Fatalf("cannot drop table: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{}, &models.Player{},
		&models.Match{}, &models.Night{},
		&models.Prediction{}, &models.Result{},
		&models.BracketEntry{}, &models.NightResult{},
	)
	if err != nil {
		log.Fatalf("cannot migrate table: %v", err)
	}

	for i := range users {
		users[i].Prepare()
		if err := db.Create(&users[i]).Error; err != nil {
			log.Fatalf("cannot seed users table: %v", err)
		}
	}
	for i := range players {
		players[i].Prepare()
		if err := db.Create(&players[i]).Error; err != nil {
			log.Fatalf("cannot seed players table: %v", err)
		}
	}
	for i := range nights {
		nights[i].Prepare()
		if err := db.Create(&nights[i]).Error; err != nil {
			log.Fatalf("cannot seed nights table: %v", err)
		}
	}
	for i := range matches {
		matches[i].Prepare()
		if err := db.Create(&matches[i]).Error; err != nil {
			log.Fatalf("cannot seed matches table: %v", err)
		}
	}
}
