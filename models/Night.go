package models

import (
	"html"
	"strings"
	"time"

	"Predictor/scoring"

	"gorm.io/gorm"
)

// Night is one evening's bracket: four quarter-final pairings at a venue
// with a single prediction cutoff. Published nights are immutable.
type Night struct {
	ID     uint      `gorm:"primary_key;autoIncrement" json:"id"`
	Name   string    `gorm:"size:255;not null;unique" json:"name"`
	Venue  string    `gorm:"size:255;not null" json:"venue"`
	Cutoff time.Time `gorm:"not null" json:"cutoff"`

	QF1P1 string `gorm:"size:255;not null" json:"qf1_p1"`
	QF1P2 string `gorm:"size:255;not null" json:"qf1_p2"`
	QF2P1 string `gorm:"size:255;not null" json:"qf2_p1"`
	QF2P2 string `gorm:"size:255;not null" json:"qf2_p2"`
	QF3P1 string `gorm:"size:255;not null" json:"qf3_p1"`
	QF3P2 string `gorm:"size:255;not null" json:"qf3_p2"`
	QF4P1 string `gorm:"size:255;not null" json:"qf4_p1"`
	QF4P2 string `gorm:"size:255;not null" json:"qf4_p2"`

	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (n *Night) Prepare() {
	n.Name = html.EscapeString(strings.TrimSpace(n.Name))
	n.Venue = html.EscapeString(strings.TrimSpace(n.Venue))
	for _, field := range []*string{&n.QF1P1, &n.QF1P2, &n.QF2P1, &n.QF2P2, &n.QF3P1, &n.QF3P2, &n.QF4P1, &n.QF4P2} {
		*field = html.EscapeString(strings.TrimSpace(*field))
	}
	n.CreatedAt = time.Now()
}

func (n *Night) Validate() map[string]string {
	errorMessages := make(map[string]string)
	if n.Name == "" {
		errorMessages["Required_name"] = "Required Name"
	}
	if n.Venue == "" {
		errorMessages["Required_venue"] = "Required Venue"
	}
	if n.Cutoff.IsZero() {
		errorMessages["Required_cutoff"] = "Required Cutoff"
	}
	for _, pair := range n.QuarterFinals() {
		if pair.A == "" || pair.B == "" {
			errorMessages["Required_pairings"] = "All four quarter-final pairings are required"
			break
		}
		if pair.A == pair.B {
			errorMessages["Invalid_pairings"] = "A player cannot face themselves"
			break
		}
	}
	return errorMessages
}

// QuarterFinals returns the night's pairings in resolver form.
func (n *Night) QuarterFinals() [4]scoring.Pair {
	return [4]scoring.Pair{
		{A: n.QF1P1, B: n.QF1P2},
		{A: n.QF2P1, B: n.QF2P2},
		{A: n.QF3P1, B: n.QF3P2},
		{A: n.QF4P1, B: n.QF4P2},
	}
}

func (n *Night) SaveNight(db *gorm.DB) (*Night, error) {
	if err := db.Create(n).Error; err != nil {
		return nil, err
	}
	return n, nil
}

func (n *Night) FindAllNights(db *gorm.DB) ([]Night, error) {
	var nights []Night
	err := db.Order("cutoff ASC").Find(&nights).Error
	if err != nil {
		return nil, err
	}
	return nights, nil
}

func (n *Night) FindNightByID(db *gorm.DB, id uint) (*Night, error) {
	err := db.Where("id = ?", id).Take(n).Error
	if err != nil {
		return nil, err
	}
	return n, nil
}
