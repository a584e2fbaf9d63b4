package models

import (
	"html"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Player is one roster entry. Fixtures and night pairings reference players
// by name; the image is shown on match cards.
type Player struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null;unique" json:"name"`
	ImageURL  string    `gorm:"size:255" json:"image_url"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (p *Player) Prepare() {
	p.Name = html.EscapeString(strings.TrimSpace(p.Name))
	p.ImageURL = strings.TrimSpace(p.ImageURL)
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
}

func (p *Player) Validate() map[string]string {
	errorMessages := make(map[string]string)
	if p.Name == "" {
		errorMessages["Required_name"] = "Required Name"
	}
	return errorMessages
}

func (p *Player) SavePlayer(db *gorm.DB) (*Player, error) {
	if err := db.Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Player) FindAllPlayers(db *gorm.DB) ([]Player, error) {
	var players []Player
	err := db.Order("name ASC").Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

func (p *Player) UpdatePlayerImage(db *gorm.DB, id uint) (*Player, error) {
	err := db.Model(&Player{}).Where("id = ?", id).Updates(map[string]interface{}{
		"image_url":  p.ImageURL,
		"updated_at": time.Now(),
	}).Error
	if err != nil {
		return nil, err
	}
	err = db.Where("id = ?", id).Take(p).Error
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ImageLookup maps player names to image URLs for match card rendering.
func ImageLookup(db *gorm.DB) (map[string]string, error) {
	var players []Player
	if err := db.Find(&players).Error; err != nil {
		return nil, err
	}
	lookup := make(map[string]string, len(players))
	for _, player := range players {
		if player.ImageURL != "" {
			lookup[player.Name] = player.ImageURL
		}
	}
	return lookup, nil
}
