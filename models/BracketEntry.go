package models

import (
	"time"

	"Predictor/scoring"

	"gorm.io/gorm"
)

// BracketEntry is one user's submitted bracket for a night: a predicted
// winner for every QF, SF and Final slot. Only complete brackets are ever
// stored; the unique index on (user_id, night_id) makes the one-entry-per-
// night invariant atomic rather than a read-then-write race.
type BracketEntry struct {
	ID      uint  `gorm:"primary_key;autoIncrement" json:"id"`
	User    User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	UserID  uint  `gorm:"not null;uniqueIndex:idx_entry_user_night" json:"user_id"`
	Night   Night `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	NightID uint  `gorm:"not null;uniqueIndex:idx_entry_user_night" json:"night_id"`

	QF1   string `gorm:"size:255;not null" json:"qf1"`
	QF2   string `gorm:"size:255;not null" json:"qf2"`
	QF3   string `gorm:"size:255;not null" json:"qf3"`
	QF4   string `gorm:"size:255;not null" json:"qf4"`
	SF1   string `gorm:"size:255;not null" json:"sf1"`
	SF2   string `gorm:"size:255;not null" json:"sf2"`
	Final string `gorm:"size:255;not null" json:"final"`

	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (e *BracketEntry) Prepare() {
	e.User = User{}
	e.Night = Night{}
	e.CreatedAt = time.Now()
}

// Picks converts the stored row into resolver form.
func (e *BracketEntry) Picks() scoring.Picks {
	return scoring.Picks{
		QF1: e.QF1, QF2: e.QF2, QF3: e.QF3, QF4: e.QF4,
		SF1: e.SF1, SF2: e.SF2,
		Final: e.Final,
	}
}

// SetPicks fills the slot columns from resolver form.
func (e *BracketEntry) SetPicks(p scoring.Picks) {
	e.QF1, e.QF2, e.QF3, e.QF4 = p.QF1, p.QF2, p.QF3, p.QF4
	e.SF1, e.SF2 = p.SF1, p.SF2
	e.Final = p.Final
}

func (e *BracketEntry) SaveBracketEntry(db *gorm.DB) (*BracketEntry, error) {
	if err := db.Create(e).Error; err != nil {
		return nil, err
	}
	return e, nil
}

func (e *BracketEntry) FindUserEntries(db *gorm.DB, uid uint) ([]BracketEntry, error) {
	var entries []BracketEntry
	err := db.Where("user_id = ?", uid).Order("created_at ASC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// UserHasEntry is the fresh read-before-write check performed on submit.
func UserHasEntry(db *gorm.DB, uid, nightID uint) (bool, error) {
	var count int64
	err := db.Model(&BracketEntry{}).
		Where("user_id = ? AND night_id = ?", uid, nightID).
		Count(&count).Error
	return count > 0, err
}

// BracketRows loads every entry joined to username and night name, in the
// flat shape the scoring engine consumes.
func BracketRows(db *gorm.DB) ([]scoring.BracketRow, error) {
	var entries []BracketEntry
	err := db.Preload("User").Preload("Night").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	rows := make([]scoring.BracketRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, scoring.BracketRow{
			Username: entry.User.Username,
			Night:    entry.Night.Name,
			Picks:    entry.Picks(),
		})
	}
	return rows, nil
}
