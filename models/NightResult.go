package models

import (
	"time"

	"Predictor/scoring"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NightResult is the admin-entered official outcome of a night. One row per
// night; re-publishing overwrites the previous row, matching how the admin
// corrects a night after the fact.
type NightResult struct {
	ID      uint  `gorm:"primary_key;autoIncrement" json:"id"`
	Night   Night `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	NightID uint  `gorm:"not null;uniqueIndex" json:"night_id"`

	QF1   string `gorm:"size:255;not null" json:"qf1"`
	QF2   string `gorm:"size:255;not null" json:"qf2"`
	QF3   string `gorm:"size:255;not null" json:"qf3"`
	QF4   string `gorm:"size:255;not null" json:"qf4"`
	SF1   string `gorm:"size:255;not null" json:"sf1"`
	SF2   string `gorm:"size:255;not null" json:"sf2"`
	Final string `gorm:"size:255;not null" json:"final"`

	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// Picks converts the stored row into resolver form.
func (r *NightResult) Picks() scoring.Picks {
	return scoring.Picks{
		QF1: r.QF1, QF2: r.QF2, QF3: r.QF3, QF4: r.QF4,
		SF1: r.SF1, SF2: r.SF2,
		Final: r.Final,
	}
}

// SetPicks fills the slot columns from resolver form.
func (r *NightResult) SetPicks(p scoring.Picks) {
	r.QF1, r.QF2, r.QF3, r.QF4 = p.QF1, p.QF2, p.QF3, p.QF4
	r.SF1, r.SF2 = p.SF1, p.SF2
	r.Final = p.Final
}

// PublishNightResult upserts the official winners for a night.
func (r *NightResult) PublishNightResult(db *gorm.DB) (*NightResult, error) {
	r.CreatedAt = time.Now()
	r.UpdatedAt = time.Now()
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "night_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"qf1", "qf2", "qf3", "qf4", "sf1", "sf2", "final", "updated_at"}),
	}).Create(r).Error
	if err != nil {
		return nil, err
	}
	return r, nil
}

// NightHasResult reports whether the night is permanently closed.
func NightHasResult(db *gorm.DB, nightID uint) (bool, error) {
	var count int64
	err := db.Model(&NightResult{}).Where("night_id = ?", nightID).Count(&count).Error
	return count > 0, err
}

// NightResultRows loads all official night results in scoring shape.
func NightResultRows(db *gorm.DB) ([]scoring.NightResultRow, error) {
	var results []NightResult
	err := db.Preload("Night").Find(&results).Error
	if err != nil {
		return nil, err
	}
	rows := make([]scoring.NightResultRow, 0, len(results))
	for _, result := range results {
		rows = append(rows, scoring.NightResultRow{
			Night: result.Night.Name,
			Picks: result.Picks(),
		})
	}
	return rows, nil
}
