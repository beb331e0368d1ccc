package models

import (
	"time"

	"gorm.io/gorm"
)

// Game represents a tabletop game session an attendee wants to run.
type Game struct {
	gorm.Model
	Title       string `gorm:"size:200;not null"`
	OwnerID     uint   `gorm:"not null;index"`
	Owner       User   `gorm:"foreignKey:OwnerID"`
	Gamemaster  string `gorm:"size:200"`
	System      string `gorm:"size:200"`
	NumPlayers  string `gorm:"size:6"`
	Length      string `gorm:"size:2"`
	Description string
	DateAdded   time.Time `gorm:"not null;index"`

	// Set by admins to pull a game from the public list without deleting it.
	SuppressFromDisplay bool `gorm:"not null;default:false"`

	ConventionID *uint       `gorm:"index"`
	Convention   *Convention `gorm:"foreignKey:ConventionID;constraint:OnDelete:SET NULL"`
}

// IsDisplayed reports whether the game belongs on the public game list:
// it must be tied to the current convention and not suppressed. Either
// condition failing hides it.
func (g *Game) IsDisplayed(current *Convention) bool {
	if g.SuppressFromDisplay {
		return false
	}
	return current != nil && g.ConventionID != nil && *g.ConventionID == current.ID
}
