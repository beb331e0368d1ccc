package models

import (
	"time"

	"gorm.io/gorm"
)

// Pie represents a pie or snack an attendee has signed up to bring.
type Pie struct {
	gorm.Model
	Text      string    `gorm:"size:200;not null"`
	DateAdded time.Time `gorm:"not null;index"`
	OwnerID   uint      `gorm:"not null;index"`
	Owner     User      `gorm:"foreignKey:OwnerID"`

	// Nullable so the pie survives its convention being deleted.
	ConventionID *uint       `gorm:"index"`
	Convention   *Convention `gorm:"foreignKey:ConventionID;constraint:OnDelete:SET NULL"`
}

// IsDisplayed reports whether the pie belongs on the public pie list:
// it must be tied to the current convention. A pie with no convention,
// or when no current convention exists, is never shown.
func (p *Pie) IsDisplayed(current *Convention) bool {
	return current != nil && p.ConventionID != nil && *p.ConventionID == current.ID
}
