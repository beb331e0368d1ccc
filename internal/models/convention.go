package models

import (
	"time"

	"piecon/backend/pkg/dateformat"

	"gorm.io/gorm"
)

// Convention represents one instance of the convention (e.g. "PieCon II").
// Conventions are created by administrators only; pies and games reference
// the convention they were submitted for.
type Convention struct {
	gorm.Model
	RomanNum  string    `gorm:"size:10;not null"`
	Tagline   string    `gorm:"size:200"`
	StartDate time.Time `gorm:"not null;index"`
	EndDate   time.Time `gorm:"not null"`
}

// DisplayDates returns the compact date range for the convention,
// e.g. "April 20th - 22nd, 2018".
func (c *Convention) DisplayDates() string {
	return dateformat.ShortRange(c.StartDate, c.EndDate)
}

// DisplayDatesLong returns the full date range with weekday names,
// e.g. "Friday, April 20th - Sunday, April 22nd, 2018".
func (c *Convention) DisplayDatesLong() string {
	return dateformat.LongRange(c.StartDate, c.EndDate)
}

// CurrentConvention picks the convention with the latest start date.
// Ties on start date go to the highest ID so the result never depends
// on slice order. The second return is false when no conventions exist;
// callers treat that as "nothing is publicly visible", not as an error.
func CurrentConvention(conventions []Convention) (Convention, bool) {
	if len(conventions) == 0 {
		return Convention{}, false
	}
	current := conventions[0]
	for _, c := range conventions[1:] {
		if c.StartDate.After(current.StartDate) ||
			(c.StartDate.Equal(current.StartDate) && c.ID > current.ID) {
			current = c
		}
	}
	return current, true
}
