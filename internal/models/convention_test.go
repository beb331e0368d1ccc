package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func conOn(id uint, romanNum string, start time.Time) Convention {
	return Convention{
		Model:     gorm.Model{ID: id},
		RomanNum:  romanNum,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 3),
	}
}

func TestCurrentConventionEmpty(t *testing.T) {
	_, ok := CurrentConvention(nil)
	assert.False(t, ok)

	_, ok = CurrentConvention([]Convention{})
	assert.False(t, ok)
}

func TestCurrentConventionSingle(t *testing.T) {
	only := conOn(1, "I", time.Date(2017, time.April, 21, 0, 0, 0, 0, time.UTC))
	current, ok := CurrentConvention([]Convention{only})
	assert.True(t, ok)
	assert.Equal(t, "I", current.RomanNum)
}

func TestCurrentConventionPicksLatestStart(t *testing.T) {
	old := conOn(1, "I", time.Date(2017, time.April, 21, 0, 0, 0, 0, time.UTC))
	newer := conOn(2, "II", time.Date(2018, time.April, 20, 0, 0, 0, 0, time.UTC))

	current, ok := CurrentConvention([]Convention{old, newer})
	assert.True(t, ok)
	assert.Equal(t, "II", current.RomanNum)

	// Order of the input slice must not matter.
	current, ok = CurrentConvention([]Convention{newer, old})
	assert.True(t, ok)
	assert.Equal(t, "II", current.RomanNum)
}

func TestCurrentConventionTieBreaksOnID(t *testing.T) {
	start := time.Date(2018, time.April, 20, 0, 0, 0, 0, time.UTC)
	a := conOn(3, "II", start)
	b := conOn(7, "III", start)

	current, ok := CurrentConvention([]Convention{a, b})
	assert.True(t, ok)
	assert.Equal(t, uint(7), current.ID)

	current, ok = CurrentConvention([]Convention{b, a})
	assert.True(t, ok)
	assert.Equal(t, uint(7), current.ID)
}

func TestConventionDisplayDates(t *testing.T) {
	con := Convention{
		RomanNum:  "II",
		StartDate: time.Date(2018, time.April, 20, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2018, time.April, 22, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, "April 20th - 22nd, 2018", con.DisplayDates())
	assert.Equal(t, "Friday, April 20th - Sunday, April 22nd, 2018", con.DisplayDatesLong())
}

func TestConventionDisplayDatesAcrossMonths(t *testing.T) {
	con := Convention{
		StartDate: time.Date(2018, time.April, 30, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2018, time.May, 2, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, "April 30th - May 2nd, 2018", con.DisplayDates())
}
