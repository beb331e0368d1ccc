package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func uintPtr(v uint) *uint { return &v }

func testCons() (old, current Convention) {
	old = conOn(1, "I", time.Date(2017, time.April, 21, 0, 0, 0, 0, time.UTC))
	current = conOn(2, "II", time.Date(2018, time.April, 20, 0, 0, 0, 0, time.UTC))
	return old, current
}

func TestPieDisplayedForCurrentConvention(t *testing.T) {
	_, current := testCons()
	pie := Pie{Text: "rhubarb", ConventionID: uintPtr(current.ID)}
	assert.True(t, pie.IsDisplayed(&current))
}

func TestPieHiddenForOldConvention(t *testing.T) {
	old, current := testCons()
	pie := Pie{Text: "last year's pie", ConventionID: uintPtr(old.ID)}
	assert.False(t, pie.IsDisplayed(&current))
}

func TestPieHiddenWithoutConvention(t *testing.T) {
	_, current := testCons()
	pie := Pie{Text: "orphaned pie"}
	assert.False(t, pie.IsDisplayed(&current))
}

func TestPieHiddenWhenNoCurrentConvention(t *testing.T) {
	pie := Pie{Text: "anything", ConventionID: uintPtr(1)}
	assert.False(t, pie.IsDisplayed(nil))
}

func TestGameDisplayedForCurrentConvention(t *testing.T) {
	_, current := testCons()
	game := Game{Title: "Dungeon Crawl", ConventionID: uintPtr(current.ID)}
	assert.True(t, game.IsDisplayed(&current))
}

func TestGameHiddenWhenSuppressed(t *testing.T) {
	_, current := testCons()
	game := Game{
		Title:               "Dungeon Crawl",
		ConventionID:        uintPtr(current.ID),
		SuppressFromDisplay: true,
	}
	assert.False(t, game.IsDisplayed(&current))
}

func TestGameHiddenForOldConventionEvenWhenNotSuppressed(t *testing.T) {
	old, current := testCons()
	game := Game{Title: "Old One-Shot", ConventionID: uintPtr(old.ID)}
	assert.False(t, game.IsDisplayed(&current))
}

func TestGameHiddenWithoutConvention(t *testing.T) {
	_, current := testCons()
	game := Game{Title: "Unassigned"}
	assert.False(t, game.IsDisplayed(&current))
}

func TestDisplayEligibilityIsIdempotent(t *testing.T) {
	// Same record, same convention snapshot: the answer never changes
	// between evaluations. There is no wall-clock input.
	_, current := testCons()
	game := Game{
		Title:        "Repeatable",
		DateAdded:    time.Now().Add(-time.Hour * 24 * 400),
		ConventionID: uintPtr(current.ID),
	}
	first := game.IsDisplayed(&current)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, game.IsDisplayed(&current))
	}
	assert.True(t, first)
}
