package handler

import (
	"fmt"
	"net/http"
	"testing"

	"piecon/backend/internal/database"
	"piecon/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCurrentConventionNoneExists(t *testing.T) {
	router := setupTest(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/conventions/current", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	resp := decodeBody[ErrorResponse](t, w)
	assert.Equal(t, "No current convention", resp.Error)
}

func TestGetCurrentConventionPicksLatestStart(t *testing.T) {
	router := setupTest(t)
	seedConvention(t, "I", "OldCon", -365)
	seedConvention(t, "II", "NewCon", 10)

	w := doRequest(t, router, http.MethodGet, "/api/v1/conventions/current", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[ConventionResponse](t, w)
	assert.Equal(t, "II", resp.RomanNum)
	assert.Equal(t, "NewCon", resp.Tagline)
	assert.NotEmpty(t, resp.DisplayDates)
	assert.NotEmpty(t, resp.DisplayDatesLong)
}

func TestCreateConventionRendersDateRanges(t *testing.T) {
	router := setupTest(t)
	_, adminToken := createTestUser(t, "admin", "admin")

	input := ConventionInput{
		RomanNum:  "II",
		Tagline:   "The Second Slice",
		StartDate: "2018-04-20",
		EndDate:   "2018-04-22",
	}
	w := doRequest(t, router, http.MethodPost, "/api/v1/admin/conventions", adminToken, input)
	require.Equal(t, http.StatusCreated, w.Code)

	resp := decodeBody[ConventionResponse](t, w)
	assert.Equal(t, "April 20th - 22nd, 2018", resp.DisplayDates)
	assert.Equal(t, "Friday, April 20th - Sunday, April 22nd, 2018", resp.DisplayDatesLong)
}

func TestCreateConventionAcrossMonths(t *testing.T) {
	router := setupTest(t)
	_, adminToken := createTestUser(t, "admin", "admin")

	input := ConventionInput{
		RomanNum:  "III",
		StartDate: "2018-04-30",
		EndDate:   "2018-05-02",
	}
	w := doRequest(t, router, http.MethodPost, "/api/v1/admin/conventions", adminToken, input)
	require.Equal(t, http.StatusCreated, w.Code)

	resp := decodeBody[ConventionResponse](t, w)
	assert.Equal(t, "April 30th - May 2nd, 2018", resp.DisplayDates)
}

func TestCreateConventionRejectsEndBeforeStart(t *testing.T) {
	router := setupTest(t)
	_, adminToken := createTestUser(t, "admin", "admin")

	input := ConventionInput{
		RomanNum:  "IV",
		StartDate: "2019-04-22",
		EndDate:   "2019-04-20",
	}
	w := doRequest(t, router, http.MethodPost, "/api/v1/admin/conventions", adminToken, input)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateConventionRejectsBadDateFormat(t *testing.T) {
	router := setupTest(t)
	_, adminToken := createTestUser(t, "admin", "admin")

	input := ConventionInput{
		RomanNum:  "IV",
		StartDate: "April 20, 2019",
		EndDate:   "2019-04-22",
	}
	w := doRequest(t, router, http.MethodPost, "/api/v1/admin/conventions", adminToken, input)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConventionAdminEndpointsRequireAdmin(t *testing.T) {
	router := setupTest(t)
	_, userToken := createTestUser(t, "plainuser", "user")

	input := ConventionInput{RomanNum: "II", StartDate: "2018-04-20", EndDate: "2018-04-22"}

	w := doRequest(t, router, http.MethodPost, "/api/v1/admin/conventions", userToken, input)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/admin/conventions", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/v1/admin/conventions", "", input)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateConvention(t *testing.T) {
	router := setupTest(t)
	_, adminToken := createTestUser(t, "admin", "admin")
	con := seedConvention(t, "II", "NewCon", 10)

	input := ConventionInput{
		RomanNum:  "II",
		Tagline:   "Rescheduled",
		StartDate: "2018-04-27",
		EndDate:   "2018-04-29",
	}
	w := doRequest(t, router, http.MethodPut, fmt.Sprintf("/api/v1/admin/conventions/%d", con.ID), adminToken, input)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[ConventionResponse](t, w)
	assert.Equal(t, "Rescheduled", resp.Tagline)
	assert.Equal(t, "April 27th - 29th, 2018", resp.DisplayDates)
}

func TestDeleteConventionDetachesRecords(t *testing.T) {
	router := setupTest(t)
	user, _ := createTestUser(t, "testuser", "user")
	_, adminToken := createTestUser(t, "admin", "admin")
	con := seedConvention(t, "II", "NewCon", 10)
	pie := seedPie(t, "pie", user.ID, &con.ID, 0)
	game := seedGame(t, "game", user.ID, &con.ID, false, 0)

	w := doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/admin/conventions/%d", con.ID), adminToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// The records survive with their convention reference cleared.
	var keptPie models.Pie
	require.NoError(t, database.DB.First(&keptPie, pie.ID).Error)
	assert.Nil(t, keptPie.ConventionID)

	var keptGame models.Game
	require.NoError(t, database.DB.First(&keptGame, game.ID).Error)
	assert.Nil(t, keptGame.ConventionID)

	w = doRequest(t, router, http.MethodGet, "/api/v1/conventions/current", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListConventionsNewestFirst(t *testing.T) {
	router := setupTest(t)
	_, adminToken := createTestUser(t, "admin", "admin")
	seedConvention(t, "I", "OldCon", -365)
	seedConvention(t, "II", "NewCon", 10)

	w := doRequest(t, router, http.MethodGet, "/api/v1/admin/conventions", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[[]ConventionResponse](t, w)
	require.Len(t, resp, 2)
	assert.Equal(t, "II", resp[0].RomanNum)
	assert.Equal(t, "I", resp[1].RomanNum)
}
