package handler

import (
	"errors"
	"net/http"
	"time"

	"piecon/backend/internal/database"
	"piecon/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// ConventionInput defines the structure for creating or updating a convention.
// Dates are plain calendar dates in YYYY-MM-DD form.
type ConventionInput struct {
	RomanNum  string `json:"roman_num" binding:"required" example:"II"`
	Tagline   string `json:"tagline" example:"The Second Slice"`
	StartDate string `json:"start_date" binding:"required" example:"2018-04-20"`
	EndDate   string `json:"end_date" binding:"required" example:"2018-04-22"`
}

// ConventionResponse defines the structure for a convention, including the
// pre-rendered date range strings the presentation layer shows verbatim.
type ConventionResponse struct {
	ID               uint   `json:"id" example:"2"`
	RomanNum         string `json:"roman_num" example:"II"`
	Tagline          string `json:"tagline" example:"The Second Slice"`
	StartDate        string `json:"start_date" example:"2018-04-20"`
	EndDate          string `json:"end_date" example:"2018-04-22"`
	DisplayDates     string `json:"display_dates" example:"April 20th - 22nd, 2018"`
	DisplayDatesLong string `json:"display_dates_long" example:"Friday, April 20th - Sunday, April 22nd, 2018"`
}

func newConventionResponse(con models.Convention) ConventionResponse {
	return ConventionResponse{
		ID:               con.ID,
		RomanNum:         con.RomanNum,
		Tagline:          con.Tagline,
		StartDate:        con.StartDate.Format("2006-01-02"),
		EndDate:          con.EndDate.Format("2006-01-02"),
		DisplayDates:     con.DisplayDates(),
		DisplayDatesLong: con.DisplayDatesLong(),
	}
}

// endregion

// region --- Current convention ---

// currentConvention resolves the convention with the latest start date,
// breaking start-date ties on the highest ID. The boolean is false when
// no conventions exist; every caller must handle that as "nothing is
// publicly visible", never as an error.
func currentConvention() (models.Convention, bool) {
	var con models.Convention
	err := database.DB.Order("start_date DESC, id DESC").First(&con).Error
	if err != nil {
		return models.Convention{}, false
	}
	return con, true
}

// GetCurrentConvention godoc
// @Summary      Get the current convention
// @Description  Returns the convention with the latest start date, with formatted date ranges.
// @Tags         conventions
// @Produce      json
// @Success      200  {object}  ConventionResponse
// @Failure      404  {object}  ErrorResponse "No conventions exist yet"
// @Router       /conventions/current [get]
func GetCurrentConvention(c *gin.Context) {
	con, ok := currentConvention()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No current convention"})
		return
	}
	c.JSON(http.StatusOK, newConventionResponse(con))
}

// endregion

// region --- Admin Handlers ---

func parseConventionDates(input ConventionInput) (start, end time.Time, err error) {
	start, err = time.Parse("2006-01-02", input.StartDate)
	if err != nil {
		return start, end, errors.New("start_date must be in YYYY-MM-DD format")
	}
	end, err = time.Parse("2006-01-02", input.EndDate)
	if err != nil {
		return start, end, errors.New("end_date must be in YYYY-MM-DD format")
	}
	if end.Before(start) {
		return start, end, errors.New("end_date must not be before start_date")
	}
	return start, end, nil
}

// ListConventions godoc
// @Summary      List all conventions
// @Description  Returns every convention, newest start date first.
// @Tags         admin-conventions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ConventionResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Router       /admin/conventions [get]
func ListConventions(c *gin.Context) {
	var conventions []models.Convention
	if err := database.DB.Order("start_date DESC, id DESC").Find(&conventions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve conventions"})
		return
	}

	responses := make([]ConventionResponse, 0, len(conventions))
	for _, con := range conventions {
		responses = append(responses, newConventionResponse(con))
	}
	c.JSON(http.StatusOK, responses)
}

// CreateConvention godoc
// @Summary      Create a convention
// @Description  Creates a new convention instance. The one with the latest start date becomes current.
// @Tags         admin-conventions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body ConventionInput true "Convention Info"
// @Success      201  {object}  ConventionResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Router       /admin/conventions [post]
func CreateConvention(c *gin.Context) {
	var input ConventionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, end, err := parseConventionDates(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	con := models.Convention{
		RomanNum:  input.RomanNum,
		Tagline:   input.Tagline,
		StartDate: start,
		EndDate:   end,
	}
	if err := database.DB.Create(&con).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create convention"})
		return
	}

	c.JSON(http.StatusCreated, newConventionResponse(con))
}

// UpdateConvention godoc
// @Summary      Update a convention
// @Description  Updates a convention's label, tagline and dates.
// @Tags         admin-conventions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Convention ID"
// @Param        input body      ConventionInput true  "New Convention Info"
// @Success      200   {object}  ConventionResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse "Admin access required"
// @Failure      404   {object}  ErrorResponse "Convention not found"
// @Router       /admin/conventions/{id} [put]
func UpdateConvention(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var con models.Convention
	if err := database.DB.First(&con, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Convention not found"})
		return
	}

	var input ConventionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, end, err := parseConventionDates(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	con.RomanNum = input.RomanNum
	con.Tagline = input.Tagline
	con.StartDate = start
	con.EndDate = end

	if err := database.DB.Save(&con).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update convention"})
		return
	}

	c.JSON(http.StatusOK, newConventionResponse(con))
}

// DeleteConvention godoc
// @Summary      Delete a convention
// @Description  Deletes a convention. Pies and games that referenced it keep existing with no convention.
// @Tags         admin-conventions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Convention ID"
// @Success      204  "No Content"
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse "Convention not found"
// @Router       /admin/conventions/{id} [delete]
func DeleteConvention(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var con models.Convention
	if err := database.DB.First(&con, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Convention not found"})
		return
	}

	// Detach records first so they fall back to "no convention" rather
	// than pointing at a soft-deleted row.
	if err := database.DB.Model(&models.Pie{}).Where("convention_id = ?", con.ID).Update("convention_id", nil).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to detach pies"})
		return
	}
	if err := database.DB.Model(&models.Game{}).Where("convention_id = ?", con.ID).Update("convention_id", nil).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to detach games"})
		return
	}

	if err := database.DB.Delete(&con).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete convention"})
		return
	}

	c.Status(http.StatusNoContent)
}

// endregion
