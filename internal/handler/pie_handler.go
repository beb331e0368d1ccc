package handler

import (
	"net/http"
	"time"

	"piecon/backend/internal/database"
	"piecon/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// region --- DTOs ---

// PieInput defines the structure for registering or editing a pie.
type PieInput struct {
	Text string `json:"text" binding:"required,max=200" example:"Rhubarb crumble"`
}

// PieResponse defines the structure for a pie on the public list.
// IsMine lets the presentation layer show an edit link on the viewer's
// own entries without another round trip.
type PieResponse struct {
	ID           uint      `json:"id" example:"1"`
	Text         string    `json:"text" example:"Rhubarb crumble"`
	Owner        string    `json:"owner" example:"testuser"`
	DateAdded    time.Time `json:"date_added"`
	IsMine       bool      `json:"is_mine" example:"false"`
	ConventionID *uint     `json:"convention_id,omitempty"`
}

func newPieResponse(pie models.Pie, viewerID uint) PieResponse {
	return PieResponse{
		ID:           pie.ID,
		Text:         pie.Text,
		Owner:        pie.Owner.Username,
		DateAdded:    pie.DateAdded,
		IsMine:       viewerID != 0 && pie.OwnerID == viewerID,
		ConventionID: pie.ConventionID,
	}
}

// viewerID returns the authenticated user's ID, or zero for anonymous
// requests (set by OptionalAuthMiddleware on public routes).
func viewerID(c *gin.Context) uint {
	if id, exists := c.Get("userID"); exists {
		return id.(uint)
	}
	return 0
}

// endregion

// displayableScope filters a query down to records tied to the current
// convention. With no current convention nothing matches, which is the
// defined behavior, not a failure. Produces the same result set as
// evaluating IsDisplayed per record.
func displayableScope(db *gorm.DB) *gorm.DB {
	current, ok := currentConvention()
	if !ok {
		return db.Where("1 = 0")
	}
	return db.Where("convention_id = ?", current.ID)
}

// region --- Handlers ---

// ListPies godoc
// @Summary      List pies for the current convention
// @Description  Returns pies registered for the current convention, newest first.
// @Tags         pies
// @Produce      json
// @Param        page  query     int  false  "Page number" default(1)
// @Param        limit query     int  false  "Items per page" default(20)
// @Success      200  {object}  PaginatedResponse[PieResponse]
// @Router       /pies [get]
func ListPies(c *gin.Context) {
	page, limit := pageParams(c)
	viewer := viewerID(c)

	query := displayableScope(database.DB.Model(&models.Pie{})).
		Preload("Owner").
		Order("date_added DESC")

	result, err := Paginate[models.Pie](query, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve pies"})
		return
	}

	responses := make([]PieResponse, 0, len(result.Data))
	for _, pie := range result.Data {
		responses = append(responses, newPieResponse(pie, viewer))
	}
	c.JSON(http.StatusOK, NewPaginatedResponse(responses, result.Meta.TotalItems, page, limit))
}

// CreatePie godoc
// @Summary      Register a pie
// @Description  Registers a pie or snack for the current convention. The convention is assigned automatically.
// @Tags         pies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body PieInput true "Pie Info"
// @Success      201  {object}  PieResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /pies [post]
func CreatePie(c *gin.Context) {
	userID, _ := c.Get("userID")

	var input PieInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pie := models.Pie{
		Text:      input.Text,
		OwnerID:   userID.(uint),
		DateAdded: time.Now(),
	}
	// A pie submitted while no convention exists stays unassigned and
	// therefore never shows up publicly.
	if current, ok := currentConvention(); ok {
		pie.ConventionID = &current.ID
	}

	if err := database.DB.Create(&pie).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create pie"})
		return
	}

	database.DB.Preload("Owner").First(&pie, pie.ID)
	c.JSON(http.StatusCreated, newPieResponse(pie, userID.(uint)))
}

// GetPie godoc
// @Summary      Get one of your pies
// @Description  Retrieves a pie you own, e.g. to prefill the edit form.
// @Tags         pies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Pie ID"
// @Success      200  {object}  PieResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Not found or not yours"
// @Router       /pies/{id} [get]
func GetPie(c *gin.Context) {
	userID, _ := c.Get("userID")
	id, ok := pathID(c)
	if !ok {
		return
	}

	pie, err := fetchOwned[models.Pie](database.DB.Preload("Owner"), id, userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pie not found"})
		return
	}

	c.JSON(http.StatusOK, newPieResponse(*pie, userID.(uint)))
}

// UpdatePie godoc
// @Summary      Edit one of your pies
// @Description  Updates the description of a pie you own. The convention assignment is untouched.
// @Tags         pies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int      true  "Pie ID"
// @Param        input body      PieInput true  "New Pie Info"
// @Success      200   {object}  PieResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse "Not found or not yours"
// @Router       /pies/{id} [put]
func UpdatePie(c *gin.Context) {
	userID, _ := c.Get("userID")
	id, ok := pathID(c)
	if !ok {
		return
	}

	pie, err := fetchOwned[models.Pie](database.DB.Preload("Owner"), id, userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pie not found"})
		return
	}

	var input PieInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pie.Text = input.Text
	if err := database.DB.Save(pie).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pie"})
		return
	}

	c.JSON(http.StatusOK, newPieResponse(*pie, userID.(uint)))
}

// endregion
