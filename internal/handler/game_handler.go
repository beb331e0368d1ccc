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

// GameInput defines the structure for proposing or editing a game session.
type GameInput struct {
	Title       string `json:"title" binding:"required,max=200" example:"Tomb of Horrors"`
	Gamemaster  string `json:"gamemaster" binding:"max=200" example:"Alex"`
	System      string `json:"system" binding:"max=200" example:"D&D 5e"`
	NumPlayers  string `json:"num_players" binding:"max=6" example:"5"`
	Length      string `json:"length" binding:"max=2" example:"4"`
	Description string `json:"description" example:"A classic dungeon crawl."`
}

// SuppressInput defines the structure for the admin suppress toggle.
type SuppressInput struct {
	Suppress *bool `json:"suppress" binding:"required" example:"true"`
}

// GameResponse defines the structure for a game on the public list.
type GameResponse struct {
	ID           uint      `json:"id" example:"1"`
	Title        string    `json:"title" example:"Tomb of Horrors"`
	Owner        string    `json:"owner" example:"testuser"`
	Gamemaster   string    `json:"gamemaster" example:"Alex"`
	System       string    `json:"system" example:"D&D 5e"`
	NumPlayers   string    `json:"num_players" example:"5"`
	Length       string    `json:"length" example:"4"`
	Description  string    `json:"description" example:"A classic dungeon crawl."`
	DateAdded    time.Time `json:"date_added"`
	Suppressed   bool      `json:"suppressed" example:"false"`
	IsMine       bool      `json:"is_mine" example:"false"`
	ConventionID *uint     `json:"convention_id,omitempty"`
}

func newGameResponse(game models.Game, viewerID uint) GameResponse {
	return GameResponse{
		ID:           game.ID,
		Title:        game.Title,
		Owner:        game.Owner.Username,
		Gamemaster:   game.Gamemaster,
		System:       game.System,
		NumPlayers:   game.NumPlayers,
		Length:       game.Length,
		Description:  game.Description,
		DateAdded:    game.DateAdded,
		Suppressed:   game.SuppressFromDisplay,
		IsMine:       viewerID != 0 && game.OwnerID == viewerID,
		ConventionID: game.ConventionID,
	}
}

// endregion

// displayableGameScope is displayableScope plus the suppression flag.
func displayableGameScope(db *gorm.DB) *gorm.DB {
	return displayableScope(db).Where("suppress_from_display = ?", false)
}

// region --- Handlers ---

// ListGames godoc
// @Summary      List games for the current convention
// @Description  Returns non-suppressed games proposed for the current convention, newest first.
// @Tags         games
// @Produce      json
// @Param        page  query     int  false  "Page number" default(1)
// @Param        limit query     int  false  "Items per page" default(20)
// @Success      200  {object}  PaginatedResponse[GameResponse]
// @Router       /games [get]
func ListGames(c *gin.Context) {
	page, limit := pageParams(c)
	viewer := viewerID(c)

	query := displayableGameScope(database.DB.Model(&models.Game{})).
		Preload("Owner").
		Order("date_added DESC")

	result, err := Paginate[models.Game](query, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve games"})
		return
	}

	responses := make([]GameResponse, 0, len(result.Data))
	for _, game := range result.Data {
		responses = append(responses, newGameResponse(game, viewer))
	}
	c.JSON(http.StatusOK, NewPaginatedResponse(responses, result.Meta.TotalItems, page, limit))
}

// CreateGame godoc
// @Summary      Propose a game
// @Description  Proposes a game session for the current convention. The convention is assigned automatically.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body GameInput true "Game Info"
// @Success      201  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /games [post]
func CreateGame(c *gin.Context) {
	userID, _ := c.Get("userID")

	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game := models.Game{
		Title:       input.Title,
		OwnerID:     userID.(uint),
		Gamemaster:  input.Gamemaster,
		System:      input.System,
		NumPlayers:  input.NumPlayers,
		Length:      input.Length,
		Description: input.Description,
		DateAdded:   time.Now(),
	}
	if current, ok := currentConvention(); ok {
		game.ConventionID = &current.ID
	}

	if err := database.DB.Create(&game).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
		return
	}

	database.DB.Preload("Owner").First(&game, game.ID)
	c.JSON(http.StatusCreated, newGameResponse(game, userID.(uint)))
}

// GetGame godoc
// @Summary      Get one of your games
// @Description  Retrieves a game you own, e.g. to prefill the edit form.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Game ID"
// @Success      200  {object}  GameResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Not found or not yours"
// @Router       /games/{id} [get]
func GetGame(c *gin.Context) {
	userID, _ := c.Get("userID")
	id, ok := pathID(c)
	if !ok {
		return
	}

	game, err := fetchOwned[models.Game](database.DB.Preload("Owner"), id, userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	c.JSON(http.StatusOK, newGameResponse(*game, userID.(uint)))
}

// UpdateGame godoc
// @Summary      Edit one of your games
// @Description  Updates a game you own. The suppression flag and convention assignment are untouched.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int       true  "Game ID"
// @Param        input body      GameInput true  "New Game Info"
// @Success      200   {object}  GameResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse "Not found or not yours"
// @Router       /games/{id} [put]
func UpdateGame(c *gin.Context) {
	userID, _ := c.Get("userID")
	id, ok := pathID(c)
	if !ok {
		return
	}

	game, err := fetchOwned[models.Game](database.DB.Preload("Owner"), id, userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game.Title = input.Title
	game.Gamemaster = input.Gamemaster
	game.System = input.System
	game.NumPlayers = input.NumPlayers
	game.Length = input.Length
	game.Description = input.Description

	if err := database.DB.Save(game).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update game"})
		return
	}

	c.JSON(http.StatusOK, newGameResponse(*game, userID.(uint)))
}

// SuppressGame godoc
// @Summary      Suppress or restore a game
// @Description  Hides a game from the public list without deleting it, or brings it back.
// @Tags         admin-games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int           true  "Game ID"
// @Param        input body      SuppressInput true  "Suppress flag"
// @Success      200   {object}  GameResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse "Admin access required"
// @Failure      404   {object}  ErrorResponse "Game not found"
// @Router       /admin/games/{id}/suppress [put]
func SuppressGame(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var game models.Game
	if err := database.DB.Preload("Owner").First(&game, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	var input SuppressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game.SuppressFromDisplay = *input.Suppress
	if err := database.DB.Save(&game).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update game"})
		return
	}

	c.JSON(http.StatusOK, newGameResponse(game, viewerID(c)))
}

// endregion
