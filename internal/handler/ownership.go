package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// fetchOwned loads the record with the given ID only if it belongs to
// ownerID. A missing record and someone else's record are deliberately
// indistinguishable: both come back as ErrRecordNotFound so handlers
// answer 404 either way and never confirm the record exists.
func fetchOwned[T any](db *gorm.DB, id uint, ownerID uint) (*T, error) {
	var rec T
	if err := db.Where("id = ? AND owner_id = ?", id, ownerID).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// pathID parses the :id path parameter, answering 400 itself on garbage.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return uint(id), true
}
