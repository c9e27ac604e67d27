package geoControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Abdessamed08/boutique-api/models"
)

// The three endpoints below power the cascading address selectors on the
// checkout page: wilaya first, then its dairas, then the daira's communes.
// They are lookups only; the submitted triple is re-validated server-side at
// checkout.

// GET /geo/wilayas
func ListWilayas(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var wilayas []models.Wilaya
		if err := db.Order("id ASC").Find(&wilayas).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wilayas"})
			return
		}
		c.JSON(http.StatusOK, wilayas)
	}
}

// GET /geo/dairas?wilaya_id=N
// Name-sorted dairas of one wilaya; an unknown wilaya yields an empty list.
func ListDairas(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		wilayaID := c.Query("wilaya_id")
		if wilayaID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "wilaya_id is required"})
			return
		}
		dairas := []models.Daira{}
		if err := db.Where("wilaya_id = ?", wilayaID).
			Order("name ASC").
			Find(&dairas).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dairas"})
			return
		}
		c.JSON(http.StatusOK, dairas)
	}
}

// GET /geo/communes?daira_id=N
func ListCommunes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		dairaID := c.Query("daira_id")
		if dairaID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "daira_id is required"})
			return
		}
		communes := []models.Commune{}
		if err := db.Where("daira_id = ?", dairaID).
			Order("name ASC").
			Find(&communes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch communes"})
			return
		}
		c.JSON(http.StatusOK, communes)
	}
}
