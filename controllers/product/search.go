package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Abdessamed08/boutique-api/models"
)

const searchLimit = 10

// SearchProducts backs the search box autocomplete: name substring match on
// active products, capped results.
// GET /products/search?q=...
func SearchProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := strings.TrimSpace(c.Query("q"))
		results := []gin.H{}
		if query != "" {
			var products []models.Product
			err := db.Where("is_active = ?", true).
				Where("name ILIKE ?", "%"+query+"%").
				Limit(searchLimit).
				Find(&products).Error
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
				return
			}
			for _, p := range products {
				results = append(results, gin.H{
					"id":        p.ID,
					"name":      p.Name,
					"price":     p.Price,
					"image_url": p.MainImage(),
				})
			}
		}
		c.JSON(http.StatusOK, gin.H{"results": results})
	}
}
