package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Abdessamed08/boutique-api/models"
)

type ProductUpdateInput struct {
	Name     *string      `json:"name"`
	Price    *string      `json:"price"`
	ImageURL *string      `json:"image_url"`
	IsActive *bool        `json:"is_active"`
	Images   []ImageInput `json:"images"`
}

// UpdateProduct applies a partial update; a non-nil images list replaces the
// whole gallery. Price edits never touch existing orders, which keep their
// own snapshots.
// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		var input ProductUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Name != nil {
			if *input.Name == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "name must not be empty"})
				return
			}
			product.Name = *input.Name
		}
		if input.Price != nil {
			price, msg := ProductInput{Price: *input.Price}.parsePrice()
			if msg != "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": msg})
				return
			}
			product.Price = price
		}
		if input.ImageURL != nil {
			product.ImageURL = *input.ImageURL
		}
		if input.IsActive != nil {
			product.IsActive = *input.IsActive
		}
		if input.Images != nil {
			if msg := validateImages(input.Images); msg != "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": msg})
				return
			}
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(&product).Error; err != nil {
				return err
			}
			if input.Images == nil {
				return nil
			}
			if err := tx.Where("product_id = ?", product.ID).
				Delete(&models.ProductImage{}).Error; err != nil {
				return err
			}
			images := buildImages(input.Images)
			for i := range images {
				images[i].ProductID = product.ID
			}
			if len(images) == 0 {
				return nil
			}
			return tx.Create(&images).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		if err := db.Preload("Images").First(&product, product.ID).Error; err == nil {
			c.JSON(http.StatusOK, product)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
