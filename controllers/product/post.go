package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Abdessamed08/boutique-api/models"
)

type ImageInput struct {
	URL      string `json:"url"`
	IsMain   bool   `json:"is_main"`
	Position int    `json:"position"`
}

type ProductInput struct {
	Name     string       `json:"name"`
	Price    string       `json:"price"`
	ImageURL string       `json:"image_url"`
	Images   []ImageInput `json:"images"`
}

func (in ProductInput) parsePrice() (decimal.Decimal, string) {
	if in.Price == "" {
		return decimal.Zero, "price is required"
	}
	price, err := decimal.NewFromString(in.Price)
	if err != nil {
		return decimal.Zero, "Invalid price"
	}
	if price.IsNegative() {
		return decimal.Zero, "price must not be negative"
	}
	return price, ""
}

// One main image per product; the schema does not enforce it, so the
// endpoints must.
func validateImages(images []ImageInput) string {
	mains := 0
	for _, img := range images {
		if img.URL == "" {
			return "image url is required"
		}
		if img.IsMain {
			mains++
		}
	}
	if mains > 1 {
		return "at most one image can be flagged main"
	}
	return ""
}

func buildImages(images []ImageInput) []models.ProductImage {
	out := make([]models.ProductImage, 0, len(images))
	for i, img := range images {
		position := img.Position
		if position == 0 {
			position = i
		}
		out = append(out, models.ProductImage{
			URL:      img.URL,
			IsMain:   img.IsMain,
			Position: position,
		})
	}
	return out
}

// CreateProduct creates a catalog product with its image gallery.
// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}
		price, msg := input.parsePrice()
		if msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		if msg := validateImages(input.Images); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		product := models.Product{
			Name:     input.Name,
			Price:    price,
			ImageURL: input.ImageURL,
			IsActive: true,
			Images:   buildImages(input.Images),
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
