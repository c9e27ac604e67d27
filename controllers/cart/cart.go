package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Abdessamed08/boutique-api/models"
	"github.com/Abdessamed08/boutique-api/session"
)

// POST /cart/add/:product_id
func AddToCart(db *gorm.DB, carts *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("product_id")
		if _, err := activeProduct(db, productID); err != nil {
			respondProductErr(c, err)
			return
		}

		sessionID := carts.SessionID(c)
		cart, err := carts.Cart(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		cart.Add(productID)
		if err := carts.SaveCart(c.Request.Context(), sessionID, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product added to cart", "cart": cart})
	}
}

// POST /cart/buy-now/:product_id
// Add-to-cart that immediately returns the priced cart, so the client can
// jump straight to the cart view.
func BuyNow(db *gorm.DB, carts *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("product_id")
		if _, err := activeProduct(db, productID); err != nil {
			respondProductErr(c, err)
			return
		}

		sessionID := carts.SessionID(c)
		cart, err := carts.Cart(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		cart.Add(productID)
		summary, cart, err := summarize(db, cart)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
			return
		}
		if err := carts.SaveCart(c.Request.Context(), sessionID, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

// POST /cart/decrease/:product_id
func DecreaseQty(carts *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := carts.SessionID(c)
		cart, err := carts.Cart(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		cart.Decrease(c.Param("product_id"))
		if err := carts.SaveCart(c.Request.Context(), sessionID, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": cart})
	}
}

// DELETE /cart/items/:product_id
func RemoveFromCart(carts *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := carts.SessionID(c)
		cart, err := carts.Cart(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		cart.Remove(c.Param("product_id"))
		if err := carts.SaveCart(c.Request.Context(), sessionID, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": cart})
	}
}

// DELETE /cart
func ClearCart(carts *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := carts.ClearCart(c.Request.Context(), carts.SessionID(c)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /cart
func GetCart(db *gorm.DB, carts *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := carts.SessionID(c)
		cart, err := carts.Cart(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		summary, pruned, err := summarize(db, cart)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
			return
		}
		if len(summary.Stale) > 0 {
			// Stale entries reference products that no longer exist; drop
			// them from the stored cart rather than erroring the view.
			_ = carts.SaveCart(c.Request.Context(), sessionID, pruned)
		}
		c.JSON(http.StatusOK, summary)
	}
}

// summarize prices the cart at current catalog prices and returns the cart
// with stale entries removed. A failed catalog lookup is an error, never
// staleness: only entries whose rows are genuinely absent may be pruned.
func summarize(db *gorm.DB, cart models.Cart) (models.CartSummary, models.Cart, error) {
	products, err := lookupProducts(db, cart.ProductIDs())
	if err != nil {
		return models.CartSummary{}, cart, err
	}
	summary := cart.Summarize(func(id string) (*models.Product, bool) {
		p, ok := products[id]
		return p, ok
	})
	for _, id := range summary.Stale {
		cart.Remove(id)
	}
	return summary, cart, nil
}

func lookupProducts(db *gorm.DB, ids []string) (map[string]*models.Product, error) {
	byID := make(map[string]*models.Product, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}
	var products []models.Product
	if err := db.Preload("Images").Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	for i := range products {
		byID[strconv.FormatUint(uint64(products[i].ID), 10)] = &products[i]
	}
	return byID, nil
}

// activeProduct validates that a product id names a live catalog row before
// it may enter the cart.
func activeProduct(db *gorm.DB, id string) (*models.Product, error) {
	var product models.Product
	err := db.Where("id = ? AND is_active = ?", id, true).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func respondProductErr(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product is unavailable"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
}
