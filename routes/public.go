package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Abdessamed08/boutique-api/controllers/cart"
	geoControllers "github.com/Abdessamed08/boutique-api/controllers/geo"
	productcontroller "github.com/Abdessamed08/boutique-api/controllers/product"
	"github.com/Abdessamed08/boutique-api/session"
)

// SetupPublicRoutes registers the anonymous storefront: browsing, search,
// the cascading address lookups and the session cart. The cart rides on a
// session cookie, so guests can fill one before logging in to check out.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB, carts *session.Store) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db, false))
		products.GET("/search", productcontroller.SearchProducts(db))
		products.GET("/:id", productcontroller.GetProductByID(db))
	}

	geo := r.Group("/geo")
	{
		geo.GET("/wilayas", geoControllers.ListWilayas(db))
		geo.GET("/dairas", geoControllers.ListDairas(db))
		geo.GET("/communes", geoControllers.ListCommunes(db))
	}

	cart := r.Group("/cart")
	{
		cart.GET("", cartControllers.GetCart(db, carts))
		cart.POST("/add/:product_id", cartControllers.AddToCart(db, carts))
		cart.POST("/buy-now/:product_id", cartControllers.BuyNow(db, carts))
		cart.POST("/decrease/:product_id", cartControllers.DecreaseQty(carts))
		cart.DELETE("/items/:product_id", cartControllers.RemoveFromCart(carts))
		cart.DELETE("", cartControllers.ClearCart(carts))
	}
}
