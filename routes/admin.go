package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/Abdessamed08/boutique-api/controllers/order"
	productcontroller "github.com/Abdessamed08/boutique-api/controllers/product"
	"github.com/Abdessamed08/boutique-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-key
// middleware. The admin UI itself lives elsewhere; these are its data
// endpoints.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.GET("", productcontroller.GetProducts(db, true))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
		}

		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrders(db))
			orderAdmin.GET("/ws", orderControllers.OrderFeed)
			orderAdmin.GET("/:orderID", orderControllers.GetOrderByID(db))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatus(db))
		}
	}
}
