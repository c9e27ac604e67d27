package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	checkoutControllers "github.com/Abdessamed08/boutique-api/controllers/checkout"
	orderControllers "github.com/Abdessamed08/boutique-api/controllers/order"
	"github.com/Abdessamed08/boutique-api/events"
	"github.com/Abdessamed08/boutique-api/middleware"
	"github.com/Abdessamed08/boutique-api/session"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, carts *session.Store, producer *events.Producer, logger *zap.Logger) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		userGroup.GET("/checkout", checkoutControllers.CheckoutPreview(db, carts))
		userGroup.POST("/checkout", checkoutControllers.Checkout(db, carts, producer, logger))

		userGroup.GET("/orders", orderControllers.GetUserOrders(db))
		userGroup.GET("/orders/:orderID", orderControllers.GetUserOrder(db))
	}
}
