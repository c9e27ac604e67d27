package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Abdessamed08/boutique-api/events"
	"github.com/Abdessamed08/boutique-api/session"
)

// SetupRoutes is the single entry-point that wires up the public, user and
// admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, carts *session.Store, producer *events.Producer, logger *zap.Logger) {
	// Public routes: catalog, geo lookups, session cart (no auth)
	SetupPublicRoutes(r, db, carts)

	// User routes (JWT-protected): checkout, order history
	SetupUserRoutes(r, db, carts, producer, logger)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, db)
}
