package checkoutControllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	orderControllers "github.com/Abdessamed08/boutique-api/controllers/order"
	"github.com/Abdessamed08/boutique-api/events"
	"github.com/Abdessamed08/boutique-api/models"
	"github.com/Abdessamed08/boutique-api/session"
)

var (
	// ErrEmptyCart rejects checkout before any form processing happens.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrProductUnavailable aborts the whole order when a cart entry's
	// product was hard-deleted between add-to-cart and checkout. Skipping
	// the line instead would store a total the customer never confirmed.
	ErrProductUnavailable = errors.New("product unavailable")
)

// Generate unique order reference, e.g. 20250908130500-<uuid4>.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// PlaceOrder materializes the cart into an order with its items in a single
// transaction. Each item snapshots the product's unit price at this moment;
// the stored total is computed from those snapshots, so later catalog edits
// never touch it. A missing product rolls the whole transaction back.
func PlaceOrder(db *gorm.DB, userID string, cart models.Cart, req CheckoutRequest) (*models.Order, error) {
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var items []models.OrderItem
		total := decimal.Zero

		for _, pid := range cart.ProductIDs() {
			var product models.Product
			if err := tx.First(&product, "id = ?", pid).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: product %s", ErrProductUnavailable, pid)
				}
				return err
			}

			qty := cart[pid]
			items = append(items, models.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    qty,
				Price:       product.Price,
			})
			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(qty))))
		}

		order = models.Order{
			OrderRef:       generateOrderRef(),
			UserID:         userID,
			FullName:       req.FullName,
			Email:          req.Email,
			Phone:          req.Phone,
			WilayaID:       req.WilayaID,
			DairaID:        req.DairaID,
			CommuneID:      req.CommuneID,
			AddressDetails: req.AddressDetails,
			Total:          total,
			Status:         models.OrderStatusPending,
			Items:          items,
			CreatedAt:      time.Now(),
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GET /user/checkout
// Returns the priced cart plus profile prefill for the form, mirroring what
// the checkout page renders before submission.
func CheckoutPreview(db *gorm.DB, carts *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}

		cart, err := carts.Cart(c.Request.Context(), carts.SessionID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}
		if cart.IsEmpty() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
			return
		}

		summary, err := summarizeCart(db, cart)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
			return
		}
		prefill := gin.H{}
		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err == nil {
			prefill["full_name"] = user.FullName
			prefill["email"] = user.Email
			prefill["phone"] = user.Phone
		}
		c.JSON(http.StatusOK, gin.H{"cart": summary, "prefill": prefill})
	}
}

// POST /user/checkout
func Checkout(db *gorm.DB, carts *session.Store, producer *events.Producer, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}

		sessionID := carts.SessionID(c)
		cart, err := carts.Cart(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}
		if cart.IsEmpty() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		fieldErrs := req.FieldErrors()
		_, _, _, regionErrs, err := resolveRegion(db, req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate address"})
			return
		}
		for field, msg := range regionErrs {
			fieldErrs[field] = msg
		}
		if len(fieldErrs) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "errors": fieldErrs})
			return
		}

		order, err := PlaceOrder(db, userID, cart, req)
		if err != nil {
			switch {
			case errors.Is(err, ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
			case errors.Is(err, ErrProductUnavailable):
				c.JSON(http.StatusConflict, gin.H{"error": "An item in your cart is no longer available"})
			default:
				logger.Error("Order placement failed",
					zap.String("user_id", userID),
					zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Order could not be completed, please retry"})
			}
			return
		}

		if err := carts.ClearCart(c.Request.Context(), sessionID); err != nil {
			// The order exists; a lingering cart is only cosmetic.
			logger.Warn("Failed to clear cart after checkout",
				zap.String("order_ref", order.OrderRef),
				zap.Error(err))
		}

		// Side effects run here, explicitly, after the transaction committed.
		producer.PublishOrderCreated(c.Request.Context(), order)
		orderControllers.BroadcastOrder(*order)

		logger.Info("Order placed",
			zap.String("order_ref", order.OrderRef),
			zap.String("user_id", userID),
			zap.String("total", order.Total.String()))

		c.JSON(http.StatusCreated, gin.H{
			"success":   true,
			"order_id":  order.ID,
			"order_ref": order.OrderRef,
			"redirect":  fmt.Sprintf("/orders/%d", order.ID),
		})
	}
}

func currentUser(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	userID, _ := userIDVal.(string)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

func summarizeCart(db *gorm.DB, cart models.Cart) (models.CartSummary, error) {
	ids := cart.ProductIDs()
	byID := make(map[string]*models.Product, len(ids))
	if len(ids) > 0 {
		var products []models.Product
		if err := db.Where("id IN ?", ids).Find(&products).Error; err != nil {
			return models.CartSummary{}, err
		}
		for i := range products {
			byID[fmt.Sprintf("%d", products[i].ID)] = &products[i]
		}
	}
	return cart.Summarize(func(id string) (*models.Product, bool) {
		p, ok := byID[id]
		return p, ok
	}), nil
}
