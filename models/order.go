package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // placed, awaiting handling
	OrderStatusCompleted OrderStatus = "completed" // fulfilled, terminal
	OrderStatusCancelled OrderStatus = "cancelled" // abandoned, terminal
)

// ValidStatus reports whether s is one of the known lifecycle states.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether an order may move from one status to
// another. Completed and cancelled are terminal.
func CanTransition(from, to OrderStatus) bool {
	return from == OrderStatusPending &&
		(to == OrderStatusCompleted || to == OrderStatusCancelled)
}

// Order freezes everything the customer confirmed at checkout: identity,
// shipping address and line prices. Later edits to the user profile or the
// catalog never reach a stored order.
type Order struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	OrderRef       string          `gorm:"uniqueIndex;not null" json:"order_ref"`
	UserID         string          `gorm:"index;not null" json:"user_id"`
	User           User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	FullName       string          `gorm:"not null" json:"full_name"`
	Email          string          `gorm:"not null" json:"email"`
	Phone          string          `json:"phone"`
	WilayaID       uint            `gorm:"not null" json:"wilaya_id"`
	Wilaya         Wilaya          `gorm:"foreignKey:WilayaID" json:"wilaya"`
	DairaID        uint            `gorm:"not null" json:"daira_id"`
	Daira          Daira           `gorm:"foreignKey:DairaID" json:"daira"`
	CommuneID      uint            `gorm:"not null" json:"commune_id"`
	Commune        Commune         `gorm:"foreignKey:CommuneID" json:"commune"`
	AddressDetails string          `gorm:"not null" json:"address_details"`
	Total          decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"total"`
	Status         OrderStatus     `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Items          []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt      time.Time       `json:"created_at"`
}

// OrderItem references its product but owns a snapshot of the name and
// unit price taken at order time.
type OrderItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrderID     uint            `gorm:"index;not null" json:"order_id"`
	ProductID   uint            `gorm:"not null" json:"product_id"`
	ProductName string          `gorm:"not null" json:"product_name"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
}

// Subtotal is the frozen unit price times the quantity.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
