package models

import "time"

// User mirrors the identity object issued by the auth subsystem. The
// storefront never writes credentials; it only needs a stable ID to attach
// orders to and profile fields to prefill the checkout form.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Email     string    `gorm:"unique;not null" json:"email"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Orders    []Order   `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
