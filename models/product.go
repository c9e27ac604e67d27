package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string          `gorm:"not null" json:"name"`
	Price     decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	ImageURL  string          `json:"image_url"`
	IsActive  bool            `gorm:"not null;default:true;index" json:"is_active"`
	Images    []ProductImage  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductImage is one gallery entry. At most one image per product should
// carry IsMain; the admin endpoints maintain that, the schema does not.
type ProductImage struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint   `gorm:"index;not null" json:"product_id"`
	URL       string `gorm:"not null" json:"url"`
	IsMain    bool   `json:"is_main"`
	Position  int    `json:"position"`
}

// MainImage returns the flagged gallery image URL, falling back to the
// product's own image field.
func (p *Product) MainImage() string {
	for _, img := range p.Images {
		if img.IsMain {
			return img.URL
		}
	}
	return p.ImageURL
}
