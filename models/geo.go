package models

// Wilaya, Daira and Commune form the three-level Algerian administrative
// hierarchy used for shipping addresses. The tree is seeded once from a
// static dataset and never mutated by the storefront.

type Wilaya struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

type Daira struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	WilayaID uint   `gorm:"index;not null" json:"wilaya_id"`
	Wilaya   Wilaya `gorm:"foreignKey:WilayaID" json:"-"`
}

type Commune struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	DairaID uint   `gorm:"index;not null" json:"daira_id"`
	Daira   Daira  `gorm:"foreignKey:DairaID" json:"-"`
}
