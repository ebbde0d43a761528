package models

import "gorm.io/gorm"

type Product struct {
	gorm.Model
	Name        string   `gorm:"not null" json:"name"`
	Slug        string   `gorm:"index" json:"slug"`
	Description string   `gorm:"not null" json:"description"`
	Price       float64  `gorm:"not null" json:"price"`
	CategoryID  uint     `gorm:"not null" json:"category"`
	Category    Category `json:"-"`
	Quantity    uint     `gorm:"not null" json:"quantity"`
	Photo       []byte   `json:"-"`
	PhotoType   string   `json:"-"`
	Shipping    bool     `json:"shipping"`
}
