package models

import "gorm.io/gorm"

// OrderItem pins the position and price of a product at checkout time,
// so later product edits do not rewrite order history.
type OrderItem struct {
	gorm.Model
	OrderID   uint    `gorm:"not null" json:"-"`
	ProductID uint    `gorm:"not null" json:"productID"`
	Product   Product `json:"product"`
	Position  int     `gorm:"not null" json:"position"`
	Price     float64 `gorm:"not null" json:"price"`
}
