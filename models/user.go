package models

import "gorm.io/gorm"

const (
	RoleCustomer = 0
	RoleAdmin    = 1
)

type User struct {
	gorm.Model
	Name     string  `gorm:"not null" json:"name"`
	Email    string  `gorm:"unique;not null" json:"email"`
	Password string  `gorm:"not null" json:"-"`
	Phone    string  `gorm:"not null" json:"phone"`
	Address  string  `gorm:"not null" json:"address"`
	Answer   string  `gorm:"not null" json:"-"`
	Role     int     `gorm:"default:0" json:"role"`
	Orders   []Order `gorm:"foreignKey:BuyerID" json:"-"`
}
