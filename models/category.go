package models

import "gorm.io/gorm"

type Category struct {
	gorm.Model
	Name string `gorm:"not null" json:"name"`
	Slug string `gorm:"index" json:"slug"`
}
