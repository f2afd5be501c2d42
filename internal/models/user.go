package models

import (
	"gorm.io/gorm"
)

// User is a staff account (lawyer or admin) of the client-management product.
type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;not null"`
	Password     string `gorm:"not null"`
	Name         string `gorm:"not null"`
	Role         string `gorm:"default:'lawyer'"`
	TokenVersion int    `gorm:"default:1"`
}
