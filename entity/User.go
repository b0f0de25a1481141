package entity

import (
	"gorm.io/gorm"
)

// Roles a user can hold. Role is mutable after registration
// (an eater can switch to cooking from account settings).
const (
	RoleEater = "EATER"
	RoleCook  = "COOK"
	RoleAdmin = "ADMIN"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Bio      string `json:"bio"`
	Image    string `json:"image"` // profile picture URL
	Role     string `gorm:"not null;default:EATER" json:"role"`

	// Relations — preload only when needed
	Menus           []Menu     `gorm:"foreignKey:CookID" json:"-"`
	FoodItems       []FoodItem `gorm:"foreignKey:CookID" json:"-"`
	Orders          []Order    `gorm:"foreignKey:EaterID" json:"-"`
	ReviewsWritten  []Review   `gorm:"foreignKey:ReviewerID" json:"-"`
	ReviewsReceived []Review   `gorm:"foreignKey:ReviewedID" json:"-"`
	Images          []Image    `gorm:"foreignKey:UserID" json:"-"`
}
