package entity

import (
	"gorm.io/gorm"
)

// Image stores only the asset URL; bytes live in the asset store.
type Image struct {
	gorm.Model
	URL string `gorm:"not null" json:"url"`

	FoodItemID *uint `json:"foodItemId,omitempty"`
	UserID     *uint `json:"userId,omitempty"`
}
