package entity

import (
	"gorm.io/gorm"
)

// Cart is the eater's server-side basket. Lines may span several cooks;
// checkout turns them into a single order.
type Cart struct {
	gorm.Model
	EaterID uint `gorm:"uniqueIndex" json:"eaterId"`
	Eater   User `json:"-"`

	Items []CartItem `json:"items,omitempty"`
}
