package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	Quantity  int   `json:"quantity"`
	UnitPrice int64 `json:"unitPrice"` // snapshot at add time
	Total     int64 `json:"total"`

	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	FoodItemID uint     `json:"foodItemId"`
	FoodItem   FoodItem `json:"-"`
}
