package entity

import (
	"gorm.io/gorm"
)

// OrderItem snapshots quantity and unit price at order time, decoupled
// from later price changes on the food item.
type OrderItem struct {
	gorm.Model
	Quantity  int   `json:"quantity"`
	UnitPrice int64 `json:"unitPrice"`
	Total     int64 `json:"total"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	FoodItemID uint     `json:"foodItemId"`
	FoodItem   FoodItem `json:"-"`
}
