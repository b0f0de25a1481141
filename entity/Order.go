package entity

import (
	"gorm.io/gorm"
)

// Order lifecycle. PENDING is the only non-terminal state: a pending
// order may be completed by a cook or cancelled by its eater, never both.
const (
	OrderPending   = "PENDING"
	OrderCompleted = "COMPLETED"
	OrderCancelled = "CANCELLED"
)

type Order struct {
	gorm.Model
	Status string `gorm:"not null;default:PENDING" json:"status"`
	Total  int64  `json:"total"` // cents; sum of line totals

	EaterID uint `json:"eaterId"`
	Eater   User `json:"-"`

	Items []OrderItem `json:"items,omitempty"`
}
