package entity

import (
	"gorm.io/gorm"
)

// Review is directed at a cook, or at one of the cook's food items
// (FoodItemID = 0 for a plain cook review). The composite unique index
// makes "one review per (reviewer, subject)" a storage-level invariant:
// duplicate inserts conflict instead of creating a second row.
type Review struct {
	gorm.Model
	Rating  int    `json:"rating"` // 1..5
	Comment string `json:"comment"`

	ReviewerID uint `gorm:"uniqueIndex:idx_reviewer_subject" json:"reviewerId"`
	Reviewer   User `json:"-"`

	ReviewedID uint `gorm:"uniqueIndex:idx_reviewer_subject" json:"reviewedId"` // the cook
	Reviewed   User `json:"-"`

	FoodItemID uint     `gorm:"uniqueIndex:idx_reviewer_subject" json:"foodItemId,omitempty"`
	FoodItem   FoodItem `json:"-"`
}
