package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/albertkemp/home-cooking/entity"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

// InsertIfAbsent inserts the review unless the (reviewer, subject)
// unique index already holds a row. Insert and duplicate check are one
// atomic statement, so parallel submissions cannot both land.
func (r *ReviewRepository) InsertIfAbsent(rev *entity.Review) (bool, error) {
	res := r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(rev)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *ReviewRepository) ListForCook(cookID uint, limit, offset int) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.Preload("Reviewer").
		Where("reviewed_id = ? AND food_item_id = 0", cookID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) ListForFoodItem(foodItemID uint, limit, offset int) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.Preload("Reviewer").
		Where("food_item_id = ?", foodItemID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&reviews).Error
	return reviews, err
}

type RatingAggregate struct {
	Avg   float64 `json:"avgRating"`
	Count int64   `json:"total"`
}

// AggregateForCook averages the cook's direct reviews. Count 0 means
// "no reviews yet"; Avg stays 0 rather than NULL/NaN.
func (r *ReviewRepository) AggregateForCook(cookID uint) (RatingAggregate, error) {
	var a RatingAggregate
	err := r.DB.Model(&entity.Review{}).
		Where("reviewed_id = ? AND food_item_id = 0", cookID).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Scan(&a).Error
	return a, err
}

func (r *ReviewRepository) AggregateForFoodItem(foodItemID uint) (RatingAggregate, error) {
	var a RatingAggregate
	err := r.DB.Model(&entity.Review{}).
		Where("food_item_id = ?", foodItemID).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Scan(&a).Error
	return a, err
}
