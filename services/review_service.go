package services

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/albertkemp/home-cooking/entity"
	"github.com/albertkemp/home-cooking/pkg/apperr"
	"github.com/albertkemp/home-cooking/repository"
)

type ReviewService struct {
	Repo     *repository.ReviewRepository
	UserRepo *repository.UserRepository
	ItemRepo *repository.FoodItemRepository
}

func NewReviewService(repo *repository.ReviewRepository, userRepo *repository.UserRepository, itemRepo *repository.FoodItemRepository) *ReviewService {
	return &ReviewService{Repo: repo, UserRepo: userRepo, ItemRepo: itemRepo}
}

type AddReviewIn struct {
	CookID     uint   `json:"cookId"`
	FoodItemID uint   `json:"foodItemId"`
	Rating     int    `json:"rating" binding:"required"`
	Comment    string `json:"comment"`
}

// Add creates a review for a cook or a food item. A food-item review is
// also attributed to the item's cook. Duplicate (reviewer, subject)
// submissions are rejected by the storage-level insert-if-absent, so a
// race between parallel requests can still only produce one row.
func (s *ReviewService) Add(p Principal, in *AddReviewIn) (*entity.Review, error) {
	if err := Authorize(p, ActionWriteReview, nil); err != nil {
		return nil, err
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, apperr.Wrap(apperr.ErrInvalidInput, "rating must be between 1 and 5")
	}

	rev := entity.Review{Rating: in.Rating, Comment: in.Comment, ReviewerID: p.UserID}

	switch {
	case in.FoodItemID != 0:
		item, err := s.ItemRepo.FindByID(in.FoodItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.Wrap(apperr.ErrNotFound, "food item not found")
			}
			return nil, err
		}
		rev.FoodItemID = item.ID
		rev.ReviewedID = item.CookID

	case in.CookID != 0:
		cook, err := s.UserRepo.FindByID(in.CookID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.Wrap(apperr.ErrNotFound, "cook not found")
			}
			return nil, err
		}
		if cook.Role != entity.RoleCook {
			return nil, apperr.Wrap(apperr.ErrInvalidInput, "user is not a cook")
		}
		rev.ReviewedID = cook.ID

	default:
		return nil, apperr.Wrap(apperr.ErrInvalidInput, "either cookId or foodItemId is required")
	}

	inserted, err := s.Repo.InsertIfAbsent(&rev)
	if err != nil {
		return nil, err
	}
	if !inserted {
		return nil, apperr.Wrap(apperr.ErrConflict, "you have already reviewed this subject")
	}

	logrus.WithFields(logrus.Fields{
		"reviewerId": p.UserID,
		"reviewedId": rev.ReviewedID,
		"foodItemId": rev.FoodItemID,
		"rating":     rev.Rating,
	}).Info("review created")
	return &rev, nil
}

type ReviewListOut struct {
	Items     []entity.Review            `json:"items"`
	Aggregate repository.RatingAggregate `json:"aggregate"`
}

func (s *ReviewService) ListForCook(cookID uint, limit, offset int) (*ReviewListOut, error) {
	items, err := s.Repo.ListForCook(cookID, limit, offset)
	if err != nil {
		return nil, err
	}
	agg, err := s.Repo.AggregateForCook(cookID)
	if err != nil {
		return nil, err
	}
	return &ReviewListOut{Items: items, Aggregate: agg}, nil
}

func (s *ReviewService) ListForFoodItem(foodItemID uint, limit, offset int) (*ReviewListOut, error) {
	items, err := s.Repo.ListForFoodItem(foodItemID, limit, offset)
	if err != nil {
		return nil, err
	}
	agg, err := s.Repo.AggregateForFoodItem(foodItemID)
	if err != nil {
		return nil, err
	}
	return &ReviewListOut{Items: items, Aggregate: agg}, nil
}
