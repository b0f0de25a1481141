package repository

import (
	"gorm.io/gorm"

	"github.com/albertkemp/home-cooking/entity"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Updates(updates).Error
}

// FindCookProfile loads the public cook page: menu with items and
// images, plus direct cook reviews (food_item_id = 0) with reviewers.
func (r *UserRepository) FindCookProfile(id uint) (*entity.User, error) {
	var u entity.User
	err := r.DB.
		Preload("Menus.FoodItems.Images").
		Preload("Images").
		Preload("ReviewsReceived", func(db *gorm.DB) *gorm.DB {
			return db.Where("food_item_id = 0").Order("created_at DESC")
		}).
		Preload("ReviewsReceived.Reviewer").
		First(&u, id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}
