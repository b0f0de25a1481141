package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/albertkemp/home-cooking/entity"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) FindByCook(cookID uint) (*entity.Menu, error) {
	var m entity.Menu
	if err := r.DB.Where("cook_id = ?", cookID).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// GetOrCreateForCook returns the cook's menu, creating the default one
// on first use.
func (r *MenuRepository) GetOrCreateForCook(tx *gorm.DB, cookID uint) (*entity.Menu, error) {
	var m entity.Menu
	err := tx.Where("cook_id = ?", cookID).First(&m).Error
	if err == nil {
		return &m, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	m = entity.Menu{
		CookID:      cookID,
		Name:        "My Menu",
		Description: "A collection of my homemade meals",
	}
	if err := tx.Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
