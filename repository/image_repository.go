package repository

import (
	"gorm.io/gorm"

	"github.com/albertkemp/home-cooking/entity"
)

type ImageRepository struct {
	DB *gorm.DB
}

func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{DB: db}
}

func (r *ImageRepository) Create(img *entity.Image) error {
	return r.DB.Create(img).Error
}
