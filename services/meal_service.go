package services

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/albertkemp/home-cooking/entity"
	"github.com/albertkemp/home-cooking/pkg/apperr"
	"github.com/albertkemp/home-cooking/repository"
)

type MealService struct {
	DB       *gorm.DB
	MenuRepo *repository.MenuRepository
	ItemRepo *repository.FoodItemRepository
	ImgRepo  *repository.ImageRepository
}

func NewMealService(db *gorm.DB, menuRepo *repository.MenuRepository, itemRepo *repository.FoodItemRepository, imgRepo *repository.ImageRepository) *MealService {
	return &MealService{DB: db, MenuRepo: menuRepo, ItemRepo: itemRepo, ImgRepo: imgRepo}
}

type CreateMealIn struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Price       int64      `json:"price" binding:"required"`
	Available   bool       `json:"available"`
	Servings    int        `json:"servings"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	ImageURL    string     `json:"imageUrl"`
}

type UpdateMealIn struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Price       *int64     `json:"price"`
	Available   *bool      `json:"available"`
	Servings    *int       `json:"servings"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

// ListForCook returns the cook's items, newest first. A cook with no
// menu yet simply has no items.
func (s *MealService) ListForCook(cookID uint) ([]entity.FoodItem, error) {
	menu, err := s.MenuRepo.FindByCook(cookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []entity.FoodItem{}, nil
		}
		return nil, err
	}
	return s.ItemRepo.ListByMenu(menu.ID)
}

func (s *MealService) Get(id uint) (*entity.FoodItem, error) {
	item, err := s.ItemRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Wrap(apperr.ErrNotFound, "meal %d not found", id)
		}
		return nil, err
	}
	return item, nil
}

// Create adds a food item under the cook's menu, creating the menu on
// first use.
func (s *MealService) Create(cookID uint, in *CreateMealIn) (*entity.FoodItem, error) {
	if in.Price <= 0 {
		return nil, apperr.Wrap(apperr.ErrInvalidInput, "price must be positive")
	}
	if (in.StartDate == nil) != (in.EndDate == nil) {
		return nil, apperr.Wrap(apperr.ErrInvalidInput, "startDate and endDate must be set together")
	}
	if in.StartDate != nil && in.EndDate.Before(*in.StartDate) {
		return nil, apperr.Wrap(apperr.ErrInvalidInput, "endDate is before startDate")
	}
	servings := in.Servings
	if servings < 1 {
		servings = 1
	}

	var item entity.FoodItem
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		menu, err := s.MenuRepo.GetOrCreateForCook(tx, cookID)
		if err != nil {
			return err
		}

		item = entity.FoodItem{
			Name:        in.Name,
			Description: in.Description,
			Price:       in.Price,
			Available:   in.Available,
			Servings:    servings,
			StartDate:   in.StartDate,
			EndDate:     in.EndDate,
			MenuID:      menu.ID,
			CookID:      cookID,
		}
		if err := s.ItemRepo.Create(tx, &item); err != nil {
			return err
		}

		if in.ImageURL != "" {
			img := entity.Image{URL: in.ImageURL, FoodItemID: &item.ID, UserID: &cookID}
			if err := tx.Create(&img).Error; err != nil {
				return err
			}
			item.Images = append(item.Images, img)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"foodItemId": item.ID, "cookId": cookID}).Info("meal created")
	return &item, nil
}

func (s *MealService) Update(p Principal, id uint, in *UpdateMealIn) (*entity.FoodItem, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := Authorize(p, ActionMutateMeal, item); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Price != nil {
		if *in.Price <= 0 {
			return nil, apperr.Wrap(apperr.ErrInvalidInput, "price must be positive")
		}
		updates["price"] = *in.Price
	}
	if in.Available != nil {
		updates["available"] = *in.Available
	}
	if in.Servings != nil {
		if *in.Servings < 1 {
			return nil, apperr.Wrap(apperr.ErrInvalidInput, "servings must be at least 1")
		}
		updates["servings"] = *in.Servings
	}
	if in.StartDate != nil {
		updates["start_date"] = *in.StartDate
	}
	if in.EndDate != nil {
		updates["end_date"] = *in.EndDate
	}

	if len(updates) > 0 {
		if err := s.ItemRepo.Update(id, updates); err != nil {
			return nil, err
		}
	}
	return s.Get(id)
}

// Delete removes a meal, or only its images when imagesOnly is set.
// Meals with order history cannot be deleted; their order items would
// dangle.
func (s *MealService) Delete(p Principal, id uint, imagesOnly bool) error {
	item, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := Authorize(p, ActionMutateMeal, item); err != nil {
		return err
	}

	if imagesOnly {
		return s.DB.Transaction(func(tx *gorm.DB) error {
			return s.ItemRepo.DeleteImages(tx, id)
		})
	}

	hasHistory, err := s.ItemRepo.HasOrderHistory(id)
	if err != nil {
		return err
	}
	if hasHistory {
		return apperr.Wrap(apperr.ErrConflict, "cannot delete meal with order history")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.ItemRepo.DeleteImages(tx, id); err != nil {
			return err
		}
		return s.ItemRepo.Delete(tx, id)
	})
}

// Browse lists items for the public browse/search page, available
// first. Each item carries its resolved availability.
type BrowseItem struct {
	entity.FoodItem
	Availability Availability `json:"availability"`
	CookName     string       `json:"cookName"`
}

func (s *MealService) Browse(q string, now time.Time) ([]BrowseItem, error) {
	items, err := s.ItemRepo.ListBrowse(q)
	if err != nil {
		return nil, err
	}
	out := make([]BrowseItem, 0, len(items))
	for i := range items {
		out = append(out, BrowseItem{
			FoodItem:     items[i],
			Availability: ResolveAvailability(&items[i], now),
			CookName:     items[i].Cook.Name,
		})
	}
	return out, nil
}
