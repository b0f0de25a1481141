package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/albertkemp/home-cooking/entity"
	"github.com/albertkemp/home-cooking/pkg/apperr"
	"github.com/albertkemp/home-cooking/repository"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	ItemRepo *repository.FoodItemRepository
}

func NewCartService(db *gorm.DB, cartRepo *repository.CartRepository, itemRepo *repository.FoodItemRepository) *CartService {
	return &CartService{DB: db, CartRepo: cartRepo, ItemRepo: itemRepo}
}

type AddToCartIn struct {
	FoodItemID uint `json:"foodItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"min=1"`
}

func (s *CartService) Get(eaterID uint) (*entity.Cart, int64, error) {
	c, err := s.CartRepo.GetWithItems(eaterID)
	if err != nil {
		return nil, 0, err
	}
	var subtotal int64
	for _, it := range c.Items {
		subtotal += it.Total
	}
	return c, subtotal, nil
}

// Add puts a line in the cart, snapshotting the current unit price.
// Lines may span several cooks.
func (s *CartService) Add(eaterID uint, in *AddToCartIn) error {
	if in.Quantity <= 0 {
		in.Quantity = 1
	}

	item, err := s.ItemRepo.FindByID(in.FoodItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Wrap(apperr.ErrNotFound, "food item not found")
		}
		return err
	}
	if a := ResolveAvailability(item, time.Now()); a.Status != StatusAvailable {
		return apperr.Wrap(apperr.ErrUnavailable, "food item %d is %s", item.ID, a.Status)
	}
	if in.Quantity > item.Remaining() {
		return apperr.Wrap(apperr.ErrUnavailable, "only %d servings left", item.Remaining())
	}

	cart, err := s.CartRepo.GetOrCreate(eaterID)
	if err != nil {
		return err
	}

	line := &entity.CartItem{
		FoodItemID: item.ID,
		Quantity:   in.Quantity,
		UnitPrice:  item.Price,
		Total:      item.Price * int64(in.Quantity),
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, cart.ID, line)
	})
}

func (s *CartService) UpdateQty(eaterID, itemID uint, qty int) error {
	if qty <= 0 {
		return apperr.Wrap(apperr.ErrInvalidInput, "quantity must be positive")
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.CartRepo.UpdateQty(tx, eaterID, itemID, qty); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Wrap(apperr.ErrNotFound, "cart item not found")
			}
			return err
		}
		return nil
	})
}

func (s *CartService) RemoveItem(eaterID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, eaterID, itemID)
	})
}

func (s *CartService) Clear(eaterID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Clear(tx, eaterID)
	})
}
