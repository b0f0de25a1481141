package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/albertkemp/home-cooking/entity"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

func (r *CartRepository) GetOrCreate(eaterID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("eater_id = ?", eaterID).First(&c).Error
	if err == nil {
		return &c, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	c = entity.Cart{EaterID: eaterID}
	if err := r.DB.Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) GetWithItems(eaterID uint) (*entity.Cart, error) {
	c, err := r.GetOrCreate(eaterID)
	if err != nil {
		return nil, err
	}
	if err := r.DB.Preload("FoodItem").Where("cart_id = ?", c.ID).Find(&c.Items).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// UpsertItem merges a new line into an existing one for the same food
// item, otherwise appends it.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID uint, line *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND food_item_id = ?", cartID, line.FoodItemID).First(&exist).Error
	if err == nil {
		exist.Quantity += line.Quantity
		exist.UnitPrice = line.UnitPrice
		exist.Total = exist.UnitPrice * int64(exist.Quantity)
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	line.CartID = cartID
	return tx.Create(line).Error
}

func (r *CartRepository) UpdateQty(tx *gorm.DB, eaterID, itemID uint, qty int) error {
	var item entity.CartItem
	err := tx.Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("cart_items.id = ? AND carts.eater_id = ?", itemID, eaterID).
		First(&item).Error
	if err != nil {
		return err
	}
	item.Quantity = qty
	item.Total = item.UnitPrice * int64(qty)
	return tx.Save(&item).Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, eaterID, itemID uint) error {
	return tx.Where("id = ? AND cart_id IN (?)", itemID,
		tx.Model(&entity.Cart{}).Select("id").Where("eater_id = ?", eaterID)).
		Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) Clear(tx *gorm.DB, eaterID uint) error {
	return tx.Where("cart_id IN (?)",
		tx.Model(&entity.Cart{}).Select("id").Where("eater_id = ?", eaterID)).
		Delete(&entity.CartItem{}).Error
}
