package repository

import (
	"gorm.io/gorm"

	"github.com/albertkemp/home-cooking/entity"
)

type FoodItemRepository struct {
	DB *gorm.DB
}

func NewFoodItemRepository(db *gorm.DB) *FoodItemRepository {
	return &FoodItemRepository{DB: db}
}

func (r *FoodItemRepository) Create(tx *gorm.DB, item *entity.FoodItem) error {
	return tx.Create(item).Error
}

func (r *FoodItemRepository) FindByID(id uint) (*entity.FoodItem, error) {
	var item entity.FoodItem
	if err := r.DB.Preload("Images").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *FoodItemRepository) FindByIDs(ids []uint) ([]entity.FoodItem, error) {
	var items []entity.FoodItem
	err := r.DB.Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *FoodItemRepository) ListByMenu(menuID uint) ([]entity.FoodItem, error) {
	var items []entity.FoodItem
	err := r.DB.Preload("Images").
		Where("menu_id = ?", menuID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// ListBrowse returns items for the public browse page, available first
// then newest, optionally filtered by a name/description search term.
func (r *FoodItemRepository) ListBrowse(q string) ([]entity.FoodItem, error) {
	db := r.DB.Preload("Images").Preload("Cook")
	if q != "" {
		like := "%" + q + "%"
		db = db.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	var items []entity.FoodItem
	err := db.Order("available DESC, created_at DESC").Find(&items).Error
	return items, err
}

func (r *FoodItemRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.FoodItem{}).Where("id = ?", id).Updates(updates).Error
}

func (r *FoodItemRepository) HasOrderHistory(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.OrderItem{}).Where("food_item_id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *FoodItemRepository) DeleteImages(tx *gorm.DB, id uint) error {
	return tx.Where("food_item_id = ?", id).Delete(&entity.Image{}).Error
}

func (r *FoodItemRepository) Delete(tx *gorm.DB, id uint) error {
	return tx.Delete(&entity.FoodItem{}, id).Error
}

// ---------------- Inventory ledger ----------------

// CommitServings debits qty servings as a single conditional update so
// concurrent completions can never oversell: zero rows affected means
// the remaining capacity was smaller than qty. When the debit exhausts
// the item it also flips available off.
func (r *FoodItemRepository) CommitServings(tx *gorm.DB, id uint, qty int) (bool, error) {
	res := tx.Model(&entity.FoodItem{}).
		Where("id = ? AND servings_sold + ? <= servings", id, qty).
		Update("servings_sold", gorm.Expr("servings_sold + ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}

	err := tx.Model(&entity.FoodItem{}).
		Where("id = ? AND servings_sold >= servings", id).
		Update("available", false).Error
	return true, err
}
