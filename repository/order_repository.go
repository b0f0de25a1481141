package repository

import (
	"gorm.io/gorm"

	"github.com/albertkemp/home-cooking/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

// ListForEater returns the eater's order history with line items,
// pending first then newest.
func (r *OrderRepository) ListForEater(eaterID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items.FoodItem").
		Where("eater_id = ?", eaterID).
		Order("status DESC, created_at DESC").
		Find(&orders).Error
	return orders, err
}

// ListPendingForCook returns PENDING orders containing at least one of
// the cook's items.
func (r *OrderRepository) ListPendingForCook(cookID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items.FoodItem").Preload("Eater").
		Where("status = ?", entity.OrderPending).
		Where("id IN (?)", r.DB.Model(&entity.OrderItem{}).
			Select("order_items.order_id").
			Joins("JOIN food_items ON food_items.id = order_items.food_item_id").
			Where("food_items.cook_id = ?", cookID)).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// CookOwnsItemInOrder reports whether at least one line of the order
// references a food item belonging to the cook.
func (r *OrderRepository) CookOwnsItemInOrder(cookID, orderID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.OrderItem{}).
		Joins("JOIN food_items ON food_items.id = order_items.food_item_id").
		Where("order_items.order_id = ? AND food_items.cook_id = ?", orderID, cookID).
		Count(&count).Error
	return count > 0, err
}

// UpdateStatusGuard performs the transition as one conditional update.
// The database serializes racing transitions on the same order: the
// loser sees zero rows affected because the winner already left `from`.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
