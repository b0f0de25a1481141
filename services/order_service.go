package services

import (
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/albertkemp/home-cooking/entity"
	"github.com/albertkemp/home-cooking/pkg/apperr"
	"github.com/albertkemp/home-cooking/repository"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	ItemRepo *repository.FoodItemRepository
	CartRepo *repository.CartRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, itemRepo *repository.FoodItemRepository, cartRepo *repository.CartRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, ItemRepo: itemRepo, CartRepo: cartRepo}
}

// ----- DTOs from controller -----

type OrderLineIn struct {
	FoodItemID uint  `json:"foodItemId" binding:"required"`
	Quantity   int   `json:"quantity" binding:"required"`
	Price      int64 `json:"price" binding:"required"` // unit price snapshot from the client
}

type CreateOrderReq struct {
	Items []OrderLineIn `json:"items" binding:"required,min=1"`
	Total int64         `json:"total" binding:"required"`
}

// Validate checks the proposed lines against current item state without
// mutating anything. Line failures are collected per item so the caller
// learns which items failed and why.
func (s *OrderService) Validate(lines []OrderLineIn, now time.Time) error {
	if len(lines) == 0 {
		return apperr.Wrap(apperr.ErrInvalidInput, "items is required")
	}

	ids := make([]uint, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.FoodItemID)
	}
	items, err := s.ItemRepo.FindByIDs(ids)
	if err != nil {
		return err
	}
	byID := make(map[uint]*entity.FoodItem, len(items))
	for i := range items {
		byID[items[i].ID] = &items[i]
	}

	var result *multierror.Error
	for _, l := range lines {
		item, ok := byID[l.FoodItemID]
		if !ok {
			result = multierror.Append(result,
				apperr.Wrap(apperr.ErrNotFound, "food item %d not found", l.FoodItemID))
			continue
		}
		if a := ResolveAvailability(item, now); a.Status != StatusAvailable {
			result = multierror.Append(result,
				apperr.Wrap(apperr.ErrUnavailable, "food item %d is %s", item.ID, a.Status))
			continue
		}
		if l.Quantity <= 0 || l.Price <= 0 {
			result = multierror.Append(result,
				apperr.Wrap(apperr.ErrInvalidInput, "food item %d: quantity and price must be positive", item.ID))
			continue
		}
		if l.Quantity > item.Remaining() {
			result = multierror.Append(result,
				apperr.Wrap(apperr.ErrUnavailable, "food item %d: only %d servings left", item.ID, item.Remaining()))
		}
	}
	return result.ErrorOrNil()
}

// Create validates the lines and persists the order plus its items in
// one transaction, initial status PENDING. Inventory is not debited
// here; the debit happens at completion.
func (s *OrderService) Create(eaterID uint, req *CreateOrderReq) (*entity.Order, error) {
	if err := s.Validate(req.Items, time.Now()); err != nil {
		return nil, err
	}

	var total int64
	for _, l := range req.Items {
		total += l.Price * int64(l.Quantity)
	}
	if req.Total != total {
		return nil, apperr.Wrap(apperr.ErrInvalidInput, "total %d does not match line totals %d", req.Total, total)
	}

	var order entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order = entity.Order{EaterID: eaterID, Status: entity.OrderPending, Total: total}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, l := range req.Items {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				FoodItemID: l.FoodItemID,
				Quantity:   l.Quantity,
				UnitPrice:  l.Price,
				Total:      l.Price * int64(l.Quantity),
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			order.Items = append(order.Items, oi)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"orderId": order.ID,
		"eaterId": eaterID,
		"items":   len(req.Items),
	}).Info("order created")
	return &order, nil
}

// CreateFromCart turns the eater's cart into an order using the prices
// snapshotted at add time, then empties the cart in the same
// transaction.
func (s *OrderService) CreateFromCart(eaterID uint) (*entity.Order, error) {
	cart, err := s.CartRepo.GetWithItems(eaterID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, apperr.Wrap(apperr.ErrInvalidInput, "cart is empty")
	}

	lines := make([]OrderLineIn, 0, len(cart.Items))
	var total int64
	for _, it := range cart.Items {
		lines = append(lines, OrderLineIn{FoodItemID: it.FoodItemID, Quantity: it.Quantity, Price: it.UnitPrice})
		total += it.Total
	}
	if err := s.Validate(lines, time.Now()); err != nil {
		return nil, err
	}

	var order entity.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order = entity.Order{EaterID: eaterID, Status: entity.OrderPending, Total: total}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, l := range lines {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				FoodItemID: l.FoodItemID,
				Quantity:   l.Quantity,
				UnitPrice:  l.Price,
				Total:      l.Price * int64(l.Quantity),
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			order.Items = append(order.Items, oi)
		}
		return s.CartRepo.Clear(tx, eaterID)
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"orderId": order.ID,
		"eaterId": eaterID,
		"items":   len(lines),
	}).Info("order created from cart")
	return &order, nil
}

// ----- Lists -----

func (s *OrderService) ListForEater(eaterID uint) ([]entity.Order, error) {
	return s.Repo.ListForEater(eaterID)
}

func (s *OrderService) ListPendingForCook(cookID uint) ([]entity.Order, error) {
	return s.Repo.ListPendingForCook(cookID)
}
