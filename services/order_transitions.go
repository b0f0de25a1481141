package services

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/albertkemp/home-cooking/entity"
	"github.com/albertkemp/home-cooking/pkg/apperr"
)

// Cancel moves the eater's own PENDING order to CANCELLED. No inventory
// effect: servings are only debited at completion.
func (s *OrderService) Cancel(p Principal, orderID uint) (*entity.Order, error) {
	var out *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Wrap(apperr.ErrNotFound, "order %d not found", orderID)
			}
			return err
		}

		if err := Authorize(p, ActionCancelOrder, OrderFacts{Order: o}); err != nil {
			return err
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, entity.OrderPending, entity.OrderCancelled)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.Wrap(apperr.ErrInvalidTransition, "cannot cancel order with status %s", o.Status)
		}

		o.Status = entity.OrderCancelled
		out = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"orderId": orderID, "eaterId": p.UserID}).Info("order cancelled")
	return out, nil
}

// Complete moves a PENDING order to COMPLETED on behalf of a cook owning
// at least one of its items, and debits servings for every line in the
// same transaction. A debit that would oversell aborts the whole
// transition, so order status and inventory can never split.
func (s *OrderService) Complete(p Principal, orderID uint, targetStatus string) (*entity.Order, error) {
	if targetStatus != entity.OrderCompleted {
		return nil, apperr.Wrap(apperr.ErrInvalidInput, "invalid target status: %s", targetStatus)
	}

	var out *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Wrap(apperr.ErrNotFound, "order %d not found", orderID)
			}
			return err
		}

		owns, err := s.Repo.CookOwnsItemInOrder(p.UserID, o.ID)
		if err != nil {
			return err
		}
		if err := Authorize(p, ActionCompleteOrder, OrderFacts{Order: o, CookOwnsItem: owns}); err != nil {
			return err
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, entity.OrderPending, entity.OrderCompleted)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.Wrap(apperr.ErrInvalidTransition, "cannot complete order with status %s", o.Status)
		}

		items, err := s.Repo.GetOrderItems(o.ID)
		if err != nil {
			return err
		}
		for _, it := range items {
			ok, err := s.ItemRepo.CommitServings(tx, it.FoodItemID, it.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return apperr.Wrap(apperr.ErrUnavailable, "food item %d: not enough servings left", it.FoodItemID)
			}
		}

		o.Status = entity.OrderCompleted
		out = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"orderId": orderID, "cookId": p.UserID}).Info("order completed")
	return out, nil
}
