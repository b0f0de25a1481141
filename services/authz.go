package services

import (
	"github.com/albertkemp/home-cooking/entity"
	"github.com/albertkemp/home-cooking/pkg/apperr"
)

// Principal is the authenticated identity the auth middleware supplies.
type Principal struct {
	UserID uint
	Role   string
}

type Action string

const (
	ActionCancelOrder   Action = "order:cancel"
	ActionCompleteOrder Action = "order:complete"
	ActionMutateMeal    Action = "meal:mutate"
	ActionWriteReview   Action = "review:write"
)

// OrderFacts carries the facts the order policy needs; the caller
// resolves them from storage before asking for a decision.
type OrderFacts struct {
	Order        *entity.Order
	CookOwnsItem bool
}

// Authorize is the single policy gate: (principal, action, resource) →
// allow or deny. Every mutating operation calls it before touching
// storage.
func Authorize(p Principal, action Action, resource any) error {
	if p.UserID == 0 {
		return apperr.Wrap(apperr.ErrUnauthorized, "no principal")
	}

	switch action {
	case ActionCancelOrder:
		facts, ok := resource.(OrderFacts)
		if !ok || facts.Order == nil {
			return apperr.Wrap(apperr.ErrForbidden, "no order in scope")
		}
		if facts.Order.EaterID != p.UserID {
			return apperr.Wrap(apperr.ErrForbidden, "you can only cancel your own orders")
		}
		return nil

	case ActionCompleteOrder:
		if p.Role != entity.RoleCook {
			return apperr.Wrap(apperr.ErrForbidden, "only cooks can update order status")
		}
		facts, ok := resource.(OrderFacts)
		if !ok || facts.Order == nil {
			return apperr.Wrap(apperr.ErrForbidden, "no order in scope")
		}
		if !facts.CookOwnsItem {
			return apperr.Wrap(apperr.ErrForbidden, "order contains none of your items")
		}
		return nil

	case ActionMutateMeal:
		item, ok := resource.(*entity.FoodItem)
		if !ok || item == nil {
			return apperr.Wrap(apperr.ErrForbidden, "no meal in scope")
		}
		if item.CookID != p.UserID {
			return apperr.Wrap(apperr.ErrForbidden, "meal belongs to another cook")
		}
		return nil

	case ActionWriteReview:
		// Any authenticated user may review; subject checks live in the
		// review service.
		return nil
	}

	return apperr.Wrap(apperr.ErrForbidden, "unknown action %q", action)
}
