package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertkemp/home-cooking/entity"
	"github.com/albertkemp/home-cooking/pkg/apperr"
)

func TestValidateRejectsEmptyOrder(t *testing.T) {
	svc := newOrderService(newTestDB(t))
	err := svc.Validate(nil, time.Now())
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestValidateUnknownItem(t *testing.T) {
	svc := newOrderService(newTestDB(t))
	err := svc.Validate([]OrderLineIn{{FoodItemID: 999, Quantity: 1, Price: 999}}, time.Now())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestValidateUnavailableItem(t *testing.T) {
	db := newTestDB(t)
	cook := createUser(t, db, "cook@test.io", entity.RoleCook)
	meal := createMeal(t, db, cook, "Pad Thai", 950, 5, false)

	svc := newOrderService(db)
	err := svc.Validate([]OrderLineIn{{FoodItemID: meal.ID, Quantity: 1, Price: meal.Price}}, time.Now())
	assert.ErrorIs(t, err, apperr.ErrUnavailable)
}

func TestValidateServingsScenario(t *testing.T) {
	// servings=2, servingsSold=0: qty 2 passes, qty 3 fails.
	db := newTestDB(t)
	cook := createUser(t, db, "cook@test.io", entity.RoleCook)
	meal := createMeal(t, db, cook, "Laksa", 1200, 2, true)

	svc := newOrderService(db)
	require.NoError(t, svc.Validate([]OrderLineIn{{FoodItemID: meal.ID, Quantity: 2, Price: meal.Price}}, time.Now()))

	err := svc.Validate([]OrderLineIn{{FoodItemID: meal.ID, Quantity: 3, Price: meal.Price}}, time.Now())
	assert.ErrorIs(t, err, apperr.ErrUnavailable)
}

func TestValidateNonPositiveQuantityAndPrice(t *testing.T) {
	db := newTestDB(t)
	cook := createUser(t, db, "cook@test.io", entity.RoleCook)
	meal := createMeal(t, db, cook, "Soup", 500, 5, true)

	svc := newOrderService(db)
	err := svc.Validate([]OrderLineIn{{FoodItemID: meal.ID, Quantity: 0, Price: meal.Price}}, time.Now())
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	err = svc.Validate([]OrderLineIn{{FoodItemID: meal.ID, Quantity: 1, Price: 0}}, time.Now())
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestValidateIsSideEffectFree(t *testing.T) {
	db := newTestDB(t)
	cook := createUser(t, db, "cook@test.io", entity.RoleCook)
	meal := createMeal(t, db, cook, "Curry", 800, 3, true)

	svc := newOrderService(db)
	require.NoError(t, svc.Validate([]OrderLineIn{{FoodItemID: meal.ID, Quantity: 2, Price: meal.Price}}, time.Now()))

	var got entity.FoodItem
	require.NoError(t, db.First(&got, meal.ID).Error)
	assert.Equal(t, 0, got.ServingsSold)
	assert.True(t, got.Available)
}

func TestCreateOrder(t *testing.T) {
	db := newTestDB(t)
	cook := createUser(t, db, "cook@test.io", entity.RoleCook)
	eater := createUser(t, db, "eater@test.io", entity.RoleEater)
	meal := createMeal(t, db, cook, "Dumplings", 700, 10, true)

	svc := newOrderService(db)
	order, err := svc.Create(eater.ID, &CreateOrderReq{
		Items: []OrderLineIn{{FoodItemID: meal.ID, Quantity: 3, Price: meal.Price}},
		Total: 2100,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, int64(2100), order.Total)
	require.Len(t, order.Items, 1)
	assert.Equal(t, int64(2100), order.Items[0].Total)

	// No inventory debit at creation time.
	var got entity.FoodItem
	require.NoError(t, db.First(&got, meal.ID).Error)
	assert.Equal(t, 0, got.ServingsSold)
}

func TestCreateOrderRejectsMismatchedTotal(t *testing.T) {
	db := newTestDB(t)
	cook := createUser(t, db, "cook@test.io", entity.RoleCook)
	eater := createUser(t, db, "eater@test.io", entity.RoleEater)
	meal := createMeal(t, db, cook, "Bao", 400, 10, true)

	svc := newOrderService(db)
	_, err := svc.Create(eater.ID, &CreateOrderReq{
		Items: []OrderLineIn{{FoodItemID: meal.ID, Quantity: 2, Price: meal.Price}},
		Total: 999,
	})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestCreateOrderUnknownItemLeavesNoRow(t *testing.T) {
	db := newTestDB(t)
	eater := createUser(t, db, "eater@test.io", entity.RoleEater)

	svc := newOrderService(db)
	_, err := svc.Create(eater.ID, &CreateOrderReq{
		Items: []OrderLineIn{{FoodItemID: 424242, Quantity: 1, Price: 999}},
		Total: 999,
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCancelOrder(t *testing.T) {
	db := newTestDB(t)
	cook := createUser(t, db, "cook@test.io", entity.RoleCook)
	eater := createUser(t, db, "eater@test.io", entity.RoleEater)
	other := createUser(t, db, "other@test.io", entity.RoleEater)
	meal := createMeal(t, db, cook, "Ramen", 1100, 5, true)

	svc := newOrderService(db)
	order, err := svc.Create(eater.ID, &CreateOrderReq{
		Items: []OrderLineIn{{FoodItemID: meal.ID, Quantity: 1, Price: meal.Price}},
		Total: 1100,
	})
	require.NoError(t, err)

	// Someone else's order is off limits.
	_, err = svc.Cancel(eaterPrincipal(other), order.ID)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	// The owner can cancel.
	cancelled, err := svc.Cancel(eaterPrincipal(eater), order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCancelled, cancelled.Status)

	// CANCELLED is terminal.
	_, err = svc.Cancel(eaterPrincipal(eater), order.ID)
	assert.ErrorIs(t, err, apperr.ErrInvalidTransition)
	_, err = svc.Complete(cookPrincipal(cook), order.ID, entity.OrderCompleted)
	assert.ErrorIs(t, err, apperr.ErrInvalidTransition)

	// Cancellation never touches inventory.
	var got entity.FoodItem
	require.NoError(t, db.First(&got, meal.ID).Error)
	assert.Equal(t, 0, got.ServingsSold)
}

func TestCancelUnknownOrder(t *testing.T) {
	db := newTestDB(t)
	eater := createUser(t, db, "eater@test.io", entity.RoleEater)

	svc := newOrderService(db)
	_, err := svc.Cancel(eaterPrincipal(eater), 777)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCompleteOrderDebitsInventory(t *testing.T) {
	db := newTestDB(t)
	cook := createUser(t, db, "cook@test.io", entity.RoleCook)
	eater := createUser(t, db, "eater@test.io", entity.RoleEater)
	meal := createMeal(t, db, cook, "Khao Soi", 900, 5, true)

	svc := newOrderService(db)
	order, err := svc.Create(eater.ID, &CreateOrderReq{
		Items: []OrderLineIn{{FoodItemID: meal.ID, Quantity: 2, Price: meal.Price}},
		Total: 1800,
	})
	require.NoError(t, err)

	done, err := svc.Complete(cookPrincipal(cook), order.ID, entity.OrderCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCompleted, done.Status)

	var got entity.FoodItem
	require.NoError(t, db.First(&got, meal.ID).Error)
	assert.Equal(t, 2, got.ServingsSold)
	assert.True(t, got.Available)
}

func TestCompleteOrderAutoExhaustsInventory(t *testing.T) {
	db := newTestDB(t)
	cook := createUser(t, db, "cook@test.io", entity.RoleCook)
	eater := createUser(t, db, "eater@test.io", entity.RoleEater)
	meal := createMeal(t, db, cook, "Last Portions", 600, 2, true)

	svc := newOrderService(db)
	order, err := svc.Create(eater.ID, &CreateOrderReq{
		Items: []OrderLineIn{{FoodItemID: meal.ID, Quantity: 2, Price: meal.Price}},
		Total: 1200,
	})
	require.NoError(t, err)

	_, err = svc.Complete(cookPrincipal(cook), order.ID, entity.OrderCompleted)
	require.NoError(t, err)

	var got entity.FoodItem
	require.NoError(t, db.First(&got, meal.ID).Error)
	assert.Equal(t, 2, got.ServingsSold)
	assert.False(t, got.Available, "exhausted item flips unavailable")
}

func TestCompleteOversellAbortsTransition(t *testing.T) {
	// Two pending orders over the same 3 servings. The first completion
	// takes 2; the second would need 2 more and must fail whole, leaving
	// the order PENDING and inventory untouched by the failed attempt.
	db := newTestDB(t)
	cook := createUser(t, db, "cook@test.io", entity.RoleCook)
	eater := createUser(t, db, "eater@test.io", entity.RoleEater)
	meal := createMeal(t, db, cook, "Short Stock", 500, 3, true)

	svc := newOrderService(db)
	first, err := svc.Create(eater.ID, &CreateOrderReq{
		Items: []OrderLineIn{{FoodItemID: meal.ID, Quantity: 2, Price: meal.Price}},
		Total: 1000,
	})
	require.NoError(t, err)
	second, err := svc.Create(eater.ID, &CreateOrderReq{
		Items: []OrderLineIn{{FoodItemID: meal.ID, Quantity: 2, Price: meal.Price}},
		Total: 1000,
	})
	require.NoError(t, err)

	_, err = svc.Complete(cookPrincipal(cook), first.ID, entity.OrderCompleted)
	require.NoError(t, err)

	_, err = svc.Complete(cookPrincipal(cook), second.ID, entity.OrderCompleted)
	assert.ErrorIs(t, err, apperr.ErrUnavailable)

	var gotOrder entity.Order
	require.NoError(t, db.First(&gotOrder, second.ID).Error)
	assert.Equal(t, entity.OrderPending, gotOrder.Status, "failed completion rolls back the status change")

	var gotItem entity.FoodItem
	require.NoError(t, db.First(&gotItem, meal.ID).Error)
	assert.Equal(t, 2, gotItem.ServingsSold)
}

func TestCompleteAuthority(t *testing.T) {
	db := newTestDB(t)
	cook := createUser(t, db, "cook@test.io", entity.RoleCook)
	stranger := createUser(t, db, "stranger@test.io", entity.RoleCook)
	eater := createUser(t, db, "eater@test.io", entity.RoleEater)
	meal := createMeal(t, db, cook, "Gyoza", 650, 5, true)

	svc := newOrderService(db)
	order, err := svc.Create(eater.ID, &CreateOrderReq{
		Items: []OrderLineIn{{FoodItemID: meal.ID, Quantity: 1, Price: meal.Price}},
		Total: 650,
	})
	require.NoError(t, err)

	// A cook with no item in the order is refused.
	_, err = svc.Complete(cookPrincipal(stranger), order.ID, entity.OrderCompleted)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	// Non-cook roles cannot complete at all.
	_, err = svc.Complete(eaterPrincipal(eater), order.ID, entity.OrderCompleted)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	// Only COMPLETED is a valid target.
	_, err = svc.Complete(cookPrincipal(cook), order.ID, entity.OrderCancelled)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestCompletedIsTerminal(t *testing.T) {
	db := newTestDB(t)
	cook := createUser(t, db, "cook@test.io", entity.RoleCook)
	eater := createUser(t, db, "eater@test.io", entity.RoleEater)
	meal := createMeal(t, db, cook, "Tonkatsu", 1300, 5, true)

	svc := newOrderService(db)
	order, err := svc.Create(eater.ID, &CreateOrderReq{
		Items: []OrderLineIn{{FoodItemID: meal.ID, Quantity: 1, Price: meal.Price}},
		Total: 1300,
	})
	require.NoError(t, err)

	_, err = svc.Complete(cookPrincipal(cook), order.ID, entity.OrderCompleted)
	require.NoError(t, err)

	// Racing transitions resolve at the database: the loser finds the
	// order already out of PENDING.
	_, err = svc.Complete(cookPrincipal(cook), order.ID, entity.OrderCompleted)
	assert.ErrorIs(t, err, apperr.ErrInvalidTransition)
	_, err = svc.Cancel(eaterPrincipal(eater), order.ID)
	assert.ErrorIs(t, err, apperr.ErrInvalidTransition)
}

func TestCreateFromCart(t *testing.T) {
	db := newTestDB(t)
	cook := createUser(t, db, "cook@test.io", entity.RoleCook)
	eater := createUser(t, db, "eater@test.io", entity.RoleEater)
	mealA := createMeal(t, db, cook, "Satay", 300, 10, true)
	mealB := createMeal(t, db, cook, "Roti", 200, 10, true)

	orderSvc := newOrderService(db)
	cartSvc := NewCartService(db, orderSvc.CartRepo, orderSvc.ItemRepo)

	require.NoError(t, cartSvc.Add(eater.ID, &AddToCartIn{FoodItemID: mealA.ID, Quantity: 2}))
	require.NoError(t, cartSvc.Add(eater.ID, &AddToCartIn{FoodItemID: mealB.ID, Quantity: 1}))

	order, err := orderSvc.CreateFromCart(eater.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, int64(800), order.Total)
	assert.Len(t, order.Items, 2)

	// Checkout empties the cart.
	cart, subtotal, err := cartSvc.Get(eater.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, subtotal)
}

func TestCreateFromEmptyCart(t *testing.T) {
	db := newTestDB(t)
	eater := createUser(t, db, "eater@test.io", entity.RoleEater)

	svc := newOrderService(db)
	_, err := svc.CreateFromCart(eater.ID)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}
