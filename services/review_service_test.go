package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertkemp/home-cooking/entity"
	"github.com/albertkemp/home-cooking/pkg/apperr"
)

func TestAddReviewValidatesRating(t *testing.T) {
	db := newTestDB(t)
	cook := createUser(t, db, "cook@test.io", entity.RoleCook)
	eater := createUser(t, db, "eater@test.io", entity.RoleEater)

	svc := newReviewService(db)
	for _, rating := range []int{0, -1, 6} {
		_, err := svc.Add(eaterPrincipal(eater), &AddReviewIn{CookID: cook.ID, Rating: rating})
		assert.ErrorIs(t, err, apperr.ErrInvalidInput, "rating %d", rating)
	}
}

func TestAddReviewSubjectChecks(t *testing.T) {
	db := newTestDB(t)
	eater := createUser(t, db, "eater@test.io", entity.RoleEater)
	notACook := createUser(t, db, "civilian@test.io", entity.RoleEater)

	svc := newReviewService(db)

	_, err := svc.Add(eaterPrincipal(eater), &AddReviewIn{Rating: 4})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput, "subject is required")

	_, err = svc.Add(eaterPrincipal(eater), &AddReviewIn{CookID: 999, Rating: 4})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.Add(eaterPrincipal(eater), &AddReviewIn{FoodItemID: 999, Rating: 4})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.Add(eaterPrincipal(eater), &AddReviewIn{CookID: notACook.ID, Rating: 4})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput, "subject must hold the COOK role")
}

func TestDuplicateCookReviewConflicts(t *testing.T) {
	db := newTestDB(t)
	cook := createUser(t, db, "cook@test.io", entity.RoleCook)
	eater := createUser(t, db, "eater@test.io", entity.RoleEater)

	svc := newReviewService(db)
	_, err := svc.Add(eaterPrincipal(eater), &AddReviewIn{CookID: cook.ID, Rating: 5, Comment: "great"})
	require.NoError(t, err)

	_, err = svc.Add(eaterPrincipal(eater), &AddReviewIn{CookID: cook.ID, Rating: 1, Comment: "changed my mind"})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	var count int64
	require.NoError(t, db.Model(&entity.Review{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "duplicate never creates a second row")
}

func TestDuplicateFoodItemReviewConflicts(t *testing.T) {
	db := newTestDB(t)
	cook := createUser(t, db, "cook@test.io", entity.RoleCook)
	eater := createUser(t, db, "eater@test.io", entity.RoleEater)
	meal := createMeal(t, db, cook, "Pho", 1000, 5, true)

	svc := newReviewService(db)
	_, err := svc.Add(eaterPrincipal(eater), &AddReviewIn{FoodItemID: meal.ID, Rating: 4})
	require.NoError(t, err)

	_, err = svc.Add(eaterPrincipal(eater), &AddReviewIn{FoodItemID: meal.ID, Rating: 2})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestCookAndItemReviewsAreSeparateSubjects(t *testing.T) {
	// Reviewing the cook directly and reviewing one of their items are
	// different subjects; both may exist for the same reviewer.
	db := newTestDB(t)
	cook := createUser(t, db, "cook@test.io", entity.RoleCook)
	eater := createUser(t, db, "eater@test.io", entity.RoleEater)
	meal := createMeal(t, db, cook, "Banh Mi", 450, 5, true)

	svc := newReviewService(db)
	_, err := svc.Add(eaterPrincipal(eater), &AddReviewIn{CookID: cook.ID, Rating: 5})
	require.NoError(t, err)
	_, err = svc.Add(eaterPrincipal(eater), &AddReviewIn{FoodItemID: meal.ID, Rating: 3})
	require.NoError(t, err)
}

func TestAverageRating(t *testing.T) {
	db := newTestDB(t)
	cook := createUser(t, db, "cook@test.io", entity.RoleCook)
	a := createUser(t, db, "a@test.io", entity.RoleEater)
	b := createUser(t, db, "b@test.io", entity.RoleEater)

	svc := newReviewService(db)

	// No reviews yet: defined zero aggregate, not NaN.
	out, err := svc.ListForCook(cook.ID, 20, 0)
	require.NoError(t, err)
	assert.Zero(t, out.Aggregate.Count)
	assert.Zero(t, out.Aggregate.Avg)

	_, err = svc.Add(eaterPrincipal(a), &AddReviewIn{CookID: cook.ID, Rating: 5})
	require.NoError(t, err)
	_, err = svc.Add(eaterPrincipal(b), &AddReviewIn{CookID: cook.ID, Rating: 2})
	require.NoError(t, err)

	out, err = svc.ListForCook(cook.ID, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), out.Aggregate.Count)
	assert.InDelta(t, 3.5, out.Aggregate.Avg, 0.001)
	assert.Len(t, out.Items, 2)
}

func TestFoodItemReviewCountsTowardItemAggregate(t *testing.T) {
	db := newTestDB(t)
	cook := createUser(t, db, "cook@test.io", entity.RoleCook)
	eater := createUser(t, db, "eater@test.io", entity.RoleEater)
	meal := createMeal(t, db, cook, "Som Tam", 550, 5, true)

	svc := newReviewService(db)
	_, err := svc.Add(eaterPrincipal(eater), &AddReviewIn{FoodItemID: meal.ID, Rating: 4})
	require.NoError(t, err)

	out, err := svc.ListForFoodItem(meal.ID, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.Aggregate.Count)
	assert.InDelta(t, 4.0, out.Aggregate.Avg, 0.001)

	// Item reviews do not leak into the cook's direct-review aggregate.
	cookOut, err := svc.ListForCook(cook.ID, 20, 0)
	require.NoError(t, err)
	assert.Zero(t, cookOut.Aggregate.Count)
}
