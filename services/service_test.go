package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/albertkemp/home-cooking/configs"
	"github.com/albertkemp/home-cooking/entity"
	"github.com/albertkemp/home-cooking/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, configs.Migrate(db))
	return db
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewFoodItemRepository(db),
		repository.NewCartRepository(db))
}

func newMealService(db *gorm.DB) *MealService {
	return NewMealService(db,
		repository.NewMenuRepository(db),
		repository.NewFoodItemRepository(db),
		repository.NewImageRepository(db))
}

func newReviewService(db *gorm.DB) *ReviewService {
	return NewReviewService(
		repository.NewReviewRepository(db),
		repository.NewUserRepository(db),
		repository.NewFoodItemRepository(db))
}

func createUser(t *testing.T, db *gorm.DB, email, role string) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, Password: "x", Name: email, Role: role}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createMeal(t *testing.T, db *gorm.DB, cook *entity.User, name string, price int64, servings int, available bool) *entity.FoodItem {
	t.Helper()
	menu := &entity.Menu{CookID: cook.ID, Name: "My Menu"}
	require.NoError(t, db.Where("cook_id = ?", cook.ID).FirstOrCreate(menu).Error)

	item := &entity.FoodItem{
		Name: name, Description: "test meal", Price: price,
		Available: available, Servings: servings,
		MenuID: menu.ID, CookID: cook.ID,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func eaterPrincipal(u *entity.User) Principal {
	return Principal{UserID: u.ID, Role: entity.RoleEater}
}

func cookPrincipal(u *entity.User) Principal {
	return Principal{UserID: u.ID, Role: entity.RoleCook}
}

func timePtr(t time.Time) *time.Time { return &t }
