package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/albertkemp/home-cooking/entity"
)

// ConnectDB opens the database and returns the handle. The handle is
// injected into repositories and services from main; nothing in this
// package holds it.
func ConnectDB(source string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Menu{}, &entity.FoodItem{}, &entity.Image{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Review{},
		&entity.Cart{}, &entity.CartItem{},
	)
}
