package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/solveighty/restaurant-mechita/entity"
)

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
		&entity.User{}, &entity.UserAddress{},
		&entity.Menu{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Notification{},
		&entity.Review{},
		&entity.VerificationCode{},
	)
}
