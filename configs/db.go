package configs

import (
	"github.com/elshafee/Horus-cafee-managment/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func ConnectionDB(dsn string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}

func SetupDatabase(db *gorm.DB) error {
	// Migrate the schema
	return db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.Order{}, &entity.OrderItem{},
	)
}
