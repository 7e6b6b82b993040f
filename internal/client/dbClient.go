package client

import (
	"log"
	"storefront-checkout-demo/internal/model"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func InitSqliteClient(databaseURL string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal(err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatal(err)
	}

	return db
}
