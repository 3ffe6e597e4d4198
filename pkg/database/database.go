package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/penta-book/config"
	"github.com/d60-Lab/penta-book/internal/model"
)

// InitDB 按配置打开数据库连接
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.Database.DSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

// Migrate 初始化数据库表结构并补齐支付方式字典
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Buyer{},
		&model.Shop{},
		&model.Book{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.Payment{},
		&model.PaymentMethod{},
		&model.Shipment{},
	); err != nil {
		return err
	}
	methods := []model.PaymentMethod{
		{MethodID: "credit_card", Name: "Credit Card"},
		{MethodID: "paypal", Name: "PayPal"},
		{MethodID: "bank_transfer", Name: "Bank Transfer"},
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&methods).Error
}
