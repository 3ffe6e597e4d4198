package repository

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/penta-book/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&model.Buyer{}, &model.Shop{}, &model.Book{},
		&model.Cart{}, &model.CartItem{},
		&model.Order{}, &model.OrderItem{},
		&model.Payment{}, &model.PaymentMethod{}, &model.Shipment{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedShopAndBooks(t *testing.T, db *gorm.DB) (model.Shop, []model.Book) {
	t.Helper()
	shop := model.Shop{ShopName: "Toko Pustaka", OwnerName: "Dewi", ShopEmail: "toko@example.com", ShopPhone: "0811", Password: "p"}
	if err := db.Create(&shop).Error; err != nil {
		t.Fatalf("seed shop: %v", err)
	}
	books := []model.Book{
		{ShopID: shop.ShopID, BookName: "Laskar Pelangi", Author: "Andrea Hirata", Genre: "fiction", Price: 50000},
		{ShopID: shop.ShopID, BookName: "Bumi Manusia", Author: "Pramoedya", Genre: "fiction", Price: 30000},
		{ShopID: shop.ShopID, BookName: "Atomic Habits", Author: "James Clear", Genre: "self-help", Price: 90000},
	}
	if err := db.Create(&books).Error; err != nil {
		t.Fatalf("seed books: %v", err)
	}
	return shop, books
}
