package service

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/penta-book/internal/gateway"
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

func seedBooks(t *testing.T, db *gorm.DB) []model.Book {
	t.Helper()
	shop := model.Shop{ShopName: "Toko Pustaka", ShopEmail: "toko@example.com", ShopPhone: "0811", Password: "p"}
	if err := db.Create(&shop).Error; err != nil {
		t.Fatalf("seed shop: %v", err)
	}
	books := []model.Book{
		{ShopID: shop.ShopID, BookName: "Book A", Author: "A", Genre: "fiction", Price: 50000},
		{ShopID: shop.ShopID, BookName: "Book B", Author: "B", Genre: "fiction", Price: 30000},
	}
	if err := db.Create(&books).Error; err != nil {
		t.Fatalf("seed books: %v", err)
	}
	return books
}

// fakePaymentClient 固定返回预设结果或错误
type fakePaymentClient struct {
	result *gateway.PaymentResult
	err    error
	calls  int
}

func (f *fakePaymentClient) ProcessPayment(_ context.Context, req gateway.PaymentRequest) (*gateway.PaymentResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	r := *f.result
	r.MethodID = req.MethodID
	r.OrderID = req.OrderID
	return &r, nil
}

// fakeShipmentClient 记录发货请求
type fakeShipmentClient struct {
	trackingNo string
	err        error
	requests   []gateway.ShipmentRequest
}

func (f *fakeShipmentClient) InitiateShipment(_ context.Context, req gateway.ShipmentRequest) (*gateway.ShipmentResult, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &gateway.ShipmentResult{Status: "created", TrackingNo: f.trackingNo}, nil
}

func (f *fakeShipmentClient) TrackShipment(_ context.Context, trackingNo string) (*gateway.ShipmentRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &gateway.ShipmentRecord{TrackingNo: trackingNo, Status: "created"}, nil
}
