package model

import (
	"time"
)

// Order 订单（结账时由购物车快照生成，除状态外不可变）
type Order struct {
	OrderID         int64     `json:"order_id" gorm:"primaryKey;autoIncrement"`
	CartID          int64     `json:"cart_id" gorm:"index;not null"`
	BuyerID         int64     `json:"buyer_id" gorm:"index:idx_order_buyer_date;not null"`
	Subtotal        float64   `json:"subtotal" gorm:"type:decimal(12,2);not null"`
	Total           float64   `json:"total" gorm:"type:decimal(12,2);not null"`
	Status          string    `json:"status" gorm:"type:varchar(16);index;not null;default:initiated"`
	DeliveryAddress string    `json:"delivery_address" gorm:"type:varchar(255);not null"`
	OrderDate       time.Time `json:"order_date" gorm:"index:idx_order_buyer_date;not null"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Order) TableName() string { return "orders" }

// 订单状态常量
const (
	OrderStatusInitiated = "initiated"
	OrderStatusPaid      = "paid"
)
