package model

import "time"

// Shipment 发货记录（订单支付成功后异步发起）
type Shipment struct {
	ShipmentID      int64     `json:"shipment_id" gorm:"primaryKey;autoIncrement"`
	OrderID         int64     `json:"order_id" gorm:"uniqueIndex:ux_shipment_order;not null"`
	TrackingNo      string    `json:"tracking_no" gorm:"type:varchar(64);index"`
	ShipmentService string    `json:"shipment_service" gorm:"type:varchar(32)"`
	Status          string    `json:"status" gorm:"type:varchar(16);not null"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Shipment) TableName() string { return "shipments" }
