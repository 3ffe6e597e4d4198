package model

import "time"

// Payment 支付记录；declined/pending 结果仅作审计，approved 才改订单状态
type Payment struct {
	PaymentID     int64     `json:"payment_id" gorm:"primaryKey;autoIncrement"`
	MethodID      string    `json:"method_id" gorm:"type:varchar(32);not null"`
	OrderID       int64     `json:"order_id" gorm:"index:idx_payment_order;not null"`
	TransactionID string    `json:"transaction_id" gorm:"type:varchar(64);index"`
	PaymentDate   time.Time `json:"payment_date" gorm:"not null"`
	PaymentStatus string    `json:"payment_status" gorm:"type:varchar(16);index;not null"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Payment) TableName() string { return "payments" }

// 网关侧支付结果常量
const (
	PaymentStatusApproved = "approved"
	PaymentStatusDeclined = "declined"
	PaymentStatusPending  = "pending"
)
