package model

// PaymentMethod 支付方式字典表
type PaymentMethod struct {
	MethodID string `json:"method_id" gorm:"primaryKey;type:varchar(32)"`
	Name     string `json:"name" gorm:"type:varchar(64);not null"`
}

func (PaymentMethod) TableName() string { return "paymentmethods" }
