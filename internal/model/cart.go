package model

import "time"

// Cart 购物车（每个买家最多一个 open 购物车）
type Cart struct {
	CartID    int64     `json:"cart_id" gorm:"primaryKey;autoIncrement"`
	BuyerID   int64     `json:"buyer_id" gorm:"index:idx_cart_buyer_status;not null"`
	Status    string    `json:"status" gorm:"type:varchar(16);index:idx_cart_buyer_status;not null;default:open"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Cart) TableName() string { return "cart" }

// 购物车状态常量
const (
	CartStatusOpen     = "open"
	CartStatusComplete = "complete"
)
