package model

import "time"

// CartItem 购物车明细
// 复合唯一键，重复加购只增加数量
// ux_cartitem_cart_book = (cart_id, book_id)
type CartItem struct {
	CartItemID int64     `json:"cart_item_id" gorm:"primaryKey;autoIncrement"`
	CartID     int64     `json:"cart_id" gorm:"uniqueIndex:ux_cartitem_cart_book;index:idx_cartitem_cart;not null"`
	BookID     int64     `json:"book_id" gorm:"uniqueIndex:ux_cartitem_cart_book;not null"`
	Quantity   int64     `json:"quantity" gorm:"not null;default:1"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (CartItem) TableName() string { return "cartitems" }
