package model

import "time"

// OrderItem 订单明细，结账瞬间快照单价与行小计
// line_total = quantity * unit_price，后续书价变化不影响已有订单
type OrderItem struct {
	OrderItemID int64     `json:"order_item_id" gorm:"primaryKey;autoIncrement"`
	OrderID     int64     `json:"order_id" gorm:"index:idx_orderitem_order;not null"`
	BookID      int64     `json:"book_id" gorm:"index;not null"`
	ShopID      int64     `json:"shop_id" gorm:"index;not null"`
	Quantity    int64     `json:"quantity" gorm:"not null"`
	UnitPrice   float64   `json:"unit_price" gorm:"type:decimal(12,2);not null"`
	LineTotal   float64   `json:"line_total" gorm:"type:decimal(12,2);not null"`
	CreatedAt   time.Time `json:"created_at"`
}

func (OrderItem) TableName() string { return "orderitems" }
