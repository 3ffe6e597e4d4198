package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/penta-book/internal/model"
)

// OrderRepository 订单仓储接口
type OrderRepository interface {
	// GetByID 根据订单ID查询订单
	GetByID(ctx context.Context, orderID int64) (*model.Order, error)

	// ListByBuyer 根据买家ID查询订单列表
	ListByBuyer(ctx context.Context, buyerID int64, limit int) ([]*model.Order, error)

	// ListItems 查询订单明细
	ListItems(ctx context.Context, orderID int64) ([]*model.OrderItem, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepository{db: db} }

func (r *orderRepository) GetByID(ctx context.Context, orderID int64) (*model.Order, error) {
	var order model.Order
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListByBuyer(ctx context.Context, buyerID int64, limit int) ([]*model.Order, error) {
	if limit <= 0 {
		limit = 20
	}
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("order_date DESC").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) ListItems(ctx context.Context, orderID int64) ([]*model.OrderItem, error) {
	var items []*model.OrderItem
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("order_item_id").
		Find(&items).Error
	return items, err
}
