package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/d60-Lab/penta-book/internal/model"
	"github.com/d60-Lab/penta-book/internal/repository"
)

// OrderDetail 订单与明细
type OrderDetail struct {
	Order *model.Order       `json:"order"`
	Items []*model.OrderItem `json:"items"`
}

// OrderService 订单查询服务（买家视角，校验归属）
type OrderService interface {
	Get(ctx context.Context, buyerID, orderID int64) (*OrderDetail, error)
	ListByBuyer(ctx context.Context, buyerID int64, limit int) ([]*model.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderService{orderRepo: orderRepo}
}

func (s *orderService) Get(ctx context.Context, buyerID, orderID int64) (*OrderDetail, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
		}
		return nil, err
	}
	// 他人订单按不存在处理
	if order.BuyerID != buyerID {
		return nil, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
	}
	items, err := s.orderRepo.ListItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: order, Items: items}, nil
}

func (s *orderService) ListByBuyer(ctx context.Context, buyerID int64, limit int) ([]*model.Order, error) {
	return s.orderRepo.ListByBuyer(ctx, buyerID, limit)
}
