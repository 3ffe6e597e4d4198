package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/d60-Lab/penta-book/internal/model"
	"github.com/d60-Lab/penta-book/internal/repository"
	"github.com/d60-Lab/penta-book/pkg/logger"
)

// CheckoutService 结账服务：把购物车物化为不可变订单快照
type CheckoutService interface {
	// PrepareCheckout 生成确认页用的计价行列表（只读）
	PrepareCheckout(ctx context.Context, buyerID int64) (*CartView, error)

	// SubmitCheckout 在一个事务内写订单 + 明细并关闭购物车，返回订单ID
	SubmitCheckout(ctx context.Context, buyerID int64, deliveryAddress string) (int64, error)
}

type checkoutService struct {
	db       *gorm.DB
	cartRepo repository.CartRepository
	locks    *BuyerLocks
}

func NewCheckoutService(db *gorm.DB, cartRepo repository.CartRepository, locks *BuyerLocks) CheckoutService {
	return &checkoutService{db: db, cartRepo: cartRepo, locks: locks}
}

func (s *checkoutService) PrepareCheckout(ctx context.Context, buyerID int64) (*CartView, error) {
	if buyerID <= 0 {
		return nil, ErrUnauthenticated
	}
	cart, err := s.cartRepo.GetOpen(ctx, buyerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmptyCart
		}
		return nil, err
	}
	lines, err := s.cartRepo.ListLines(ctx, cart.CartID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	view := &CartView{CartID: cart.CartID, Lines: lines}
	for _, l := range lines {
		view.Total += l.LineTotal
	}
	return view, nil
}

func (s *checkoutService) SubmitCheckout(ctx context.Context, buyerID int64, deliveryAddress string) (int64, error) {
	if buyerID <= 0 {
		return 0, ErrUnauthenticated
	}

	// 与加购共用买家锁，避免结账读到半更新的购物车
	unlock := s.locks.Lock(buyerID)
	defer unlock()

	cart, err := s.cartRepo.GetOpen(ctx, buyerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrEmptyCart
		}
		return 0, err
	}
	lines, err := s.cartRepo.ListLines(ctx, cart.CartID)
	if err != nil {
		return 0, err
	}
	if len(lines) == 0 {
		return 0, ErrEmptyCart
	}

	var total float64
	for _, l := range lines {
		total += l.LineTotal
	}
	now := time.Now()
	order := &model.Order{
		CartID:          cart.CartID,
		BuyerID:         buyerID,
		Subtotal:        total,
		Total:           total,
		Status:          model.OrderStatusInitiated,
		DeliveryAddress: deliveryAddress,
		OrderDate:       now,
	}

	// 订单 + 明细 + 关车必须同事务落地，失败全部回滚
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		items := make([]model.OrderItem, 0, len(lines))
		for _, l := range lines {
			items = append(items, model.OrderItem{
				OrderID:   order.OrderID,
				BookID:    l.BookID,
				ShopID:    l.ShopID,
				Quantity:  l.Quantity,
				UnitPrice: l.UnitPrice,
				LineTotal: l.LineTotal,
			})
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		// CAS：open -> complete，仅当购物车仍然 open
		res := tx.Model(&model.Cart{}).
			Where("cart_id = ? AND status = ?", cart.CartID, model.CartStatusOpen).
			Update("status", model.CartStatusComplete)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return ErrConflict
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info("checkout submitted",
		zap.Int64("buyer_id", buyerID),
		zap.Int64("order_id", order.OrderID),
		zap.Float64("total", total),
		zap.Int("lines", len(lines)))
	return order.OrderID, nil
}
