package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/d60-Lab/penta-book/internal/repository"
)

// CartView 购物车视图（行 + 合计）
type CartView struct {
	CartID int64                 `json:"cart_id"`
	Lines  []repository.CartLine `json:"lines"`
	Total  float64               `json:"total"`
}

// CartService 购物车服务
type CartService interface {
	// AddToCart 加购；购物车不存在则懒创建，重复加购数量 +1
	AddToCart(ctx context.Context, buyerID, bookID int64) error

	// ViewCart 查询 open 购物车行与合计（只读）
	ViewCart(ctx context.Context, buyerID int64) (*CartView, error)
}

type cartService struct {
	cartRepo repository.CartRepository
	bookRepo repository.BookRepository
	locks    *BuyerLocks
}

func NewCartService(cartRepo repository.CartRepository, bookRepo repository.BookRepository, locks *BuyerLocks) CartService {
	return &cartService{cartRepo: cartRepo, bookRepo: bookRepo, locks: locks}
}

func (s *cartService) AddToCart(ctx context.Context, buyerID, bookID int64) error {
	if buyerID <= 0 {
		return ErrUnauthenticated
	}
	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("book %d: %w", bookID, ErrNotFound)
		}
		return err
	}

	// 同一买家的加购与结账串行
	unlock := s.locks.Lock(buyerID)
	defer unlock()

	cart, err := s.cartRepo.GetOrCreateOpen(ctx, buyerID)
	if err != nil {
		return err
	}
	return s.cartRepo.AddItem(ctx, cart.CartID, bookID)
}

func (s *cartService) ViewCart(ctx context.Context, buyerID int64) (*CartView, error) {
	if buyerID <= 0 {
		return nil, ErrUnauthenticated
	}
	cart, err := s.cartRepo.GetOpen(ctx, buyerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 尚未加购过，返回空车
			return &CartView{Lines: []repository.CartLine{}}, nil
		}
		return nil, err
	}
	lines, err := s.cartRepo.ListLines(ctx, cart.CartID)
	if err != nil {
		return nil, err
	}
	view := &CartView{CartID: cart.CartID, Lines: lines}
	for _, l := range lines {
		view.Total += l.LineTotal
	}
	return view, nil
}
