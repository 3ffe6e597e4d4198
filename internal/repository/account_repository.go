package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/penta-book/internal/model"
)

// BuyerRepository 买家账号仓储接口
type BuyerRepository interface {
	Create(ctx context.Context, buyer *model.Buyer) error
	GetByUsername(ctx context.Context, username string) (*model.Buyer, error)
}

type buyerRepository struct{ db *gorm.DB }

func NewBuyerRepository(db *gorm.DB) BuyerRepository { return &buyerRepository{db: db} }

func (r *buyerRepository) Create(ctx context.Context, buyer *model.Buyer) error {
	return r.db.WithContext(ctx).Create(buyer).Error
}

func (r *buyerRepository) GetByUsername(ctx context.Context, username string) (*model.Buyer, error) {
	var buyer model.Buyer
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&buyer).Error; err != nil {
		return nil, err
	}
	return &buyer, nil
}

// ShopRepository 店铺账号仓储接口
type ShopRepository interface {
	Create(ctx context.Context, shop *model.Shop) error
	GetByName(ctx context.Context, shopName string) (*model.Shop, error)
}

type shopRepository struct{ db *gorm.DB }

func NewShopRepository(db *gorm.DB) ShopRepository { return &shopRepository{db: db} }

func (r *shopRepository) Create(ctx context.Context, shop *model.Shop) error {
	return r.db.WithContext(ctx).Create(shop).Error
}

func (r *shopRepository) GetByName(ctx context.Context, shopName string) (*model.Shop, error) {
	var shop model.Shop
	if err := r.db.WithContext(ctx).Where("shop_name = ?", shopName).First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}
