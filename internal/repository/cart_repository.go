package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/penta-book/internal/model"
)

// CartLine 购物车行（明细与书籍当前信息的联查结果）
type CartLine struct {
	CartItemID int64   `json:"cart_item_id"`
	BookID     int64   `json:"book_id"`
	BookName   string  `json:"book_name"`
	Author     string  `json:"author"`
	Desc       string  `json:"desc"`
	ShopID     int64   `json:"shop_id"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int64   `json:"quantity"`
	LineTotal  float64 `json:"line_total"`
}

// CartRepository 购物车仓储接口
type CartRepository interface {
	// GetOpen 查询买家的 open 购物车
	GetOpen(ctx context.Context, buyerID int64) (*model.Cart, error)

	// GetOrCreateOpen 查询或创建买家的 open 购物车（事务内 upsert）
	GetOrCreateOpen(ctx context.Context, buyerID int64) (*model.Cart, error)

	// AddItem 新增明细或在 (cart_id, book_id) 冲突时数量 +1
	AddItem(ctx context.Context, cartID, bookID int64) error

	// ListLines 联查书籍得到购物车行
	ListLines(ctx context.Context, cartID int64) ([]CartLine, error)
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository { return &cartRepository{db: db} }

func (r *cartRepository) GetOpen(ctx context.Context, buyerID int64) (*model.Cart, error) {
	var cart model.Cart
	err := r.db.WithContext(ctx).
		Where("buyer_id = ? AND status = ?", buyerID, model.CartStatusOpen).
		First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) GetOrCreateOpen(ctx context.Context, buyerID int64) (*model.Cart, error) {
	cart := model.Cart{BuyerID: buyerID, Status: model.CartStatusOpen}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Where("buyer_id = ? AND status = ?", buyerID, model.CartStatusOpen).
			FirstOrCreate(&cart).Error
	})
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) AddItem(ctx context.Context, cartID, bookID int64) error {
	item := &model.CartItem{CartID: cartID, BookID: bookID, Quantity: 1}
	// 重复加购：数量 +1 而不是新增一行
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cart_id"}, {Name: "book_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"quantity": gorm.Expr("quantity + 1")}),
	}).Create(item).Error
}

func (r *cartRepository) ListLines(ctx context.Context, cartID int64) ([]CartLine, error) {
	var lines []CartLine
	err := r.db.WithContext(ctx).
		Table("cartitems ci").
		Select(`ci.cart_item_id, ci.book_id, b.book_name, b.author, b.description AS "desc", b.shop_id, b.price AS unit_price, ci.quantity, ci.quantity * b.price AS line_total`).
		Joins("JOIN books b ON b.book_id = ci.book_id").
		Where("ci.cart_id = ?", cartID).
		Order("ci.cart_item_id").
		Scan(&lines).Error
	return lines, err
}
