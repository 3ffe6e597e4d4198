package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/penta-book/internal/model"
)

// PaymentRepository 支付记录仓储接口
type PaymentRepository interface {
	// Create 写入一条支付记录
	Create(ctx context.Context, payment *model.Payment) error

	// ListByOrder 查询订单的全部支付记录（含审计记录）
	ListByOrder(ctx context.Context, orderID int64) ([]*model.Payment, error)

	// CountApproved 统计订单的 approved 支付记录数
	CountApproved(ctx context.Context, orderID int64) (int64, error)

	// ListMethods 列出可用支付方式
	ListMethods(ctx context.Context) ([]*model.PaymentMethod, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository { return &paymentRepository{db: db} }

func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) ListByOrder(ctx context.Context, orderID int64) ([]*model.Payment, error) {
	var payments []*model.Payment
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("payment_id").
		Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) ListMethods(ctx context.Context) ([]*model.PaymentMethod, error) {
	var methods []*model.PaymentMethod
	err := r.db.WithContext(ctx).Order("method_id").Find(&methods).Error
	return methods, err
}

func (r *paymentRepository) CountApproved(ctx context.Context, orderID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("order_id = ? AND payment_status = ?", orderID, model.PaymentStatusApproved).
		Count(&cnt).Error
	return cnt, err
}
