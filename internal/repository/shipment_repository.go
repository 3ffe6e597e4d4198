package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/penta-book/internal/model"
)

// ShipmentRepository 发货记录仓储接口
type ShipmentRepository interface {
	// Upsert 写入发货记录；同一订单重复发起时不重复建行
	Upsert(ctx context.Context, shipment *model.Shipment) error

	// GetByOrder 根据订单ID查询发货记录
	GetByOrder(ctx context.Context, orderID int64) (*model.Shipment, error)
}

type shipmentRepository struct{ db *gorm.DB }

func NewShipmentRepository(db *gorm.DB) ShipmentRepository { return &shipmentRepository{db: db} }

func (r *shipmentRepository) Upsert(ctx context.Context, shipment *model.Shipment) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "order_id"}},
		DoNothing: true,
	}).Create(shipment).Error
}

func (r *shipmentRepository) GetByOrder(ctx context.Context, orderID int64) (*model.Shipment, error) {
	var s model.Shipment
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
