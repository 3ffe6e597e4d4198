package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/d60-Lab/penta-book/internal/gateway"
	"github.com/d60-Lab/penta-book/internal/model"
	"github.com/d60-Lab/penta-book/internal/repository"
)

// ShipmentService 发货查询服务
type ShipmentService interface {
	// GetByOrder 查询订单的发货记录
	GetByOrder(ctx context.Context, orderID int64) (*model.Shipment, error)

	// Track 透传物流网关的运单状态
	Track(ctx context.Context, trackingNo string) (*gateway.ShipmentRecord, error)
}

type shipmentService struct {
	shipRepo repository.ShipmentRepository
	gw       gateway.ShipmentClient
}

func NewShipmentService(shipRepo repository.ShipmentRepository, gw gateway.ShipmentClient) ShipmentService {
	return &shipmentService{shipRepo: shipRepo, gw: gw}
}

func (s *shipmentService) GetByOrder(ctx context.Context, orderID int64) (*model.Shipment, error) {
	shipment, err := s.shipRepo.GetByOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("shipment for order %d: %w", orderID, ErrNotFound)
		}
		return nil, err
	}
	return shipment, nil
}

func (s *shipmentService) Track(ctx context.Context, trackingNo string) (*gateway.ShipmentRecord, error) {
	record, err := s.gw.TrackShipment(ctx, trackingNo)
	if err != nil {
		if errors.Is(err, gateway.ErrUnreachable) {
			return nil, fmt.Errorf("%w: %v", ErrGatewayUnreachable, err)
		}
		return nil, err
	}
	return record, nil
}
