package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/d60-Lab/penta-book/internal/gateway"
	"github.com/d60-Lab/penta-book/internal/model"
	"github.com/d60-Lab/penta-book/internal/repository"
	"github.com/d60-Lab/penta-book/pkg/logger"
)

// PaymentService 支付结算服务
type PaymentService interface {
	// InitiatePayment 向网关发起支付并落地结果；仅 initiated 订单可支付
	InitiatePayment(ctx context.Context, orderID int64, methodID string) (*model.Payment, error)

	// ListByOrder 查询订单的支付记录（含被拒绝的审计记录）
	ListByOrder(ctx context.Context, orderID int64) ([]*model.Payment, error)

	// ListMethods 列出可用支付方式
	ListMethods(ctx context.Context) ([]*model.PaymentMethod, error)
}

type paymentService struct {
	db          *gorm.DB
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
	gw          gateway.PaymentClient
	timeout     time.Duration
	dispatcher  *ShipmentDispatcher
}

// NewPaymentService 创建支付服务；dispatcher 可为 nil（不自动发货）
func NewPaymentService(db *gorm.DB, orderRepo repository.OrderRepository, paymentRepo repository.PaymentRepository,
	gw gateway.PaymentClient, timeout time.Duration, dispatcher *ShipmentDispatcher) PaymentService {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &paymentService{
		db:          db,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		gw:          gw,
		timeout:     timeout,
		dispatcher:  dispatcher,
	}
}

func (s *paymentService) InitiatePayment(ctx context.Context, orderID int64, methodID string) (*model.Payment, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
		}
		return nil, err
	}
	if order.Status != model.OrderStatusInitiated {
		return nil, ErrAlreadyPaid
	}

	gwCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	result, err := s.gw.ProcessPayment(gwCtx, gateway.PaymentRequest{
		Amount:   order.Total,
		MethodID: methodID,
		OrderID:  order.OrderID,
	})
	if err != nil {
		if errors.Is(err, gateway.ErrUnreachable) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrGatewayUnreachable, err)
		}
		return nil, err
	}

	if !result.Approved() {
		// 审计记录，不改订单状态；订单保持 initiated 可重付
		audit := &model.Payment{
			MethodID:      methodID,
			OrderID:       order.OrderID,
			TransactionID: result.TransactionID,
			PaymentDate:   time.Now(),
			PaymentStatus: result.PaymentStatus,
		}
		if err := s.paymentRepo.Create(ctx, audit); err != nil {
			logger.Warn("record declined payment failed",
				zap.Int64("order_id", order.OrderID), zap.Error(err))
		}
		return nil, fmt.Errorf("%w: %s", ErrGatewayDeclined, result.PaymentStatus)
	}

	payment := &model.Payment{
		MethodID:      methodID,
		OrderID:       order.OrderID,
		TransactionID: result.TransactionID,
		PaymentDate:   time.Now(),
		PaymentStatus: model.PaymentStatusApproved,
	}
	// CAS initiated -> paid 与支付记录同事务；状态被抢先改掉则整体回滚
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Order{}).
			Where("order_id = ? AND status = ?", order.OrderID, model.OrderStatusInitiated).
			Update("status", model.OrderStatusPaid)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return ErrAlreadyPaid
		}
		return tx.Create(payment).Error
	})
	if err != nil {
		return nil, err
	}

	logger.Info("payment settled",
		zap.Int64("order_id", order.OrderID),
		zap.String("method_id", methodID),
		zap.String("transaction_id", payment.TransactionID))
	if s.dispatcher != nil {
		s.dispatcher.Enqueue(order.OrderID)
	}
	return payment, nil
}

func (s *paymentService) ListByOrder(ctx context.Context, orderID int64) ([]*model.Payment, error) {
	return s.paymentRepo.ListByOrder(ctx, orderID)
}

func (s *paymentService) ListMethods(ctx context.Context) ([]*model.PaymentMethod, error) {
	return s.paymentRepo.ListMethods(ctx)
}
