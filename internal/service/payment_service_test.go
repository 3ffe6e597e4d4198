package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/penta-book/internal/gateway"
	"github.com/d60-Lab/penta-book/internal/model"
	"github.com/d60-Lab/penta-book/internal/repository"
)

func TestInitiatePaymentApproved(t *testing.T) {
	db := setupTestDB(t)
	order := &model.Order{CartID: 1, BuyerID: 1, Subtotal: 130000, Total: 130000,
		Status: model.OrderStatusInitiated, DeliveryAddress: "addr", OrderDate: time.Now()}
	require.NoError(t, db.Create(order).Error)

	gw := &fakePaymentClient{result: &gateway.PaymentResult{TransactionID: "tx-1", PaymentStatus: "approved"}}
	svc := NewPaymentService(db, repository.NewOrderRepository(db), repository.NewPaymentRepository(db), gw, time.Second, nil)

	payment, err := svc.InitiatePayment(context.Background(), order.OrderID, "credit_card")
	require.NoError(t, err)
	require.Equal(t, model.PaymentStatusApproved, payment.PaymentStatus)
	require.Equal(t, "tx-1", payment.TransactionID)

	var got model.Order
	require.NoError(t, db.First(&got, "order_id = ?", order.OrderID).Error)
	require.Equal(t, model.OrderStatusPaid, got.Status)

	var cnt int64
	require.NoError(t, db.Model(&model.Payment{}).Where("order_id = ?", order.OrderID).Count(&cnt).Error)
	require.EqualValues(t, 1, cnt)
}

func TestInitiatePaymentDeclinedLeavesOrderInitiated(t *testing.T) {
	db := setupTestDB(t)
	order := &model.Order{CartID: 1, BuyerID: 1, Subtotal: 50000, Total: 50000,
		Status: model.OrderStatusInitiated, DeliveryAddress: "addr", OrderDate: time.Now()}
	require.NoError(t, db.Create(order).Error)

	gw := &fakePaymentClient{result: &gateway.PaymentResult{TransactionID: "tx-2", PaymentStatus: "declined"}}
	svc := NewPaymentService(db, repository.NewOrderRepository(db), repository.NewPaymentRepository(db), gw, time.Second, nil)

	_, err := svc.InitiatePayment(context.Background(), order.OrderID, "credit_card")
	require.ErrorIs(t, err, ErrGatewayDeclined)

	var got model.Order
	require.NoError(t, db.First(&got, "order_id = ?", order.OrderID).Error)
	require.Equal(t, model.OrderStatusInitiated, got.Status)

	// 审计记录不得带 approved
	approved, err := repository.NewPaymentRepository(db).CountApproved(context.Background(), order.OrderID)
	require.NoError(t, err)
	require.Zero(t, approved)

	history, err := svc.ListByOrder(context.Background(), order.OrderID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, "declined", history[0].PaymentStatus)

	// 仍可重付
	gw.result.PaymentStatus = "approved"
	_, err = svc.InitiatePayment(context.Background(), order.OrderID, "credit_card")
	require.NoError(t, err)
}

func TestInitiatePaymentPendingLeavesOrderInitiated(t *testing.T) {
	db := setupTestDB(t)
	order := &model.Order{CartID: 1, BuyerID: 1, Subtotal: 50000, Total: 50000,
		Status: model.OrderStatusInitiated, DeliveryAddress: "addr", OrderDate: time.Now()}
	require.NoError(t, db.Create(order).Error)

	gw := &fakePaymentClient{result: &gateway.PaymentResult{TransactionID: "tx-3", PaymentStatus: "pending"}}
	svc := NewPaymentService(db, repository.NewOrderRepository(db), repository.NewPaymentRepository(db), gw, time.Second, nil)

	_, err := svc.InitiatePayment(context.Background(), order.OrderID, "paypal")
	require.ErrorIs(t, err, ErrGatewayDeclined)

	var got model.Order
	require.NoError(t, db.First(&got, "order_id = ?", order.OrderID).Error)
	require.Equal(t, model.OrderStatusInitiated, got.Status)
}

func TestInitiatePaymentFailureEnvelopeWithApprovedStatusDoesNotSettle(t *testing.T) {
	db := setupTestDB(t)
	order := &model.Order{CartID: 1, BuyerID: 1, Subtotal: 50000, Total: 50000,
		Status: model.OrderStatusInitiated, DeliveryAddress: "addr", OrderDate: time.Now()}
	require.NoError(t, db.Create(order).Error)

	// 失败信封里伪装 approved 的状态不得结算订单
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"status": "failed",
			"data": map[string]any{
				"transaction_id": "ghost-tx",
				"payment_status": "approved",
			},
		})
	}))
	defer srv.Close()

	gw := gateway.NewPaymentClient(srv.URL, time.Second)
	svc := NewPaymentService(db, repository.NewOrderRepository(db), repository.NewPaymentRepository(db), gw, time.Second, nil)

	_, err := svc.InitiatePayment(context.Background(), order.OrderID, "credit_card")
	require.ErrorIs(t, err, ErrGatewayDeclined)

	var got model.Order
	require.NoError(t, db.First(&got, "order_id = ?", order.OrderID).Error)
	require.Equal(t, model.OrderStatusInitiated, got.Status)

	approved, err := repository.NewPaymentRepository(db).CountApproved(context.Background(), order.OrderID)
	require.NoError(t, err)
	require.Zero(t, approved)
}

func TestInitiatePaymentUnreachableGateway(t *testing.T) {
	db := setupTestDB(t)
	order := &model.Order{CartID: 1, BuyerID: 1, Subtotal: 50000, Total: 50000,
		Status: model.OrderStatusInitiated, DeliveryAddress: "addr", OrderDate: time.Now()}
	require.NoError(t, db.Create(order).Error)

	gw := &fakePaymentClient{err: gateway.ErrUnreachable}
	svc := NewPaymentService(db, repository.NewOrderRepository(db), repository.NewPaymentRepository(db), gw, time.Second, nil)

	_, err := svc.InitiatePayment(context.Background(), order.OrderID, "credit_card")
	require.ErrorIs(t, err, ErrGatewayUnreachable)

	var got model.Order
	require.NoError(t, db.First(&got, "order_id = ?", order.OrderID).Error)
	require.Equal(t, model.OrderStatusInitiated, got.Status)

	var cnt int64
	require.NoError(t, db.Model(&model.Payment{}).Count(&cnt).Error)
	require.Zero(t, cnt)
}

func TestInitiatePaymentAlreadyPaid(t *testing.T) {
	db := setupTestDB(t)
	order := &model.Order{CartID: 1, BuyerID: 1, Subtotal: 50000, Total: 50000,
		Status: model.OrderStatusInitiated, DeliveryAddress: "addr", OrderDate: time.Now()}
	require.NoError(t, db.Create(order).Error)

	gw := &fakePaymentClient{result: &gateway.PaymentResult{TransactionID: "tx-4", PaymentStatus: "approved"}}
	svc := NewPaymentService(db, repository.NewOrderRepository(db), repository.NewPaymentRepository(db), gw, time.Second, nil)
	ctx := context.Background()

	_, err := svc.InitiatePayment(ctx, order.OrderID, "credit_card")
	require.NoError(t, err)

	// 重放必须失败且不触网关、不加记录
	callsBefore := gw.calls
	_, err = svc.InitiatePayment(ctx, order.OrderID, "credit_card")
	require.ErrorIs(t, err, ErrAlreadyPaid)
	require.Equal(t, callsBefore, gw.calls)

	var cnt int64
	require.NoError(t, db.Model(&model.Payment{}).Where("order_id = ?", order.OrderID).Count(&cnt).Error)
	require.EqualValues(t, 1, cnt)
}

func TestInitiatePaymentUnknownOrder(t *testing.T) {
	db := setupTestDB(t)
	gw := &fakePaymentClient{result: &gateway.PaymentResult{PaymentStatus: "approved"}}
	svc := NewPaymentService(db, repository.NewOrderRepository(db), repository.NewPaymentRepository(db), gw, time.Second, nil)

	_, err := svc.InitiatePayment(context.Background(), 404, "credit_card")
	require.ErrorIs(t, err, ErrNotFound)
}
