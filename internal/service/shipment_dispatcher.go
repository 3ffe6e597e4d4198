package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/d60-Lab/penta-book/internal/gateway"
	"github.com/d60-Lab/penta-book/internal/model"
	"github.com/d60-Lab/penta-book/internal/repository"
	"github.com/d60-Lab/penta-book/pkg/logger"
)

type shipmentJob struct {
	orderID int64
	enqAt   time.Time
}

// ShipmentDispatcher 支付成功后异步向物流网关发起发货的本地执行器
type ShipmentDispatcher struct {
	shipRepo repository.ShipmentRepository
	gw       gateway.ShipmentClient
	service  string
	timeout  time.Duration
	ch       chan shipmentJob
}

// NewShipmentDispatcher 创建发货执行器；service 为默认物流商标识
func NewShipmentDispatcher(shipRepo repository.ShipmentRepository, gw gateway.ShipmentClient,
	service string, timeout time.Duration, queueSize int) *ShipmentDispatcher {
	if queueSize <= 0 {
		queueSize = 1024
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &ShipmentDispatcher{
		shipRepo: shipRepo,
		gw:       gw,
		service:  service,
		timeout:  timeout,
		ch:       make(chan shipmentJob, queueSize),
	}
}

// Start 启动若干 worker；返回停止函数（等待队列自然排空一小段时间）
func (d *ShipmentDispatcher) Start(workers int) func(context.Context) error {
	if workers <= 0 {
		workers = 2
	}
	stopCh := make(chan struct{})
	for i := 0; i < workers; i++ {
		go func() {
			for {
				select {
				case job := <-d.ch:
					d.dispatch(job)
				case <-stopCh:
					// 退出前排空残留任务
					for {
						select {
						case job := <-d.ch:
							d.dispatch(job)
						default:
							return
						}
					}
				}
			}
		}()
	}
	return func(ctx context.Context) error {
		close(stopCh)
		timeout := time.After(2 * time.Second)
		for {
			select {
			case <-timeout:
				return nil
			default:
				if len(d.ch) == 0 {
					return nil
				}
				time.Sleep(50 * time.Millisecond)
			}
		}
	}
}

// Enqueue 排队一个已支付订单；队列满时丢弃并告警
func (d *ShipmentDispatcher) Enqueue(orderID int64) {
	select {
	case d.ch <- shipmentJob{orderID: orderID, enqAt: time.Now()}:
	default:
		logger.Warn("shipment queue full, drop order", zap.Int64("order_id", orderID))
	}
}

// QueueLen 返回当前队列长度（采样值）
func (d *ShipmentDispatcher) QueueLen() int { return len(d.ch) }

func (d *ShipmentDispatcher) dispatch(job shipmentJob) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	result, err := d.gw.InitiateShipment(ctx, gateway.ShipmentRequest{
		OrderID:         job.orderID,
		ShipmentService: d.service,
	})
	if err != nil {
		logger.Warn("initiate shipment failed",
			zap.Int64("order_id", job.orderID), zap.Error(err))
		return
	}
	shipment := &model.Shipment{
		OrderID:         job.orderID,
		TrackingNo:      result.TrackingNo,
		ShipmentService: d.service,
		Status:          result.Status,
	}
	if err := d.shipRepo.Upsert(ctx, shipment); err != nil {
		logger.Warn("record shipment failed",
			zap.Int64("order_id", job.orderID), zap.Error(err))
		return
	}
	logger.Info("shipment initiated",
		zap.Int64("order_id", job.orderID),
		zap.String("tracking_no", result.TrackingNo),
		zap.Duration("queue_latency", time.Since(job.enqAt)))
}
