package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/penta-book/internal/repository"
)

func TestDispatcherRecordsShipment(t *testing.T) {
	db := setupTestDB(t)
	shipRepo := repository.NewShipmentRepository(db)
	gw := &fakeShipmentClient{trackingNo: "trk-1"}

	d := NewShipmentDispatcher(shipRepo, gw, "standard", time.Second, 16)
	stop := d.Start(1)

	d.Enqueue(42)
	require.Eventually(t, func() bool {
		_, err := shipRepo.GetByOrder(context.Background(), 42)
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, stop(context.Background()))

	shipment, err := shipRepo.GetByOrder(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, "trk-1", shipment.TrackingNo)
	require.Equal(t, "created", shipment.Status)
	require.Equal(t, "standard", shipment.ShipmentService)
	require.Len(t, gw.requests, 1)
	require.EqualValues(t, 42, gw.requests[0].OrderID)
}

func TestDispatcherDuplicateEnqueueKeepsOneRow(t *testing.T) {
	db := setupTestDB(t)
	shipRepo := repository.NewShipmentRepository(db)
	gw := &fakeShipmentClient{trackingNo: "trk-2"}

	d := NewShipmentDispatcher(shipRepo, gw, "standard", time.Second, 16)
	stop := d.Start(1)

	d.Enqueue(7)
	d.Enqueue(7)
	require.Eventually(t, func() bool {
		_, err := shipRepo.GetByOrder(context.Background(), 7)
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, stop(context.Background()))

	var cnt int64
	require.NoError(t, db.Table("shipments").Where("order_id = ?", 7).Count(&cnt).Error)
	require.EqualValues(t, 1, cnt)
}

func TestDispatcherDrainsQueueOnStop(t *testing.T) {
	db := setupTestDB(t)
	shipRepo := repository.NewShipmentRepository(db)
	gw := &fakeShipmentClient{trackingNo: "trk-drain"}

	d := NewShipmentDispatcher(shipRepo, gw, "standard", time.Second, 16)
	stop := d.Start(1)

	for i := int64(1); i <= 5; i++ {
		d.Enqueue(100 + i)
	}
	require.NoError(t, stop(context.Background()))

	// 停止后残留任务也要落地
	require.Eventually(t, func() bool {
		var cnt int64
		if err := db.Table("shipments").Count(&cnt).Error; err != nil {
			return false
		}
		return cnt == 5
	}, 2*time.Second, 10*time.Millisecond)
}

func TestShipmentServiceTrack(t *testing.T) {
	db := setupTestDB(t)
	shipRepo := repository.NewShipmentRepository(db)
	gw := &fakeShipmentClient{trackingNo: "trk-3"}
	svc := NewShipmentService(shipRepo, gw)

	record, err := svc.Track(context.Background(), "trk-3")
	require.NoError(t, err)
	require.Equal(t, "trk-3", record.TrackingNo)

	_, err = svc.GetByOrder(context.Background(), 404)
	require.ErrorIs(t, err, ErrNotFound)
}
