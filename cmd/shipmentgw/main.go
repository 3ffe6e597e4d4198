package main

import (
	"net/http"
	"os"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 模拟物流网关：发起发货并按运单号查询

type initiateRequest struct {
	OrderID         int64  `json:"order_id"`
	ShipmentService string `json:"shipment_service"`
}

type shipment struct {
	TrackingNo      string `json:"tracking_no"`
	OrderID         int64  `json:"order_id"`
	ShipmentService string `json:"shipment_service"`
	Status          string `json:"status"`
}

var (
	mu        sync.Mutex
	shipments = make(map[string]shipment)
)

func initiateShipment(c *gin.Context) {
	var req initiateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OrderID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "failed", "message": "Missing order_id"})
		return
	}
	if req.ShipmentService == "" {
		req.ShipmentService = "standard"
	}
	s := shipment{
		TrackingNo:      uuid.New().String(),
		OrderID:         req.OrderID,
		ShipmentService: req.ShipmentService,
		Status:          "created",
	}
	mu.Lock()
	shipments[s.TrackingNo] = s
	mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": gin.H{
		"status":      s.Status,
		"tracking_no": s.TrackingNo,
	}})
}

func trackShipment(c *gin.Context) {
	mu.Lock()
	s, ok := shipments[c.Param("tracking_no")]
	mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"status": "failed", "message": "Shipment not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": s})
}

func shipmentHistory(c *gin.Context) {
	mu.Lock()
	defer mu.Unlock()
	list := make([]shipment, 0, len(shipments))
	for _, s := range shipments {
		list = append(list, s)
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": list})
}

func main() {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":5002"
	}
	r := gin.Default()
	r.POST("/initiate_shipment", initiateShipment)
	r.GET("/track_shipment/:tracking_no", trackShipment)
	r.GET("/shipment_history", shipmentHistory)
	if err := r.Run(addr); err != nil {
		panic(err)
	}
}
