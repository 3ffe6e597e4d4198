package main

import (
	"math/rand"
	"net/http"
	"os"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 模拟支付网关：按 method_id 给出 approved/declined/pending

type processRequest struct {
	Amount   float64 `json:"amount"`
	MethodID string  `json:"method_id"`
	OrderID  int64   `json:"order_id"`
}

type transaction struct {
	TransactionID string  `json:"transaction_id"`
	PaymentStatus string  `json:"payment_status"`
	MethodID      string  `json:"method_id"`
	OrderID       int64   `json:"order_id"`
	Amount        float64 `json:"amount"`
}

var (
	mu      sync.Mutex
	history []transaction
)

func simulateStatus(methodID string) string {
	switch methodID {
	case "credit_card":
		return []string{"approved", "declined"}[rand.Intn(2)]
	case "paypal":
		return []string{"approved", "declined", "pending"}[rand.Intn(3)]
	default:
		return "declined"
	}
}

func processPayment(c *gin.Context) {
	var req processRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "failed", "message": "Missing or invalid amount"})
		return
	}
	if req.MethodID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "failed", "message": "Missing method_id"})
		return
	}
	if req.OrderID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "failed", "message": "Missing order_id"})
		return
	}

	txn := transaction{
		TransactionID: uuid.New().String(),
		PaymentStatus: simulateStatus(req.MethodID),
		MethodID:      req.MethodID,
		OrderID:       req.OrderID,
		Amount:        req.Amount,
	}
	mu.Lock()
	history = append(history, txn)
	mu.Unlock()

	if txn.PaymentStatus == "approved" {
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": txn})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"status": "failed", "data": txn, "message": "Payment was declined"})
}

func paymentHistory(c *gin.Context) {
	mu.Lock()
	defer mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": history})
}

func main() {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":5001"
	}
	r := gin.Default()
	r.POST("/process_payment", processPayment)
	r.GET("/payment_history", paymentHistory)
	if err := r.Run(addr); err != nil {
		panic(err)
	}
}
