package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/penta-book/internal/api/middleware"
	"github.com/d60-Lab/penta-book/pkg/response"
)

type initiatePaymentRequest struct {
	MethodID string `json:"method_id" binding:"required"`
}

// InitiatePayment 发起支付
// @Summary 调用支付网关结算订单；已支付订单返回 409
// @Tags 支付
// @Security BearerAuth
// @Accept json
// @Param order_id path int true "订单ID"
// @Param request body initiatePaymentRequest true "支付方式"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response "订单已支付"
// @Failure 422 {object} response.Response "网关拒绝"
// @Failure 502 {object} response.Response "网关不可达"
// @Router /api/v1/orders/{order_id}/payment [post]
func (h *Handler) InitiatePayment(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)
	orderID, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid order id")
		return
	}
	var req initiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	// 归属校验复用订单查询
	if _, err := h.orderSvc.Get(c.Request.Context(), p.ID, orderID); err != nil {
		writeServiceError(c, err)
		return
	}
	payment, err := h.paymentSvc.InitiatePayment(c.Request.Context(), orderID, req.MethodID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, payment)
}

// ListOrderPayments 订单支付记录
// @Summary 订单的支付记录（含被拒绝的审计记录，仅本人）
// @Tags 支付
// @Security BearerAuth
// @Param order_id path int true "订单ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/orders/{order_id}/payments [get]
func (h *Handler) ListOrderPayments(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)
	orderID, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid order id")
		return
	}
	if _, err := h.orderSvc.Get(c.Request.Context(), p.ID, orderID); err != nil {
		writeServiceError(c, err)
		return
	}
	payments, err := h.paymentSvc.ListByOrder(c.Request.Context(), orderID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"list": payments})
}

// ListPaymentMethods 支付方式列表
// @Summary 可用支付方式
// @Tags 支付
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /api/v1/payment/methods [get]
func (h *Handler) ListPaymentMethods(c *gin.Context) {
	methods, err := h.paymentSvc.ListMethods(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"list": methods})
}
