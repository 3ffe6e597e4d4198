package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/penta-book/internal/api/middleware"
	"github.com/d60-Lab/penta-book/pkg/response"
)

type submitCheckoutRequest struct {
	DeliveryAddress string `json:"delivery_address" binding:"required"`
}

// PrepareCheckout 结账确认页
// @Summary 结账前的计价行与合计（只读）
// @Tags 结账
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 422 {object} response.Response "空购物车"
// @Router /api/v1/checkout [get]
func (h *Handler) PrepareCheckout(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)
	view, err := h.checkoutSvc.PrepareCheckout(c.Request.Context(), p.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, view)
}

// SubmitCheckout 提交结账
// @Summary 购物车物化为订单（事务内），返回订单ID
// @Tags 结账
// @Security BearerAuth
// @Accept json
// @Param request body submitCheckoutRequest true "收货地址"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response "购物车状态冲突"
// @Failure 422 {object} response.Response "空购物车"
// @Router /api/v1/checkout [post]
func (h *Handler) SubmitCheckout(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)
	var req submitCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	orderID, err := h.checkoutSvc.SubmitCheckout(c.Request.Context(), p.ID, req.DeliveryAddress)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"order_id": orderID})
}

// GetOrder 订单详情
// @Summary 订单与明细（仅本人）
// @Tags 订单
// @Security BearerAuth
// @Param order_id path int true "订单ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/orders/{order_id} [get]
func (h *Handler) GetOrder(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)
	orderID, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid order id")
		return
	}
	detail, err := h.orderSvc.Get(c.Request.Context(), p.ID, orderID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, detail)
}

// ListOrders 订单列表
// @Summary 本人订单列表
// @Tags 订单
// @Security BearerAuth
// @Param limit query int false "数量上限" default(20)
// @Success 200 {object} response.Response
// @Router /api/v1/orders [get]
func (h *Handler) ListOrders(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	orders, err := h.orderSvc.ListByBuyer(c.Request.Context(), p.ID, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"list": orders})
}
