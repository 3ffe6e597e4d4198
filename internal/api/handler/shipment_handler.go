package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/penta-book/internal/api/middleware"
	"github.com/d60-Lab/penta-book/pkg/response"
)

// GetOrderShipment 查询订单发货记录
// @Summary 订单的发货记录（支付成功后异步生成）
// @Tags 物流
// @Security BearerAuth
// @Param order_id path int true "订单ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/orders/{order_id}/shipment [get]
func (h *Handler) GetOrderShipment(c *gin.Context) {
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
	shipment, err := h.shipmentSvc.GetByOrder(c.Request.Context(), orderID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, shipment)
}

// TrackShipment 运单追踪
// @Summary 透传物流网关的运单状态
// @Tags 物流
// @Security BearerAuth
// @Param tracking_no path string true "运单号"
// @Success 200 {object} response.Response
// @Failure 502 {object} response.Response "网关不可达"
// @Router /api/v1/shipments/{tracking_no} [get]
func (h *Handler) TrackShipment(c *gin.Context) {
	record, err := h.shipmentSvc.Track(c.Request.Context(), c.Param("tracking_no"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, record)
}
