package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/penta-book/internal/service"
	"github.com/d60-Lab/penta-book/pkg/response"
)

// Handler 聚合全部 HTTP 处理器依赖
type Handler struct {
	authSvc     service.AuthService
	catalogSvc  service.CatalogService
	cartSvc     service.CartService
	checkoutSvc service.CheckoutService
	orderSvc    service.OrderService
	paymentSvc  service.PaymentService
	shipmentSvc service.ShipmentService
}

func NewHandler(
	authSvc service.AuthService,
	catalogSvc service.CatalogService,
	cartSvc service.CartService,
	checkoutSvc service.CheckoutService,
	orderSvc service.OrderService,
	paymentSvc service.PaymentService,
	shipmentSvc service.ShipmentService,
) *Handler {
	return &Handler{
		authSvc:     authSvc,
		catalogSvc:  catalogSvc,
		cartSvc:     cartSvc,
		checkoutSvc: checkoutSvc,
		orderSvc:    orderSvc,
		paymentSvc:  paymentSvc,
		shipmentSvc: shipmentSvc,
	}
}

// writeServiceError 把服务层错误分类映射为对外响应
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrEmptyCart):
		response.UnprocessableEntity(c, err.Error())
	case errors.Is(err, service.ErrAlreadyPaid), errors.Is(err, service.ErrConflict):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrGatewayUnreachable):
		response.BadGateway(c, err.Error())
	case errors.Is(err, service.ErrGatewayDeclined):
		response.UnprocessableEntity(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
