package api

import (
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/time/rate"

	"github.com/d60-Lab/penta-book/config"
	"github.com/d60-Lab/penta-book/internal/api/handler"
	"github.com/d60-Lab/penta-book/internal/api/middleware"
	"github.com/d60-Lab/penta-book/internal/service"
)

// NewRouter 组装全部路由与中间件
func NewRouter(cfg *config.Config, h *handler.Handler, authSvc service.AuthService) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Sentry.DSN != "" {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	if cfg.Trace.Enabled {
		r.Use(otelgin.Middleware("penta-book"))
	}
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(middleware.RateLimit(rate.Limit(50), 100))

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", h.RegisterBuyer)
			auth.POST("/login", h.LoginBuyer)
			auth.POST("/shop/register", h.RegisterShop)
			auth.POST("/shop/login", h.LoginShop)
		}

		v1.GET("/books", h.SearchBooks)
		v1.GET("/books/:book_id", h.GetBook)
		v1.GET("/genres", h.ListGenres)

		buyer := v1.Group("")
		buyer.Use(middleware.JWTAuth(authSvc), middleware.RequireBuyer())
		{
			buyer.POST("/cart/items/:book_id", h.AddToCart)
			buyer.GET("/cart", h.ViewCart)
			buyer.GET("/checkout", h.PrepareCheckout)
			buyer.POST("/checkout", h.SubmitCheckout)
			buyer.GET("/orders", h.ListOrders)
			buyer.GET("/orders/:order_id", h.GetOrder)
			buyer.POST("/orders/:order_id/payment", h.InitiatePayment)
			buyer.GET("/orders/:order_id/payments", h.ListOrderPayments)
			buyer.GET("/orders/:order_id/shipment", h.GetOrderShipment)
			buyer.GET("/payment/methods", h.ListPaymentMethods)
			buyer.GET("/shipments/:tracking_no", h.TrackShipment)
		}
	}
	return r
}
