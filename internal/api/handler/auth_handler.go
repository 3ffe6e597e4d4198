package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/penta-book/internal/service"
	"github.com/d60-Lab/penta-book/pkg/response"
)

type buyerRegisterRequest struct {
	Username     string `json:"username" binding:"required,min=2,max=20"`
	DOB          string `json:"dob" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	PhoneNumber  string `json:"phone_number" binding:"required"`
	Password     string `json:"password" binding:"required,min=6"`
	BuyerAddress string `json:"buyer_address" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type shopRegisterRequest struct {
	ShopName        string `json:"shop_name" binding:"required,min=2,max=20"`
	OwnerName       string `json:"owner_name" binding:"required,min=2,max=20"`
	ShopPhone       string `json:"shop_phone" binding:"required"`
	ShopAddress     string `json:"shop_address" binding:"required"`
	ShopEmail       string `json:"shop_email" binding:"required,email"`
	ShopDescription string `json:"shop_description" binding:"required"`
	Password        string `json:"password" binding:"required,min=6"`
}

// RegisterBuyer 买家注册
// @Summary 买家注册
// @Tags 账号
// @Accept json
// @Produce json
// @Param request body buyerRegisterRequest true "注册信息"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/auth/register [post]
func (h *Handler) RegisterBuyer(c *gin.Context) {
	var req buyerRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	buyer, err := h.authSvc.RegisterBuyer(c.Request.Context(), service.BuyerRegistration{
		Username:     req.Username,
		DOB:          req.DOB,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Password:     req.Password,
		BuyerAddress: req.BuyerAddress,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"buyer_id": buyer.BuyerID})
}

// LoginBuyer 买家登录
// @Summary 买家登录，签发 JWT
// @Tags 账号
// @Accept json
// @Produce json
// @Param request body loginRequest true "登录信息"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/auth/login [post]
func (h *Handler) LoginBuyer(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, principal, err := h.authSvc.LoginBuyer(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"token": token, "principal": principal})
}

// RegisterShop 店铺注册
// @Summary 店铺注册
// @Tags 账号
// @Accept json
// @Produce json
// @Param request body shopRegisterRequest true "注册信息"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/auth/shop/register [post]
func (h *Handler) RegisterShop(c *gin.Context) {
	var req shopRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	shop, err := h.authSvc.RegisterShop(c.Request.Context(), service.ShopRegistration{
		ShopName:        req.ShopName,
		OwnerName:       req.OwnerName,
		ShopPhone:       req.ShopPhone,
		ShopAddress:     req.ShopAddress,
		ShopEmail:       req.ShopEmail,
		ShopDescription: req.ShopDescription,
		Password:        req.Password,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"shop_id": shop.ShopID})
}

// LoginShop 店铺登录
// @Summary 店铺登录，签发 JWT
// @Tags 账号
// @Accept json
// @Produce json
// @Param request body loginRequest true "登录信息（username 填店铺名）"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/auth/shop/login [post]
func (h *Handler) LoginShop(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, principal, err := h.authSvc.LoginShop(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"token": token, "principal": principal})
}
