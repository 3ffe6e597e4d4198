package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/penta-book/internal/api/middleware"
	"github.com/d60-Lab/penta-book/pkg/response"
)

// AddToCart 加购
// @Summary 加入购物车；重复加购数量 +1
// @Tags 购物车
// @Security BearerAuth
// @Param book_id path int true "书籍ID"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/cart/items/{book_id} [post]
func (h *Handler) AddToCart(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)
	bookID, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}
	if err := h.cartSvc.AddToCart(c.Request.Context(), p.ID, bookID); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, nil)
}

// ViewCart 查看购物车
// @Summary 查看 open 购物车（行与合计）
// @Tags 购物车
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/cart [get]
func (h *Handler) ViewCart(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)
	view, err := h.cartSvc.ViewCart(c.Request.Context(), p.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, view)
}
