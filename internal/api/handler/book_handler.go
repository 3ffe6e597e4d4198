package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/penta-book/internal/repository"
	"github.com/d60-Lab/penta-book/pkg/response"
)

// GetBook 查询书籍详情
// @Summary 书籍详情（走缓存）
// @Tags 书目
// @Param book_id path int true "书籍ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/books/{book_id} [get]
func (h *Handler) GetBook(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}
	book, err := h.catalogSvc.GetBook(c.Request.Context(), bookID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, book)
}

// SearchBooks 检索书籍
// @Summary 书籍检索，排序键走白名单
// @Tags 书目
// @Param query query string false "书名/作者关键字"
// @Param genre query string false "分类"
// @Param price_min query number false "最低价"
// @Param price_max query number false "最高价"
// @Param sort query string false "排序（book_name/author/price_asc/price_desc）" default(book_name)
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} response.Response
// @Router /api/v1/books [get]
func (h *Handler) SearchBooks(c *gin.Context) {
	priceMin, _ := strconv.ParseFloat(c.DefaultQuery("price_min", "0"), 64)
	priceMax, _ := strconv.ParseFloat(c.DefaultQuery("price_max", "0"), 64)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	books, err := h.catalogSvc.Search(c.Request.Context(), repository.BookSearchParams{
		Query:    c.Query("query"),
		Genre:    c.Query("genre"),
		PriceMin: priceMin,
		PriceMax: priceMax,
		Sort:     c.DefaultQuery("sort", "book_name"),
		Offset:   (page - 1) * pageSize,
		Limit:    pageSize,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"page": page, "page_size": pageSize, "list": books})
}

// ListGenres 列出分类
// @Summary 书籍分类列表
// @Tags 书目
// @Success 200 {object} response.Response
// @Router /api/v1/genres [get]
func (h *Handler) ListGenres(c *gin.Context) {
	genres, err := h.catalogSvc.Genres(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"list": genres})
}
