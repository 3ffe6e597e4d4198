package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/penta-book/internal/model"
)

// BookSearchParams 书籍检索条件
type BookSearchParams struct {
	Query    string
	Genre    string
	PriceMin float64
	PriceMax float64
	Sort     string
	Offset   int
	Limit    int
}

// 排序键白名单，检索入参只能映射到这里的固定表达式
var bookSortColumns = map[string]string{
	"book_name":  "book_name ASC",
	"author":     "author ASC",
	"price_asc":  "price ASC",
	"price_desc": "price DESC",
}

// BookRepository 书籍仓储接口（本核心内只读）
type BookRepository interface {
	// GetByID 根据书籍ID查询
	GetByID(ctx context.Context, bookID int64) (*model.Book, error)

	// Search 按条件检索书籍
	Search(ctx context.Context, p BookSearchParams) ([]*model.Book, error)

	// ListGenres 列出全部分类
	ListGenres(ctx context.Context) ([]string, error)
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository { return &bookRepository{db: db} }

func (r *bookRepository) GetByID(ctx context.Context, bookID int64) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).Where("book_id = ?", bookID).First(&book).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *bookRepository) Search(ctx context.Context, p BookSearchParams) ([]*model.Book, error) {
	q := r.db.WithContext(ctx).Model(&model.Book{})
	if p.Query != "" {
		like := "%" + p.Query + "%"
		q = q.Where("book_name LIKE ? OR author LIKE ?", like, like)
	}
	if p.Genre != "" {
		q = q.Where("genre = ?", p.Genre)
	}
	if p.PriceMin > 0 {
		q = q.Where("price >= ?", p.PriceMin)
	}
	if p.PriceMax > 0 {
		q = q.Where("price <= ?", p.PriceMax)
	}
	order, ok := bookSortColumns[p.Sort]
	if !ok {
		order = bookSortColumns["book_name"]
	}
	if p.Limit <= 0 {
		p.Limit = 20
	}
	var books []*model.Book
	err := q.Order(order).Offset(p.Offset).Limit(p.Limit).Find(&books).Error
	return books, err
}

func (r *bookRepository) ListGenres(ctx context.Context) ([]string, error) {
	var genres []string
	err := r.db.WithContext(ctx).Model(&model.Book{}).Distinct("genre").Order("genre").Pluck("genre", &genres).Error
	return genres, err
}
