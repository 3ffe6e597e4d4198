package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/d60-Lab/penta-book/internal/model"
	"github.com/d60-Lab/penta-book/internal/repository"
)

// CatalogService 书目查询服务（只读），书籍详情走 Redis 旁路缓存
type CatalogService interface {
	GetBook(ctx context.Context, bookID int64) (*model.Book, error)
	Search(ctx context.Context, p repository.BookSearchParams) ([]*model.Book, error)
	Genres(ctx context.Context) ([]string, error)
}

type catalogService struct {
	bookRepo repository.BookRepository
	cache    *redis.Client
	ttl      time.Duration
}

// NewCatalogService 创建书目服务；cache 可为 nil（不缓存）
func NewCatalogService(bookRepo repository.BookRepository, cache *redis.Client, ttl time.Duration) CatalogService {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &catalogService{bookRepo: bookRepo, cache: cache, ttl: ttl}
}

func (s *catalogService) GetBook(ctx context.Context, bookID int64) (*model.Book, error) {
	key := fmt.Sprintf("book:%d", bookID)
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, key).Bytes(); err == nil {
			var book model.Book
			if uErr := json.Unmarshal(data, &book); uErr == nil {
				return &book, nil
			}
		}
	}

	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("book %d: %w", bookID, ErrNotFound)
		}
		return nil, err
	}
	if s.cache != nil {
		if payload, err := json.Marshal(book); err == nil {
			_ = s.cache.Set(ctx, key, payload, s.ttl).Err()
		}
	}
	return book, nil
}

func (s *catalogService) Search(ctx context.Context, p repository.BookSearchParams) ([]*model.Book, error) {
	return s.bookRepo.Search(ctx, p)
}

func (s *catalogService) Genres(ctx context.Context) ([]string, error) {
	return s.bookRepo.ListGenres(ctx)
}
