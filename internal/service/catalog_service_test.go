package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/penta-book/internal/model"
	"github.com/d60-Lab/penta-book/internal/repository"
)

func newTestCache(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestGetBookCachesDetail(t *testing.T) {
	db := setupTestDB(t)
	books := seedBooks(t, db)
	cache := newTestCache(t)
	svc := NewCatalogService(repository.NewBookRepository(db), cache, time.Minute)
	ctx := context.Background()

	first, err := svc.GetBook(ctx, books[0].BookID)
	require.NoError(t, err)
	require.InDelta(t, 50000, first.Price, 0.001)

	// 改库价后 TTL 内仍吃缓存
	require.NoError(t, db.Model(&model.Book{}).
		Where("book_id = ?", books[0].BookID).
		Update("price", 75000).Error)

	cached, err := svc.GetBook(ctx, books[0].BookID)
	require.NoError(t, err)
	require.InDelta(t, 50000, cached.Price, 0.001)
}

func TestGetBookWithoutCache(t *testing.T) {
	db := setupTestDB(t)
	books := seedBooks(t, db)
	svc := NewCatalogService(repository.NewBookRepository(db), nil, time.Minute)

	book, err := svc.GetBook(context.Background(), books[1].BookID)
	require.NoError(t, err)
	require.Equal(t, "Book B", book.BookName)
}

func TestGetBookNotFound(t *testing.T) {
	db := setupTestDB(t)
	seedBooks(t, db)
	svc := NewCatalogService(repository.NewBookRepository(db), newTestCache(t), time.Minute)

	_, err := svc.GetBook(context.Background(), 404)
	require.ErrorIs(t, err, ErrNotFound)
}
