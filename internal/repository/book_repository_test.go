package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchFiltersAndSorts(t *testing.T) {
	db := setupTestDB(t)
	seedShopAndBooks(t, db)
	repo := NewBookRepository(db)
	ctx := context.Background()

	books, err := repo.Search(ctx, BookSearchParams{Genre: "fiction", Sort: "price_asc"})
	require.NoError(t, err)
	require.Len(t, books, 2)
	require.Equal(t, "Bumi Manusia", books[0].BookName)
	require.Equal(t, "Laskar Pelangi", books[1].BookName)

	books, err = repo.Search(ctx, BookSearchParams{Query: "Habits"})
	require.NoError(t, err)
	require.Len(t, books, 1)
	require.Equal(t, "Atomic Habits", books[0].BookName)

	books, err = repo.Search(ctx, BookSearchParams{PriceMin: 40000, PriceMax: 60000})
	require.NoError(t, err)
	require.Len(t, books, 1)
	require.Equal(t, "Laskar Pelangi", books[0].BookName)
}

func TestSearchRejectsUnknownSortKey(t *testing.T) {
	db := setupTestDB(t)
	seedShopAndBooks(t, db)
	repo := NewBookRepository(db)

	// 未知排序键落回白名单默认值，不得拼进 SQL
	books, err := repo.Search(context.Background(), BookSearchParams{Sort: "price; DROP TABLE books--"})
	require.NoError(t, err)
	require.Len(t, books, 3)
	require.Equal(t, "Atomic Habits", books[0].BookName)
}

func TestListGenres(t *testing.T) {
	db := setupTestDB(t)
	seedShopAndBooks(t, db)
	repo := NewBookRepository(db)

	genres, err := repo.ListGenres(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"fiction", "self-help"}, genres)
}
