package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"library-service/internal/domain/entities"
	"library-service/internal/domain/repositories"
)

func TestCreateBookRejectsDuplicateISBN(t *testing.T) {
	db := tempDB(t)
	bookRepo := NewBookRepository(db)

	seedBook(t, bookRepo, "111", "The Odyssey")

	book := entities.NewBook("111", "Other Title", "Other", "Epic", 2001)
	validatedBook, err := entities.NewValidatedBook(book)
	require.NoError(t, err)

	_, err = bookRepo.Create(context.Background(), validatedBook)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestSearchCombinesPredicates(t *testing.T) {
	db := tempDB(t)
	ctx := context.Background()
	bookRepo := NewBookRepository(db)

	seedBook(t, bookRepo, "111", "The Odyssey")
	seedBook(t, bookRepo, "222", "The Iliad")
	other := seedBook(t, bookRepo, "333", "Dune")

	require.NoError(t, db.Model(&BookModel{}).Where("id = ?", other.Id).
		Update("availability", false).Error)

	title := "the"
	books, err := bookRepo.Search(ctx, repositories.BookSearch{Title: &title})
	require.NoError(t, err)
	assert.Len(t, books, 2)

	available := true
	books, err = bookRepo.Search(ctx, repositories.BookSearch{Available: &available})
	require.NoError(t, err)
	require.Len(t, books, 2)
	for _, found := range books {
		assert.True(t, found.Availability)
	}

	author := "homer"
	year := 1998
	books, err = bookRepo.Search(ctx, repositories.BookSearch{Author: &author, Year: &year})
	require.NoError(t, err)
	assert.Len(t, books, 2)

	missing := "austen"
	books, err = bookRepo.Search(ctx, repositories.BookSearch{Author: &missing})
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestReviewUpdatesAverageRating(t *testing.T) {
	db := tempDB(t)
	ctx := context.Background()

	userRepo := NewUserRepository(db)
	bookRepo := NewBookRepository(db)
	reviewRepo := NewReviewRepository(db)

	user := seedUser(t, userRepo)
	book := seedBook(t, bookRepo, "444", "Emma")

	_, average, err := reviewRepo.Create(ctx, entities.NewReview(user.Id, book.Id, 5, "great"))
	require.NoError(t, err)
	assert.InDelta(t, 5.0, average, 0.001)

	_, average, err = reviewRepo.Create(ctx, entities.NewReview(user.Id, book.Id, 2, "meh"))
	require.NoError(t, err)
	assert.InDelta(t, 3.5, average, 0.001)

	reloaded, err := bookRepo.FindById(ctx, book.Id)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, reloaded.AverageRating, 0.001)

	reviews, err := reviewRepo.FindByBookId(ctx, book.Id)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}
