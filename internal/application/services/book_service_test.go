package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-service/internal/application/command"
	"library-service/internal/domain/repositories"
	apperrors "library-service/internal/errors"
)

func TestSaveBookRejectsDuplicateISBN(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.saveBook(t, "111", "The Odyssey")

	_, err := env.books.SaveBook(ctx, &command.SaveBookCommand{
		ISBN:            "111",
		Title:           "Other Title",
		Author:          "Other",
		Genre:           "Epic",
		PublicationYear: 2001,
	})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeConflict))
}

func TestSaveBookValidates(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.books.SaveBook(context.Background(), &command.SaveBookCommand{
		ISBN: "111",
	})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
}

func TestUpdateBook(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.saveBook(t, "111", "The Odyssey")

	unavailable := false
	updated, err := env.books.UpdateBook(ctx, "111", &command.UpdateBookCommand{
		Title:        "The Odyssey, Revised",
		Availability: &unavailable,
	})
	require.NoError(t, err)
	assert.Equal(t, "The Odyssey, Revised", updated.Result.Title)
	assert.False(t, updated.Result.Availability)
	assert.Equal(t, "Homer", updated.Result.Author)

	_, err = env.books.UpdateBook(ctx, "999", &command.UpdateBookCommand{Title: "x"})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestDeleteBook(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.saveBook(t, "111", "The Odyssey")

	require.NoError(t, env.books.DeleteBook(ctx, "111"))

	_, err := env.books.FindBookByISBN(ctx, "111")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))

	err = env.books.DeleteBook(ctx, "111")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestSearchBooks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.saveBook(t, "111", "The Odyssey")
	env.saveBook(t, "222", "The Iliad")

	title := "iliad"
	found, err := env.books.SearchBooks(ctx, repositories.BookSearch{Title: &title})
	require.NoError(t, err)
	require.Len(t, found.Result, 1)
	assert.Equal(t, "222", found.Result[0].ISBN)
}

func TestAddReview(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.registerUser(t, "Ana", "ana@x.com")
	env.saveBook(t, "111", "The Odyssey")

	result, err := env.books.AddReview(ctx, user.Id, "111", &command.AddReviewCommand{
		Rating:  4,
		Comment: "solid",
	})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, result.AverageRating, 0.001)
	assert.Equal(t, 4, result.Result.Rating)

	_, err = env.books.AddReview(ctx, user.Id, "111", &command.AddReviewCommand{Rating: 6})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))

	_, err = env.books.AddReview(ctx, user.Id, "999", &command.AddReviewCommand{Rating: 3})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}
