package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-service/internal/application/command"
	apperrors "library-service/internal/errors"
)

func TestAddToBorrowingList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.registerUser(t, "Ana", "ana@x.com")
	book := env.saveBook(t, "111", "The Odyssey")

	result, err := env.lists.AddToBorrowingList(ctx, user.Id, "111")
	require.NoError(t, err)
	require.Len(t, result.Result.Books, 1)
	assert.Equal(t, book.Id, result.Result.Books[0].Id)

	fetched, err := env.lists.GetBorrowingList(ctx, user.Id)
	require.NoError(t, err)
	assert.Len(t, fetched.Result.Books, 1)
}

func TestAddToBorrowingListRejections(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.registerUser(t, "Ana", "ana@x.com")
	env.saveBook(t, "111", "The Odyssey")

	_, err := env.lists.AddToBorrowingList(ctx, user.Id, "999")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))

	_, err = env.lists.AddToBorrowingList(ctx, user.Id, "111")
	require.NoError(t, err)

	// Same book twice is a conflict, not a silent no-op.
	_, err = env.lists.AddToBorrowingList(ctx, user.Id, "111")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeConflict))

	// A borrowed book cannot be staged again.
	_, err = env.transactions.Checkout(ctx, user.Id, &command.BorrowBooksCommand{ISBNs: []string{"111"}})
	require.NoError(t, err)

	_, err = env.lists.AddToBorrowingList(ctx, user.Id, "111")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeUnavailable))
}

func TestRemoveFromBorrowingList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.registerUser(t, "Ana", "ana@x.com")
	env.saveBook(t, "111", "The Odyssey")
	env.saveBook(t, "222", "Dune")

	_, err := env.lists.AddToBorrowingList(ctx, user.Id, "111")
	require.NoError(t, err)
	_, err = env.lists.AddToBorrowingList(ctx, user.Id, "222")
	require.NoError(t, err)

	result, err := env.lists.RemoveFromBorrowingList(ctx, user.Id, "111")
	require.NoError(t, err)
	require.Len(t, result.Result.Books, 1)
	assert.Equal(t, "Dune", result.Result.Books[0].Title)

	_, err = env.lists.RemoveFromBorrowingList(ctx, user.Id, "999")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestClearBorrowingList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.registerUser(t, "Ana", "ana@x.com")
	env.saveBook(t, "111", "The Odyssey")

	err := env.lists.ClearBorrowingList(ctx, user.Id)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))

	_, err = env.lists.AddToBorrowingList(ctx, user.Id, "111")
	require.NoError(t, err)

	require.NoError(t, env.lists.ClearBorrowingList(ctx, user.Id))

	// An emptied list reads as absent.
	_, err = env.lists.GetBorrowingList(ctx, user.Id)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}
