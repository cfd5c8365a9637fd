package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-service/internal/application/command"
	"library-service/internal/domain/entities"
	apperrors "library-service/internal/errors"
)

func TestBorrowAndReturnLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.registerUser(t, "Ana", "ana@x.com")
	env.saveBook(t, "111", "The Odyssey")

	_, err := env.lists.AddToBorrowingList(ctx, user.Id, "111")
	require.NoError(t, err)

	borrowed, err := env.transactions.Checkout(ctx, user.Id, &command.BorrowBooksCommand{
		ISBNs: []string{"111"},
	})
	require.NoError(t, err)
	require.Len(t, borrowed.Transactions, 1)

	transaction := borrowed.Transactions[0]
	assert.Equal(t, entities.StatusBorrowed, transaction.Status)
	assert.Equal(t, transaction.BorrowDate.Add(14*24*time.Hour), transaction.DueDate)

	// Checkout empties the staged list.
	_, err = env.lists.GetBorrowingList(ctx, user.Id)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))

	// The book is off the shelf until returned.
	book, err := env.books.FindBookByISBN(ctx, "111")
	require.NoError(t, err)
	assert.False(t, book.Result.Availability)

	_, err = env.lists.AddToBorrowingList(ctx, user.Id, "111")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeUnavailable))

	returned, err := env.transactions.Return(ctx, user.Id, &command.ReturnBookCommand{
		TransactionId: transaction.Id.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, entities.StatusReturned, returned.Transaction.Status)
	require.NotNil(t, returned.Transaction.ReturnDate)

	book, err = env.books.FindBookByISBN(ctx, "111")
	require.NoError(t, err)
	assert.True(t, book.Result.Availability)

	mails := env.mailer.waitForCount(t, 2)
	assert.Equal(t, "Book Borrowed", mails[0].Subject)
	assert.Equal(t, "ana@x.com", mails[0].To)
	assert.Contains(t, mails[0].Body, "The Odyssey")
	assert.Contains(t, mails[0].Body, "The Library Team")
	assert.Equal(t, "Book Returned", mails[1].Subject)
}

func TestCheckoutValidations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.registerUser(t, "Ana", "ana@x.com")

	_, err := env.transactions.Checkout(ctx, user.Id, &command.BorrowBooksCommand{})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))

	_, err = env.transactions.Checkout(ctx, user.Id, &command.BorrowBooksCommand{
		ISBNs: []string{"999"},
	})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestCheckoutBatchIsAtomic(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	userA := env.registerUser(t, "Ana", "ana@x.com")
	userB := env.registerUser(t, "Ben", "ben@x.com")
	env.saveBook(t, "111", "The Odyssey")
	env.saveBook(t, "222", "Dune")

	_, err := env.transactions.Checkout(ctx, userB.Id, &command.BorrowBooksCommand{
		ISBNs: []string{"222"},
	})
	require.NoError(t, err)

	// Second book in the batch is gone, so the first must stay on the
	// shelf too.
	_, err = env.transactions.Checkout(ctx, userA.Id, &command.BorrowBooksCommand{
		ISBNs: []string{"111", "222"},
	})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeUnavailable))

	book, err := env.books.FindBookByISBN(ctx, "111")
	require.NoError(t, err)
	assert.True(t, book.Result.Availability)

	history, err := env.transactions.FindTransactionsForUser(ctx, userA.Id)
	require.NoError(t, err)
	assert.Empty(t, history.Result)
}

func TestReturnGuards(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	userA := env.registerUser(t, "Ana", "ana@x.com")
	userB := env.registerUser(t, "Ben", "ben@x.com")
	env.saveBook(t, "111", "The Odyssey")

	borrowed, err := env.transactions.Checkout(ctx, userA.Id, &command.BorrowBooksCommand{
		ISBNs: []string{"111"},
	})
	require.NoError(t, err)
	transactionId := borrowed.Transactions[0].Id.String()

	_, err = env.transactions.Return(ctx, userA.Id, &command.ReturnBookCommand{
		TransactionId: "not-a-uuid",
	})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))

	// Only the borrower may return.
	_, err = env.transactions.Return(ctx, userB.Id, &command.ReturnBookCommand{
		TransactionId: transactionId,
	})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeForbidden))

	_, err = env.transactions.Return(ctx, userA.Id, &command.ReturnBookCommand{
		TransactionId: transactionId,
	})
	require.NoError(t, err)

	_, err = env.transactions.Return(ctx, userA.Id, &command.ReturnBookCommand{
		TransactionId: transactionId,
	})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeConflict))
}

func TestFindTransactionsForUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.registerUser(t, "Ana", "ana@x.com")
	env.saveBook(t, "111", "The Odyssey")
	env.saveBook(t, "222", "Dune")

	_, err := env.transactions.Checkout(ctx, user.Id, &command.BorrowBooksCommand{
		ISBNs: []string{"111", "222"},
	})
	require.NoError(t, err)

	history, err := env.transactions.FindTransactionsForUser(ctx, user.Id)
	require.NoError(t, err)
	assert.Len(t, history.Result, 2)
}
