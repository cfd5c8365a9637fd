package repositories

import (
	"context"

	"github.com/google/uuid"

	"library-service/internal/domain/entities"
)

// ErrBookUnavailable is reported by Checkout when a book's
// availability compare-and-swap finds the flag already false. Losing a
// concurrent double-borrow surfaces as this error.
type ErrBookUnavailable struct {
	BookId uuid.UUID
}

func (e ErrBookUnavailable) Error() string {
	return "book is not available: " + e.BookId.String()
}

// ErrAlreadyReturned is reported by Return when the transaction's
// status flip finds it already returned.
type ErrAlreadyReturned struct{}

func (ErrAlreadyReturned) Error() string { return "book already returned" }

// CheckoutItem pairs a created transaction with the book it borrowed,
// so callers can notify without re-reading the catalog.
type CheckoutItem struct {
	Transaction *entities.Transaction
	Book        *entities.Book
}

type TransactionRepository interface {
	// Checkout atomically creates one borrowed transaction per book,
	// flips each book's availability true->false with a compare-and-swap,
	// and clears the user's borrowing list. Any failure rolls the whole
	// batch back.
	Checkout(ctx context.Context, userId uuid.UUID, bookIds []uuid.UUID) ([]CheckoutItem, error)
	// Return marks the transaction returned and flips the book's
	// availability back to true, atomically.
	Return(ctx context.Context, transactionId uuid.UUID) (*entities.Transaction, *entities.Book, error)
	FindById(ctx context.Context, id uuid.UUID) (*entities.Transaction, error)
	FindByUserId(ctx context.Context, userId uuid.UUID) ([]*entities.Transaction, error)
	// OpenCountByBookId reports how many borrowed transactions
	// currently reference the book.
	OpenCountByBookId(ctx context.Context, bookId uuid.UUID) (int64, error)
}
