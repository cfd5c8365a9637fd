package repositories

import (
	"context"

	"github.com/google/uuid"

	"library-service/internal/domain/entities"
)

// ErrDuplicateListEntry is reported by AddBook when the book is
// already staged in the user's list. The uniqueness is enforced by the
// storage layer so concurrent adds cannot slip past the check.
type ErrDuplicateListEntry struct{}

func (ErrDuplicateListEntry) Error() string { return "book already in borrowing list" }

type BorrowingListRepository interface {
	// FindByUserId returns nil without error when the user has no list.
	FindByUserId(ctx context.Context, userId uuid.UUID) (*entities.BorrowingList, error)
	// AddBook creates the list lazily and appends the book, failing
	// with ErrDuplicateListEntry on a repeated add.
	AddBook(ctx context.Context, userId, bookId uuid.UUID) (*entities.BorrowingList, error)
	// RemoveBook returns nil when the list or the entry is absent.
	RemoveBook(ctx context.Context, userId, bookId uuid.UUID) (*entities.BorrowingList, error)
	// Clear empties the list; the second return is false when no list
	// exists for the user.
	Clear(ctx context.Context, userId uuid.UUID) (bool, error)
}
