package repositories

import (
	"context"

	"github.com/google/uuid"

	"library-service/internal/domain/entities"
)

// BookSearch holds the optional predicates of a catalog search. Nil
// fields are ignored; string matches are case-insensitive substrings.
type BookSearch struct {
	Title     *string
	Author    *string
	Genre     *string
	Year      *int
	Available *bool
	MinRating *float64
}

type BookRepository interface {
	Create(ctx context.Context, book *entities.ValidatedBook) (*entities.Book, error)
	FindById(ctx context.Context, id uuid.UUID) (*entities.Book, error)
	FindByISBN(ctx context.Context, isbn string) (*entities.Book, error)
	FindAll(ctx context.Context) ([]*entities.Book, error)
	Search(ctx context.Context, search BookSearch) ([]*entities.Book, error)
	Update(ctx context.Context, book *entities.ValidatedBook) (*entities.Book, error)
	Delete(ctx context.Context, isbn string) error
}
