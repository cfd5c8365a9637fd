package interfaces

import (
	"context"

	"github.com/google/uuid"

	"library-service/internal/application/command"
	"library-service/internal/application/query"
	"library-service/internal/domain/repositories"
)

type BookService interface {
	SaveBook(ctx context.Context, saveCommand *command.SaveBookCommand) (*command.SaveBookCommandResult, error)
	FindBookByISBN(ctx context.Context, isbn string) (*query.BookQueryResult, error)
	FindAllBooks(ctx context.Context) (*query.BookQueryListResult, error)
	SearchBooks(ctx context.Context, search repositories.BookSearch) (*query.BookQueryListResult, error)
	UpdateBook(ctx context.Context, isbn string, updateCommand *command.UpdateBookCommand) (*command.UpdateBookCommandResult, error)
	DeleteBook(ctx context.Context, isbn string) error
	AddReview(ctx context.Context, userId uuid.UUID, isbn string, reviewCommand *command.AddReviewCommand) (*command.AddReviewCommandResult, error)
}
