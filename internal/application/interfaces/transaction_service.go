package interfaces

import (
	"context"

	"github.com/google/uuid"

	"library-service/internal/application/command"
	"library-service/internal/application/query"
)

type TransactionService interface {
	Checkout(ctx context.Context, userId uuid.UUID, borrowCommand *command.BorrowBooksCommand) (*command.BorrowBooksCommandResult, error)
	Return(ctx context.Context, userId uuid.UUID, returnCommand *command.ReturnBookCommand) (*command.ReturnBookCommandResult, error)
	FindTransactionsForUser(ctx context.Context, userId uuid.UUID) (*query.TransactionQueryListResult, error)
}
