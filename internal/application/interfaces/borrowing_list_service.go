package interfaces

import (
	"context"

	"github.com/google/uuid"

	"library-service/internal/application/command"
	"library-service/internal/application/query"
)

type BorrowingListService interface {
	GetBorrowingList(ctx context.Context, userId uuid.UUID) (*query.BorrowingListQueryResult, error)
	AddToBorrowingList(ctx context.Context, userId uuid.UUID, isbn string) (*command.BorrowingListCommandResult, error)
	RemoveFromBorrowingList(ctx context.Context, userId uuid.UUID, isbn string) (*command.BorrowingListCommandResult, error)
	ClearBorrowingList(ctx context.Context, userId uuid.UUID) error
}
