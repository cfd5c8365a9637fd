package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"library-service/internal/application/command"
	"library-service/internal/application/interfaces"
	"library-service/internal/application/mapper"
	"library-service/internal/application/query"
	"library-service/internal/domain/entities"
	"library-service/internal/domain/repositories"
	apperrors "library-service/internal/errors"
)

type BorrowingListService struct {
	listRepo repositories.BorrowingListRepository
	bookRepo repositories.BookRepository
}

func NewBorrowingListService(
	listRepo repositories.BorrowingListRepository,
	bookRepo repositories.BookRepository,
) interfaces.BorrowingListService {
	return &BorrowingListService{listRepo: listRepo, bookRepo: bookRepo}
}

func (s *BorrowingListService) GetBorrowingList(ctx context.Context, userId uuid.UUID) (*query.BorrowingListQueryResult, error) {
	list, err := s.listRepo.FindByUserId(ctx, userId)
	if err != nil {
		return nil, apperrors.Internal("failed to fetch borrowing list", err)
	}
	if list == nil || list.IsEmpty() {
		return nil, apperrors.NotFound("borrowing list not found")
	}

	books, err := s.resolveBooks(ctx, list)
	if err != nil {
		return nil, err
	}

	return &query.BorrowingListQueryResult{
		Result: mapper.NewBorrowingListResultFromEntity(list, books),
	}, nil
}

// AddToBorrowingList stages a book. Only lendable books may be staged,
// and staging the same book twice is a conflict.
func (s *BorrowingListService) AddToBorrowingList(ctx context.Context, userId uuid.UUID, isbn string) (*command.BorrowingListCommandResult, error) {
	book, err := s.bookRepo.FindByISBN(ctx, isbn)
	if err != nil {
		return nil, apperrors.Internal("failed to fetch book", err)
	}
	if book == nil {
		return nil, apperrors.NotFound("book not found")
	}
	if !book.Availability {
		return nil, apperrors.Unavailable("book is not available: " + book.Title)
	}

	list, err := s.listRepo.AddBook(ctx, userId, book.Id)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateListEntry{}) {
			return nil, apperrors.Conflict("book already in borrowing list")
		}
		return nil, apperrors.Internal("failed to update borrowing list", err)
	}

	books, err := s.resolveBooks(ctx, list)
	if err != nil {
		return nil, err
	}

	return &command.BorrowingListCommandResult{
		Result: mapper.NewBorrowingListResultFromEntity(list, books),
	}, nil
}

func (s *BorrowingListService) RemoveFromBorrowingList(ctx context.Context, userId uuid.UUID, isbn string) (*command.BorrowingListCommandResult, error) {
	book, err := s.bookRepo.FindByISBN(ctx, isbn)
	if err != nil {
		return nil, apperrors.Internal("failed to fetch book", err)
	}
	if book == nil {
		return nil, apperrors.NotFound("book not found")
	}

	list, err := s.listRepo.RemoveBook(ctx, userId, book.Id)
	if err != nil {
		return nil, apperrors.Internal("failed to update borrowing list", err)
	}
	if list == nil {
		return nil, apperrors.NotFound("book not in borrowing list")
	}

	books, err := s.resolveBooks(ctx, list)
	if err != nil {
		return nil, err
	}

	return &command.BorrowingListCommandResult{
		Result: mapper.NewBorrowingListResultFromEntity(list, books),
	}, nil
}

func (s *BorrowingListService) ClearBorrowingList(ctx context.Context, userId uuid.UUID) error {
	cleared, err := s.listRepo.Clear(ctx, userId)
	if err != nil {
		return apperrors.Internal("failed to clear borrowing list", err)
	}
	if !cleared {
		return apperrors.NotFound("borrowing list not found")
	}
	return nil
}

func (s *BorrowingListService) resolveBooks(ctx context.Context, list *entities.BorrowingList) ([]*entities.Book, error) {
	books := make([]*entities.Book, 0, len(list.BookIds))
	for _, bookId := range list.BookIds {
		book, err := s.bookRepo.FindById(ctx, bookId)
		if err != nil {
			return nil, apperrors.Internal("failed to resolve listed book", err)
		}
		if book != nil {
			books = append(books, book)
		}
	}
	return books, nil
}
