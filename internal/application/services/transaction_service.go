package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"library-service/internal/application/command"
	"library-service/internal/application/events"
	"library-service/internal/application/interfaces"
	"library-service/internal/application/mapper"
	"library-service/internal/application/query"
	"library-service/internal/domain/entities"
	"library-service/internal/domain/repositories"
	apperrors "library-service/internal/errors"
)

// TransactionService is the ledger: the only writer of transaction
// records and, during borrow/return, the only mutator of book
// availability.
type TransactionService struct {
	transactionRepo repositories.TransactionRepository
	userRepo        repositories.UserRepository
	bookRepo        repositories.BookRepository
	dispatcher      *events.Dispatcher
}

func NewTransactionService(
	transactionRepo repositories.TransactionRepository,
	userRepo repositories.UserRepository,
	bookRepo repositories.BookRepository,
	dispatcher *events.Dispatcher,
) interfaces.TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		bookRepo:        bookRepo,
		dispatcher:      dispatcher,
	}
}

// Checkout converts the caller's staged books into borrowed
// transactions, all or nothing. Books are processed in the order
// given. Notifications go out only after the batch has committed.
func (s *TransactionService) Checkout(ctx context.Context, userId uuid.UUID, borrowCommand *command.BorrowBooksCommand) (*command.BorrowBooksCommandResult, error) {
	if len(borrowCommand.ISBNs) == 0 {
		return nil, apperrors.Validation("at least one book is required")
	}

	user, err := s.userRepo.FindById(ctx, userId)
	if err != nil {
		return nil, apperrors.Internal("failed to fetch user", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("user not found")
	}

	bookIds := make([]uuid.UUID, 0, len(borrowCommand.ISBNs))
	titlesById := make(map[uuid.UUID]string, len(borrowCommand.ISBNs))
	for _, isbn := range borrowCommand.ISBNs {
		book, err := s.bookRepo.FindByISBN(ctx, isbn)
		if err != nil {
			return nil, apperrors.Internal("failed to fetch book", err)
		}
		if book == nil {
			return nil, apperrors.NotFound("book not found: " + isbn)
		}
		if !book.Availability {
			return nil, apperrors.Unavailable("book is not available: " + book.Title)
		}
		bookIds = append(bookIds, book.Id)
		titlesById[book.Id] = book.Title
	}

	items, err := s.transactionRepo.Checkout(ctx, userId, bookIds)
	if err != nil {
		var unavailable repositories.ErrBookUnavailable
		if errors.As(err, &unavailable) {
			// Lost the race between the pre-check and the flip.
			return nil, apperrors.Unavailable("book is not available: " + titlesById[unavailable.BookId])
		}
		return nil, apperrors.Internal("failed to borrow books", err)
	}

	result := &command.BorrowBooksCommandResult{}
	for _, item := range items {
		s.publishBookEvent(events.TypeBookBorrowed, user, item.Book, &item.Transaction.DueDate)
		result.Transactions = append(result.Transactions, mapper.NewTransactionResultFromEntity(item.Transaction))
	}
	return result, nil
}

// Return closes a borrow episode. Only the borrower may return it, and
// only once.
func (s *TransactionService) Return(ctx context.Context, userId uuid.UUID, returnCommand *command.ReturnBookCommand) (*command.ReturnBookCommandResult, error) {
	transactionId, err := uuid.Parse(returnCommand.TransactionId)
	if err != nil {
		return nil, apperrors.Validation("invalid transaction id")
	}

	transaction, err := s.transactionRepo.FindById(ctx, transactionId)
	if err != nil {
		return nil, apperrors.Internal("failed to fetch transaction", err)
	}
	if transaction == nil {
		return nil, apperrors.NotFound("transaction not found")
	}
	if transaction.IsReturned() {
		return nil, apperrors.Conflict("book already returned")
	}
	if transaction.UserId != userId {
		return nil, apperrors.Forbidden("not allowed to return this book")
	}

	returnedTransaction, book, err := s.transactionRepo.Return(ctx, transactionId)
	if err != nil {
		if errors.Is(err, repositories.ErrAlreadyReturned{}) {
			return nil, apperrors.Conflict("book already returned")
		}
		return nil, apperrors.Internal("failed to return book", err)
	}

	user, err := s.userRepo.FindById(ctx, userId)
	if err == nil && user != nil {
		s.publishBookEvent(events.TypeBookReturned, user, book, nil)
	}

	return &command.ReturnBookCommandResult{
		Transaction: mapper.NewTransactionResultFromEntity(returnedTransaction),
	}, nil
}

func (s *TransactionService) FindTransactionsForUser(ctx context.Context, userId uuid.UUID) (*query.TransactionQueryListResult, error) {
	transactions, err := s.transactionRepo.FindByUserId(ctx, userId)
	if err != nil {
		return nil, apperrors.Internal("failed to list transactions", err)
	}

	result := &query.TransactionQueryListResult{}
	for _, transaction := range transactions {
		result.Result = append(result.Result, mapper.NewTransactionResultFromEntity(transaction))
	}
	return result, nil
}

func (s *TransactionService) publishBookEvent(eventType string, user *entities.User, book *entities.Book, dueDate *time.Time) {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Publish(events.BookEvent{
		Type:       eventType,
		UserName:   user.Name,
		UserEmail:  user.Email,
		BookTitle:  book.Title,
		BookAuthor: book.Author,
		BookISBN:   book.ISBN,
		DueDate:    dueDate,
		OccurredAt: time.Now(),
	})
}
