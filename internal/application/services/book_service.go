package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"library-service/internal/application/command"
	"library-service/internal/application/interfaces"
	"library-service/internal/application/mapper"
	"library-service/internal/application/query"
	"library-service/internal/domain/entities"
	"library-service/internal/domain/repositories"
	apperrors "library-service/internal/errors"
)

type BookService struct {
	bookRepo   repositories.BookRepository
	reviewRepo repositories.ReviewRepository
}

func NewBookService(bookRepo repositories.BookRepository, reviewRepo repositories.ReviewRepository) interfaces.BookService {
	return &BookService{bookRepo: bookRepo, reviewRepo: reviewRepo}
}

func (s *BookService) SaveBook(ctx context.Context, saveCommand *command.SaveBookCommand) (*command.SaveBookCommandResult, error) {
	newBook := entities.NewBook(
		saveCommand.ISBN,
		saveCommand.Title,
		saveCommand.Author,
		saveCommand.Genre,
		saveCommand.PublicationYear,
	)
	validatedBook, err := entities.NewValidatedBook(newBook)
	if err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	createdBook, err := s.bookRepo.Create(ctx, validatedBook)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("a book with this ISBN already exists")
		}
		return nil, apperrors.Internal("failed to save book", err)
	}

	return &command.SaveBookCommandResult{
		Result: mapper.NewBookResultFromEntity(createdBook),
	}, nil
}

func (s *BookService) FindBookByISBN(ctx context.Context, isbn string) (*query.BookQueryResult, error) {
	book, err := s.bookRepo.FindByISBN(ctx, isbn)
	if err != nil {
		return nil, apperrors.Internal("failed to fetch book", err)
	}
	if book == nil {
		return nil, apperrors.NotFound("book not found")
	}

	return &query.BookQueryResult{Result: mapper.NewBookResultFromEntity(book)}, nil
}

func (s *BookService) FindAllBooks(ctx context.Context) (*query.BookQueryListResult, error) {
	books, err := s.bookRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to list books", err)
	}

	return &query.BookQueryListResult{Result: mapper.NewBookResultsFromEntities(books)}, nil
}

func (s *BookService) SearchBooks(ctx context.Context, search repositories.BookSearch) (*query.BookQueryListResult, error) {
	books, err := s.bookRepo.Search(ctx, search)
	if err != nil {
		return nil, apperrors.Internal("failed to search books", err)
	}

	return &query.BookQueryListResult{Result: mapper.NewBookResultsFromEntities(books)}, nil
}

func (s *BookService) UpdateBook(ctx context.Context, isbn string, updateCommand *command.UpdateBookCommand) (*command.UpdateBookCommandResult, error) {
	book, err := s.bookRepo.FindByISBN(ctx, isbn)
	if err != nil {
		return nil, apperrors.Internal("failed to fetch book", err)
	}
	if book == nil {
		return nil, apperrors.NotFound("book not found")
	}

	if updateCommand.Title != "" {
		book.Title = updateCommand.Title
	}
	if updateCommand.Author != "" {
		book.Author = updateCommand.Author
	}
	if updateCommand.Genre != "" {
		book.Genre = updateCommand.Genre
	}
	if updateCommand.PublicationYear != 0 {
		book.PublicationYear = updateCommand.PublicationYear
	}
	// Admin catalog edits may toggle availability directly; the ledger
	// remains the only writer during borrow/return.
	if updateCommand.Availability != nil {
		book.Availability = *updateCommand.Availability
	}

	validatedBook, err := entities.NewValidatedBook(book)
	if err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	updatedBook, err := s.bookRepo.Update(ctx, validatedBook)
	if err != nil {
		return nil, apperrors.Internal("failed to update book", err)
	}

	return &command.UpdateBookCommandResult{
		Result: mapper.NewBookResultFromEntity(updatedBook),
	}, nil
}

func (s *BookService) DeleteBook(ctx context.Context, isbn string) error {
	book, err := s.bookRepo.FindByISBN(ctx, isbn)
	if err != nil {
		return apperrors.Internal("failed to fetch book", err)
	}
	if book == nil {
		return apperrors.NotFound("book not found")
	}

	if err := s.bookRepo.Delete(ctx, isbn); err != nil {
		return apperrors.Internal("failed to delete book", err)
	}
	return nil
}

func (s *BookService) AddReview(ctx context.Context, userId uuid.UUID, isbn string, reviewCommand *command.AddReviewCommand) (*command.AddReviewCommandResult, error) {
	book, err := s.bookRepo.FindByISBN(ctx, isbn)
	if err != nil {
		return nil, apperrors.Internal("failed to fetch book", err)
	}
	if book == nil {
		return nil, apperrors.NotFound("book not found")
	}

	review := entities.NewReview(userId, book.Id, reviewCommand.Rating, reviewCommand.Comment)
	if err := review.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	createdReview, averageRating, err := s.reviewRepo.Create(ctx, review)
	if err != nil {
		return nil, apperrors.Internal("failed to save review", err)
	}

	return &command.AddReviewCommandResult{
		Result:        mapper.NewReviewResultFromEntity(createdReview),
		AverageRating: averageRating,
	}, nil
}
