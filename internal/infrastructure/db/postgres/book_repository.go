package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"library-service/internal/domain/entities"
	"library-service/internal/domain/repositories"
)

type BookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) repositories.BookRepository {
	return &BookRepository{db: db}
}

func (r *BookRepository) Create(ctx context.Context, book *entities.ValidatedBook) (*entities.Book, error) {
	bookModel := bookModelFromEntity(book.GetBook())
	if err := r.db.WithContext(ctx).Create(&bookModel).Error; err != nil {
		return nil, err
	}

	return r.FindById(ctx, bookModel.Id)
}

func (r *BookRepository) FindById(ctx context.Context, id uuid.UUID) (*entities.Book, error) {
	var bookModel BookModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&bookModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return bookEntityFromModel(&bookModel), nil
}

func (r *BookRepository) FindByISBN(ctx context.Context, isbn string) (*entities.Book, error) {
	var bookModel BookModel
	if err := r.db.WithContext(ctx).Where("isbn = ?", isbn).First(&bookModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return bookEntityFromModel(&bookModel), nil
}

func (r *BookRepository) FindAll(ctx context.Context) ([]*entities.Book, error) {
	var bookModels []BookModel
	if err := r.db.WithContext(ctx).Order("title").Find(&bookModels).Error; err != nil {
		return nil, err
	}

	return bookEntitiesFromModels(bookModels), nil
}

func (r *BookRepository) Search(ctx context.Context, search repositories.BookSearch) ([]*entities.Book, error) {
	query := r.db.WithContext(ctx).Model(&BookModel{})

	if search.Title != nil {
		query = query.Where("LOWER(title) LIKE ?", "%"+lowered(*search.Title)+"%")
	}
	if search.Author != nil {
		query = query.Where("LOWER(author) LIKE ?", "%"+lowered(*search.Author)+"%")
	}
	if search.Genre != nil {
		query = query.Where("LOWER(genre) LIKE ?", "%"+lowered(*search.Genre)+"%")
	}
	if search.Year != nil {
		query = query.Where("publication_year = ?", *search.Year)
	}
	if search.Available != nil {
		query = query.Where("availability = ?", *search.Available)
	}
	if search.MinRating != nil {
		query = query.Where("average_rating >= ?", *search.MinRating)
	}

	var bookModels []BookModel
	if err := query.Order("title").Find(&bookModels).Error; err != nil {
		return nil, err
	}

	return bookEntitiesFromModels(bookModels), nil
}

func (r *BookRepository) Update(ctx context.Context, book *entities.ValidatedBook) (*entities.Book, error) {
	bookModel := bookModelFromEntity(book.GetBook())
	if err := r.db.WithContext(ctx).Save(&bookModel).Error; err != nil {
		return nil, err
	}

	return r.FindById(ctx, bookModel.Id)
}

func (r *BookRepository) Delete(ctx context.Context, isbn string) error {
	return r.db.WithContext(ctx).Delete(&BookModel{}, "isbn = ?", isbn).Error
}

func lowered(s string) string {
	return strings.ToLower(s)
}

func bookModelFromEntity(bookEntity *entities.Book) BookModel {
	return BookModel{
		Id:              bookEntity.Id,
		CreatedAt:       bookEntity.CreatedAt,
		UpdatedAt:       bookEntity.UpdatedAt,
		ISBN:            bookEntity.ISBN,
		Title:           bookEntity.Title,
		Author:          bookEntity.Author,
		Genre:           bookEntity.Genre,
		PublicationYear: bookEntity.PublicationYear,
		Availability:    bookEntity.Availability,
		AverageRating:   bookEntity.AverageRating,
	}
}

func bookEntityFromModel(bookModel *BookModel) *entities.Book {
	return &entities.Book{
		Id:              bookModel.Id,
		CreatedAt:       bookModel.CreatedAt,
		UpdatedAt:       bookModel.UpdatedAt,
		ISBN:            bookModel.ISBN,
		Title:           bookModel.Title,
		Author:          bookModel.Author,
		Genre:           bookModel.Genre,
		PublicationYear: bookModel.PublicationYear,
		Availability:    bookModel.Availability,
		AverageRating:   bookModel.AverageRating,
	}
}

func bookEntitiesFromModels(bookModels []BookModel) []*entities.Book {
	books := make([]*entities.Book, 0, len(bookModels))
	for i := range bookModels {
		books = append(books, bookEntityFromModel(&bookModels[i]))
	}
	return books
}
