package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Book struct {
	Id              uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ISBN            string
	Title           string
	Author          string
	Genre           string
	PublicationYear int
	Availability    bool
	AverageRating   float64
}

func NewBook(isbn, title, author, genre string, publicationYear int) *Book {
	now := time.Now()
	return &Book{
		Id:              uuid.New(),
		CreatedAt:       now,
		UpdatedAt:       now,
		ISBN:            isbn,
		Title:           title,
		Author:          author,
		Genre:           genre,
		PublicationYear: publicationYear,
		Availability:    true,
	}
}

func (b *Book) validate() error {
	if b.ISBN == "" {
		return errors.New("isbn must not be empty")
	}
	if b.Title == "" {
		return errors.New("title must not be empty")
	}
	if b.Author == "" {
		return errors.New("author must not be empty")
	}
	if b.Genre == "" {
		return errors.New("genre must not be empty")
	}
	if b.PublicationYear <= 0 {
		return errors.New("publication year must be positive")
	}
	return nil
}

type ValidatedBook struct {
	*Book
}

func NewValidatedBook(book *Book) (*ValidatedBook, error) {
	if err := book.validate(); err != nil {
		return nil, err
	}

	return &ValidatedBook{Book: book}, nil
}

func (vb *ValidatedBook) GetBook() *Book {
	return vb.Book
}
