package common

import (
	"time"

	"github.com/google/uuid"
)

type BookResult struct {
	Id              uuid.UUID `json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	ISBN            string    `json:"isbn"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Genre           string    `json:"genre"`
	PublicationYear int       `json:"publication_year"`
	Availability    bool      `json:"availability"`
	AverageRating   float64   `json:"average_rating"`
}

type ReviewResult struct {
	Id        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserId    uuid.UUID `json:"user_id"`
	BookId    uuid.UUID `json:"book_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
}
