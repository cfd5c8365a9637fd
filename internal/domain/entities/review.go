package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Review struct {
	Id        uuid.UUID
	CreatedAt time.Time
	UserId    uuid.UUID
	BookId    uuid.UUID
	Rating    int
	Comment   string
}

func NewReview(userId, bookId uuid.UUID, rating int, comment string) *Review {
	return &Review{
		Id:        uuid.New(),
		CreatedAt: time.Now(),
		UserId:    userId,
		BookId:    bookId,
		Rating:    rating,
		Comment:   comment,
	}
}

func (r *Review) Validate() error {
	if r.Rating < 1 || r.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	if r.Comment == "" {
		return errors.New("comment must not be empty")
	}
	return nil
}
