package common

import (
	"time"

	"github.com/google/uuid"
)

type TransactionResult struct {
	Id         uuid.UUID  `json:"id"`
	UserId     uuid.UUID  `json:"user_id"`
	BookId     uuid.UUID  `json:"book_id"`
	BorrowDate time.Time  `json:"borrow_date"`
	DueDate    time.Time  `json:"due_date"`
	ReturnDate *time.Time `json:"return_date,omitempty"`
	Status     string     `json:"status"`
}

type BorrowingListResult struct {
	Id        uuid.UUID     `json:"id"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	UserId    uuid.UUID     `json:"user_id"`
	Books     []*BookResult `json:"books"`
}
