package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusBorrowed = "borrowed"
	StatusReturned = "returned"
)

// LoanPeriod is how long a borrowed book may be kept.
const LoanPeriod = 14 * 24 * time.Hour

// Transaction records one borrow episode. It is created in status
// "borrowed" and mutated exactly once, to "returned".
type Transaction struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	BookId     uuid.UUID
	BorrowDate time.Time
	DueDate    time.Time
	ReturnDate *time.Time
	Status     string
}

func NewTransaction(userId, bookId uuid.UUID, borrowDate time.Time) *Transaction {
	return &Transaction{
		Id:         uuid.New(),
		UserId:     userId,
		BookId:     bookId,
		BorrowDate: borrowDate,
		DueDate:    borrowDate.Add(LoanPeriod),
		Status:     StatusBorrowed,
	}
}

func (t *Transaction) IsReturned() bool {
	return t.Status == StatusReturned
}

func (t *Transaction) MarkReturned(returnDate time.Time) {
	t.Status = StatusReturned
	t.ReturnDate = &returnDate
}
