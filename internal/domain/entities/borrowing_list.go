package entities

import (
	"time"

	"github.com/google/uuid"
)

// BorrowingList is a per-user staging set of books, created lazily on
// the first add and cleared when a checkout commits. A book appears in
// a list at most once.
type BorrowingList struct {
	Id        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	UserId    uuid.UUID
	BookIds   []uuid.UUID
}

func NewBorrowingList(userId uuid.UUID) *BorrowingList {
	now := time.Now()
	return &BorrowingList{
		Id:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
		UserId:    userId,
		BookIds:   make([]uuid.UUID, 0),
	}
}

func (l *BorrowingList) Contains(bookId uuid.UUID) bool {
	for _, id := range l.BookIds {
		if id == bookId {
			return true
		}
	}
	return false
}

func (l *BorrowingList) IsEmpty() bool {
	return len(l.BookIds) == 0
}
