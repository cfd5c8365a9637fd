package events

import "time"

const (
	TypeBookBorrowed = "book.borrowed"
	TypeBookReturned = "book.returned"
)

// BookEvent is emitted by the transaction ledger after a borrow or
// return has committed. Listeners notify; they never influence the
// transaction that produced the event.
type BookEvent struct {
	Type       string     `json:"type"`
	UserName   string     `json:"user_name"`
	UserEmail  string     `json:"user_email"`
	BookTitle  string     `json:"book_title"`
	BookAuthor string     `json:"book_author"`
	BookISBN   string     `json:"book_isbn"`
	DueDate    *time.Time `json:"due_date,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}
