package postgres

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string `gorm:"not null"`
	Email       string `gorm:"uniqueIndex;not null"`
	Password    string `gorm:"not null"`
	Role        string `gorm:"size:16;not null;default:'user'"`
	LastLoginAt *time.Time
}

func (UserModel) TableName() string {
	return "users"
}

type BookModel struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ISBN            string `gorm:"column:isbn;uniqueIndex;not null"`
	Title           string `gorm:"not null"`
	Author          string `gorm:"not null"`
	Genre           string `gorm:"not null"`
	PublicationYear int    `gorm:"not null"`
	Availability    bool   `gorm:"not null;default:true"`
	AverageRating   float64 `gorm:"not null;default:0"`
}

func (BookModel) TableName() string {
	return "books"
}

type BorrowingListModel struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	UserId    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
}

func (BorrowingListModel) TableName() string {
	return "borrowing_lists"
}

// BorrowingListItemModel rows carry the staged books; the composite
// unique index is what makes a duplicate add fail even under
// concurrent requests.
type BorrowingListItemModel struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
	ListId    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_list_book;not null"`
	BookId    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_list_book;not null"`
}

func (BorrowingListItemModel) TableName() string {
	return "borrowing_list_items"
}

type TransactionModel struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId     uuid.UUID `gorm:"type:uuid;index;not null"`
	BookId     uuid.UUID `gorm:"type:uuid;index;not null"`
	BorrowDate time.Time `gorm:"not null"`
	DueDate    time.Time `gorm:"not null"`
	ReturnDate *time.Time
	Status     string `gorm:"size:16;not null;default:'borrowed'"`
}

func (TransactionModel) TableName() string {
	return "transactions"
}

type ReviewModel struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
	UserId    uuid.UUID `gorm:"type:uuid;index;not null"`
	BookId    uuid.UUID `gorm:"type:uuid;index;not null"`
	Rating    int       `gorm:"not null"`
	Comment   string    `gorm:"not null"`
}

func (ReviewModel) TableName() string {
	return "reviews"
}
