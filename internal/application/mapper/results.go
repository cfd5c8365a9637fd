package mapper

import (
	"library-service/internal/application/common"
	"library-service/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	return &common.UserResult{
		Id:          user.Id,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
		Name:        user.Name,
		Email:       user.Email,
		Role:        user.Role,
		LastLoginAt: user.LastLoginAt,
	}
}

func NewBookResultFromEntity(book *entities.Book) *common.BookResult {
	return &common.BookResult{
		Id:              book.Id,
		CreatedAt:       book.CreatedAt,
		UpdatedAt:       book.UpdatedAt,
		ISBN:            book.ISBN,
		Title:           book.Title,
		Author:          book.Author,
		Genre:           book.Genre,
		PublicationYear: book.PublicationYear,
		Availability:    book.Availability,
		AverageRating:   book.AverageRating,
	}
}

func NewBookResultsFromEntities(books []*entities.Book) []*common.BookResult {
	results := make([]*common.BookResult, 0, len(books))
	for _, book := range books {
		results = append(results, NewBookResultFromEntity(book))
	}
	return results
}

func NewTransactionResultFromEntity(transaction *entities.Transaction) *common.TransactionResult {
	return &common.TransactionResult{
		Id:         transaction.Id,
		UserId:     transaction.UserId,
		BookId:     transaction.BookId,
		BorrowDate: transaction.BorrowDate,
		DueDate:    transaction.DueDate,
		ReturnDate: transaction.ReturnDate,
		Status:     transaction.Status,
	}
}

func NewBorrowingListResultFromEntity(list *entities.BorrowingList, books []*entities.Book) *common.BorrowingListResult {
	return &common.BorrowingListResult{
		Id:        list.Id,
		CreatedAt: list.CreatedAt,
		UpdatedAt: list.UpdatedAt,
		UserId:    list.UserId,
		Books:     NewBookResultsFromEntities(books),
	}
}

func NewReviewResultFromEntity(review *entities.Review) *common.ReviewResult {
	return &common.ReviewResult{
		Id:        review.Id,
		CreatedAt: review.CreatedAt,
		UserId:    review.UserId,
		BookId:    review.BookId,
		Rating:    review.Rating,
		Comment:   review.Comment,
	}
}
