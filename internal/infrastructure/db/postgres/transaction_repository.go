package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"library-service/internal/domain/entities"
	"library-service/internal/domain/repositories"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) repositories.TransactionRepository {
	return &TransactionRepository{db: db}
}

// Checkout runs the whole batch in one database transaction. The
// availability flip is a compare-and-swap: the UPDATE only matches
// rows still marked available, so of two concurrent checkouts of the
// same copy exactly one sees RowsAffected == 1. Any failure rolls back
// every transaction row and every flip.
func (r *TransactionRepository) Checkout(ctx context.Context, userId uuid.UUID, bookIds []uuid.UUID) ([]repositories.CheckoutItem, error) {
	var items []repositories.CheckoutItem

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		borrowDate := time.Now()

		for _, bookId := range bookIds {
			result := tx.Model(&BookModel{}).
				Where("id = ? AND availability = ?", bookId, true).
				Update("availability", false)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return repositories.ErrBookUnavailable{BookId: bookId}
			}

			var bookModel BookModel
			if err := tx.Where("id = ?", bookId).First(&bookModel).Error; err != nil {
				return err
			}

			transaction := entities.NewTransaction(userId, bookId, borrowDate)
			transactionModel := transactionModelFromEntity(transaction)
			if err := tx.Create(&transactionModel).Error; err != nil {
				return err
			}

			items = append(items, repositories.CheckoutItem{
				Transaction: transaction,
				Book:        bookEntityFromModel(&bookModel),
			})
		}

		// Checkout consumes the staging list.
		_, err := clearListTx(tx, userId)
		return err
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *TransactionRepository) Return(ctx context.Context, transactionId uuid.UUID) (*entities.Transaction, *entities.Book, error) {
	var (
		transactionEntity *entities.Transaction
		bookEntity        *entities.Book
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var transactionModel TransactionModel
		if err := tx.Where("id = ?", transactionId).First(&transactionModel).Error; err != nil {
			return err
		}

		returnDate := time.Now()
		result := tx.Model(&TransactionModel{}).
			Where("id = ? AND status = ?", transactionId, entities.StatusBorrowed).
			Updates(map[string]interface{}{
				"status":      entities.StatusReturned,
				"return_date": returnDate,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repositories.ErrAlreadyReturned{}
		}

		if err := tx.Model(&BookModel{}).Where("id = ?", transactionModel.BookId).
			Update("availability", true).Error; err != nil {
			return err
		}

		var bookModel BookModel
		if err := tx.Where("id = ?", transactionModel.BookId).First(&bookModel).Error; err != nil {
			return err
		}

		transactionModel.Status = entities.StatusReturned
		transactionModel.ReturnDate = &returnDate
		transactionEntity = transactionEntityFromModel(&transactionModel)
		bookEntity = bookEntityFromModel(&bookModel)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return transactionEntity, bookEntity, nil
}

func (r *TransactionRepository) FindById(ctx context.Context, id uuid.UUID) (*entities.Transaction, error) {
	var transactionModel TransactionModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return transactionEntityFromModel(&transactionModel), nil
}

func (r *TransactionRepository) FindByUserId(ctx context.Context, userId uuid.UUID) ([]*entities.Transaction, error) {
	var transactionModels []TransactionModel
	err := r.db.WithContext(ctx).Where("user_id = ?", userId).
		Order("borrow_date DESC").Find(&transactionModels).Error
	if err != nil {
		return nil, err
	}

	transactions := make([]*entities.Transaction, 0, len(transactionModels))
	for i := range transactionModels {
		transactions = append(transactions, transactionEntityFromModel(&transactionModels[i]))
	}
	return transactions, nil
}

func (r *TransactionRepository) OpenCountByBookId(ctx context.Context, bookId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&TransactionModel{}).
		Where("book_id = ? AND status = ?", bookId, entities.StatusBorrowed).
		Count(&count).Error
	return count, err
}

func transactionModelFromEntity(transactionEntity *entities.Transaction) TransactionModel {
	return TransactionModel{
		Id:         transactionEntity.Id,
		UserId:     transactionEntity.UserId,
		BookId:     transactionEntity.BookId,
		BorrowDate: transactionEntity.BorrowDate,
		DueDate:    transactionEntity.DueDate,
		ReturnDate: transactionEntity.ReturnDate,
		Status:     transactionEntity.Status,
	}
}

func transactionEntityFromModel(transactionModel *TransactionModel) *entities.Transaction {
	return &entities.Transaction{
		Id:         transactionModel.Id,
		UserId:     transactionModel.UserId,
		BookId:     transactionModel.BookId,
		BorrowDate: transactionModel.BorrowDate,
		DueDate:    transactionModel.DueDate,
		ReturnDate: transactionModel.ReturnDate,
		Status:     transactionModel.Status,
	}
}
