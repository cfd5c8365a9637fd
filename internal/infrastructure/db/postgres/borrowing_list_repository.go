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

type BorrowingListRepository struct {
	db *gorm.DB
}

func NewBorrowingListRepository(db *gorm.DB) repositories.BorrowingListRepository {
	return &BorrowingListRepository{db: db}
}

func (r *BorrowingListRepository) FindByUserId(ctx context.Context, userId uuid.UUID) (*entities.BorrowingList, error) {
	return findListTx(r.db.WithContext(ctx), userId)
}

func (r *BorrowingListRepository) AddBook(ctx context.Context, userId, bookId uuid.UUID) (*entities.BorrowingList, error) {
	var list *entities.BorrowingList

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var listModel BorrowingListModel
		err := tx.Where("user_id = ?", userId).First(&listModel).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Lazily create the list on first add.
			listModel = BorrowingListModel{
				Id:        uuid.New(),
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
				UserId:    userId,
			}
			if err := tx.Create(&listModel).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		item := BorrowingListItemModel{
			Id:        uuid.New(),
			CreatedAt: time.Now(),
			ListId:    listModel.Id,
			BookId:    bookId,
		}
		if err := tx.Create(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return repositories.ErrDuplicateListEntry{}
			}
			return err
		}

		if err := touchList(tx, listModel.Id); err != nil {
			return err
		}

		list, err = findListTx(tx, userId)
		return err
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *BorrowingListRepository) RemoveBook(ctx context.Context, userId, bookId uuid.UUID) (*entities.BorrowingList, error) {
	var list *entities.BorrowingList

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var listModel BorrowingListModel
		if err := tx.Where("user_id = ?", userId).First(&listModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		result := tx.Where("list_id = ? AND book_id = ?", listModel.Id, bookId).
			Delete(&BorrowingListItemModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		if err := touchList(tx, listModel.Id); err != nil {
			return err
		}

		var err error
		list, err = findListTx(tx, userId)
		return err
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *BorrowingListRepository) Clear(ctx context.Context, userId uuid.UUID) (bool, error) {
	cleared := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := clearListTx(tx, userId)
		cleared = found
		return err
	})
	return cleared, err
}

// clearListTx empties a user's list inside an existing transaction; it
// is shared with the checkout flow.
func clearListTx(tx *gorm.DB, userId uuid.UUID) (bool, error) {
	var listModel BorrowingListModel
	if err := tx.Where("user_id = ?", userId).First(&listModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := tx.Where("list_id = ?", listModel.Id).Delete(&BorrowingListItemModel{}).Error; err != nil {
		return false, err
	}

	return true, touchList(tx, listModel.Id)
}

func touchList(tx *gorm.DB, listId uuid.UUID) error {
	return tx.Model(&BorrowingListModel{}).Where("id = ?", listId).
		Update("updated_at", time.Now()).Error
}

func findListTx(tx *gorm.DB, userId uuid.UUID) (*entities.BorrowingList, error) {
	var listModel BorrowingListModel
	if err := tx.Where("user_id = ?", userId).First(&listModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var items []BorrowingListItemModel
	if err := tx.Where("list_id = ?", listModel.Id).Order("created_at").Find(&items).Error; err != nil {
		return nil, err
	}

	bookIds := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		bookIds = append(bookIds, item.BookId)
	}

	return &entities.BorrowingList{
		Id:        listModel.Id,
		CreatedAt: listModel.CreatedAt,
		UpdatedAt: listModel.UpdatedAt,
		UserId:    listModel.UserId,
		BookIds:   bookIds,
	}, nil
}
