package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"library-service/internal/domain/entities"
	"library-service/internal/domain/repositories"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) repositories.ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *entities.Review) (*entities.Review, float64, error) {
	var averageRating float64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		reviewModel := ReviewModel{
			Id:        review.Id,
			CreatedAt: review.CreatedAt,
			UserId:    review.UserId,
			BookId:    review.BookId,
			Rating:    review.Rating,
			Comment:   review.Comment,
		}
		if err := tx.Create(&reviewModel).Error; err != nil {
			return err
		}

		// Recompute the aggregate from all rows rather than adjusting
		// incrementally, so the stored average never drifts.
		err := tx.Model(&ReviewModel{}).Where("book_id = ?", review.BookId).
			Select("AVG(rating)").Scan(&averageRating).Error
		if err != nil {
			return err
		}

		return tx.Model(&BookModel{}).Where("id = ?", review.BookId).
			Update("average_rating", averageRating).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return review, averageRating, nil
}

func (r *ReviewRepository) FindByBookId(ctx context.Context, bookId uuid.UUID) ([]*entities.Review, error) {
	var reviewModels []ReviewModel
	err := r.db.WithContext(ctx).Where("book_id = ?", bookId).
		Order("created_at DESC").Find(&reviewModels).Error
	if err != nil {
		return nil, err
	}

	reviews := make([]*entities.Review, 0, len(reviewModels))
	for i := range reviewModels {
		reviewModel := reviewModels[i]
		reviews = append(reviews, &entities.Review{
			Id:        reviewModel.Id,
			CreatedAt: reviewModel.CreatedAt,
			UserId:    reviewModel.UserId,
			BookId:    reviewModel.BookId,
			Rating:    reviewModel.Rating,
			Comment:   reviewModel.Comment,
		})
	}
	return reviews, nil
}
