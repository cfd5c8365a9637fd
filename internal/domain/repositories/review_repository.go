package repositories

import (
	"context"

	"github.com/google/uuid"

	"library-service/internal/domain/entities"
)

type ReviewRepository interface {
	// Create stores the review and recomputes the book's average
	// rating in the same storage transaction.
	Create(ctx context.Context, review *entities.Review) (*entities.Review, float64, error)
	FindByBookId(ctx context.Context, bookId uuid.UUID) ([]*entities.Review, error)
}
