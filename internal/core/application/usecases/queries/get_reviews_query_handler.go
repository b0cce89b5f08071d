package queries

import (
	"context"

	"milkround/internal/core/domain/model/kernel"
	"milkround/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetReviewsQueryHandler reads the public review list with reviewer names.
type GetReviewsQueryHandler struct {
	db *gorm.DB
}

// NewGetReviewsQueryHandler creates a handler for review list queries.
func NewGetReviewsQueryHandler(db *gorm.DB) GetReviewsQueryHandler {
	return GetReviewsQueryHandler{db: db}
}

// Handle returns all reviews, newest first.
func (h GetReviewsQueryHandler) Handle(
	ctx context.Context,
	query GetReviewsQuery,
) ([]ReviewView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.customer_id,
			a.name,
			r.rating,
			r.comment,
			r.created_at
		FROM reviews r
		JOIN accounts a ON a.id = r.customer_id
		ORDER BY r.created_at DESC
	`).Rows()
	if err != nil {
		return nil, errs.NewStoreUnavailableError("query reviews", err)
	}
	defer rows.Close()

	views := make([]ReviewView, 0)

	for rows.Next() {
		var (
			view        ReviewView
			rawID       uuid.UUID
			rawCustomer uuid.UUID
		)

		if err = rows.Scan(&rawID, &rawCustomer, &view.CustomerName,
			&view.Rating, &view.Comment, &view.CreatedAt); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(rawID[:])
		if idErr != nil {
			return nil, idErr
		}
		view.ID = id

		customerID, customerErr := kernel.UUIDFromBytes(rawCustomer[:])
		if customerErr != nil {
			return nil, customerErr
		}
		view.CustomerID = customerID

		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
